package cli

import "gcheck/internal/config"

// Flags holds command-line flags
type Flags struct {
	Progress     bool
	WithFailures bool
	OpenFails    bool
	Last         bool
	NoColor      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Progress:     f.Progress,
		WithFailures: f.WithFailures,
		OpenFails:    f.OpenFails,
		Last:         f.Last,
		NoColor:      f.NoColor,
	}
}
