package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Base directory run artifacts are written under
	BaseDir string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Disable colored output
	NoColor bool

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Progress     bool
	WithFailures bool
	OpenFails    bool
	Last         bool
	NoColor      bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		BaseDir:        DefaultBaseDir,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
}

// Load creates a config, overlays the environment and applies flag overrides
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	// Load .env from the base directory
	envPath := filepath.Join(cfg.BaseDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	if dir := os.Getenv("GCHECK_OUTPUT_DIR"); dir != "" {
		cfg.OutputJSONDir = dir
	}
	if file := os.Getenv("GCHECK_OUTPUT_FILE"); file != "" {
		cfg.OutputJSONFile = file
	}
	if os.Getenv("NO_COLOR") != "" || flags.NoColor {
		cfg.NoColor = true
	}

	return cfg
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and fails always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.BaseDir, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
