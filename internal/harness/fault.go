package harness

import "fmt"

// Fault is the recognized error family a test body may return to end its
// case early. The registry converts a Fault into a CapturedException on the
// case result; any other error returned from a body aborts the whole run.
type Fault struct {
	Kind    string // short type identifier, e.g. "OutOfRange"
	Message string
}

// Error renders the fault as Kind(Message)
func (f *Fault) Error() string {
	return fmt.Sprintf("%s(%s)", f.Kind, f.Message)
}

// NewFault creates a Fault with the given kind and message
func NewFault(kind, message string) *Fault {
	return &Fault{Kind: kind, Message: message}
}

// Faultf creates a Fault with a formatted message
func Faultf(kind, format string, args ...any) *Fault {
	return &Fault{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
