package domain

import "fmt"

// CapturedException describes a recognized fault that ended a test body early
type CapturedException struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// String renders the exception as Type(Message)
func (e CapturedException) String() string {
	return fmt.Sprintf("%s(%s)", e.Type, e.Message)
}
