package domain

// FailedCheck describes a single failed check within a test case
type FailedCheck struct {
	Number  int    `json:"number"` // 1-based position among the case's executed checks
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}
