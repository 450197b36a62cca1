package ui

import "gcheck/internal/domain"

// Viewer displays a stored run record in an interactive TUI
type Viewer interface {
	View(record *domain.RunRecord) error
}
