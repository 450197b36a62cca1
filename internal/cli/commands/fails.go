package commands

import (
	"gcheck/internal/config"
	"gcheck/internal/storage"
	"gcheck/internal/ui"

	"github.com/spf13/cobra"
)

// FailsCommand handles the fails command
type FailsCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewFailsCommand creates a new FailsCommand
func NewFailsCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *FailsCommand {
	return &FailsCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (fc *FailsCommand) Execute(cmd *cobra.Command, args []string) error {
	record, err := fc.storage.Load()
	if err != nil {
		return err
	}

	return fc.viewer.View(record)
}
