package commands

import (
	"gcheck/internal/config"
	"gcheck/internal/harness"
	"gcheck/internal/storage"
	"gcheck/internal/suite"
	"gcheck/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, formatter *ui.Formatter, st storage.Storage) *ListCommand {
	return &ListCommand{
		config:    cfg,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	registry := harness.NewRegistry()
	suite.Register(registry)
	if lc.config.Flags.WithFailures {
		suite.RegisterShowcase(registry)
	}

	names := registry.Names()
	if len(names) == 0 {
		color.Yellow("No test cases registered")
		return nil
	}

	// Mark cases that failed in the last saved run
	var failedNames map[string]struct{}
	if lc.config.Flags.Last {
		record, err := lc.storage.Load()
		if err == nil {
			failedNames = make(map[string]struct{})
			for _, c := range record.Cases {
				if len(c.FailedChecks) > 0 || len(c.Exceptions) > 0 {
					failedNames[c.TestName] = struct{}{}
				}
			}
		}
		// No stored run yet just means no markers
	}

	lc.formatter.PrintCaseList(names, failedNames)
	return nil
}
