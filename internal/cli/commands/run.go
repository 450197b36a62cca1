package commands

import (
	"fmt"
	"io"
	"time"

	"gcheck/internal/cli"
	"gcheck/internal/config"
	"gcheck/internal/harness"
	"gcheck/internal/storage"
	"gcheck/internal/suite"
	"gcheck/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
	out     io.Writer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer, out io.Writer) *RunCommand {
	return &RunCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
		out:     out,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Build the registry and register the built-in cases
	registry := harness.NewRegistry()
	suite.Register(registry)
	if rc.config.Flags.WithFailures {
		suite.RegisterShowcase(registry)
	}

	if registry.Len() == 0 {
		color.Yellow("No test cases registered")
		return nil
	}

	// Pick the reporter
	var reporter harness.Reporter = ui.NewTableReporter(rc.out)
	if rc.config.Flags.Progress {
		reporter = ui.NewProgressReporter(rc.out)
	}

	// Execute the cases
	started := time.Now()
	summary, err := registry.RunAll(reporter)
	if err != nil {
		return err
	}
	duration := time.Since(started)

	// Save the run record
	if err := rc.storage.Save(registry.Results(), summary, duration); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	// Open the viewer when something failed or threw
	hasFailures := summary.FailedChecks > 0 || summary.Exceptions > 0
	if hasFailures && rc.config.Flags.OpenFails {
		record, err := rc.storage.Load()
		if err != nil {
			return err
		}
		if err := rc.viewer.View(record); err != nil {
			return err
		}
	}

	if !summary.Success() {
		return &cli.ExitError{
			Code:    1,
			Message: fmt.Sprintf("%d of %d checks failed", summary.FailedChecks, summary.ExecutedChecks),
		}
	}
	return nil
}
