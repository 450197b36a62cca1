package commands

import (
	"os"

	"gcheck/internal/cli"
	"gcheck/internal/config"
	"gcheck/internal/storage"
	"gcheck/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run   *RunCommand
	List  *ListCommand
	Fails *FailsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(os.Stdout)
	errorViewer := ui.NewErrorViewer(jsonStorage)

	return &Commands{
		Run:   NewRunCommand(cfg, jsonStorage, errorViewer, os.Stdout),
		List:  NewListCommand(cfg, formatter, jsonStorage),
		Fails: NewFailsCommand(cfg, jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the registered test cases",
		Long:  "Execute every registered test case in registration order and print the results table with a summary",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Rebuild config with flags after parsing
			*cfg = *config.Load(flags.ToConfigFlags())
			if cfg.NoColor {
				color.NoColor = true
			}
			return nil
		},
	}
	runCmd.Flags().BoolVarP(&flags.Progress, "progress", "p", false, "Show a progress bar instead of streaming table rows")
	runCmd.Flags().BoolVarP(&flags.WithFailures, "with-failures", "w", false, "Also register the failing showcase cases")
	runCmd.Flags().BoolVar(&flags.OpenFails, "open-fails", false, "Open the fails viewer when the run finishes with failures")
	runCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered test cases",
		Long:  "Print the registered test cases in registration order without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			*cfg = *config.Load(flags.ToConfigFlags())
			if cfg.NoColor {
				color.NoColor = true
			}
			return nil
		},
	}
	listCmd.Flags().BoolVarP(&flags.WithFailures, "with-failures", "w", false, "Also list the failing showcase cases")
	listCmd.Flags().BoolVarP(&flags.Last, "last", "l", false, "Mark cases that failed in the last saved run")
	listCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(listCmd)

	// Fails command
	failsCmd := &cobra.Command{
		Use:   "fails",
		Short: "View failing test cases interactively",
		Long:  "Display failing test cases from the last run in an interactive viewer",
		RunE:  c.Fails.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
	}
	rootCmd.AddCommand(failsCmd)
}
