// ABOUTME: Root command, global flags and per-invocation setup
// ABOUTME: Loads configuration and installs the zerolog logger before any subcommand runs
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/momprep/internal/config"
	"github.com/harper/momprep/internal/logging"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
	logLevel     string

	cfg      *config.Config
	closeLog = func() {}
)

const banner = `
███╗   ███╗ ██████╗ ███╗   ███╗██████╗ ██████╗ ███████╗██████╗
████╗ ████║██╔═══██╗████╗ ████║██╔══██╗██╔══██╗██╔════╝██╔══██╗
██╔████╔██║██║   ██║██╔████╔██║██████╔╝██████╔╝█████╗  ██████╔╝
██║╚██╔╝██║██║   ██║██║╚██╔╝██║██╔═══╝ ██╔══██╗██╔══╝  ██╔═══╝
██║ ╚═╝ ██║╚██████╔╝██║ ╚═╝ ██║██║     ██║  ██║███████╗██║
╚═╝     ╚═╝ ╚═════╝ ╚═╝     ╚═╝╚═╝     ╚═╝  ╚═╝╚══════╝╚═╝`

// NewRootCmd creates the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "momprep",
		Short: "Interview prep in the gaps of a parent's day",
		Long: banner + `

MomPrep picks a study topic that fits the time you have right now,
serves a short AI-written nugget about it, answers follow-up questions
and keeps a tagged to-do list.

Modes:
  breastfeeding   5 minutes
  naptime         15 minutes
  laptop          1-2 hours`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeLog()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logging)")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, text, json (export: yaml, json, markdown)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides MOMPREP_LOG_LEVEL)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewNextCmd())
	cmd.AddCommand(NewStudyCmd())
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewDoneCmd())
	cmd.AddCommand(NewReviseCmd())
	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewTodoCmd())
	cmd.AddCommand(NewSeedCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewSyncCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded

	level := cfg.LogLevel
	switch {
	case logLevel != "":
		level = logLevel
	case verbose:
		level = "debug"
	case quiet:
		level = "error"
	}

	closer, err := logging.Setup(level, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	closeLog = closer
	return nil
}

// currentConfig returns the loaded configuration, loading it when a
// subcommand runs without the root command
func currentConfig() (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	loaded, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg = loaded
	return cfg, nil
}
