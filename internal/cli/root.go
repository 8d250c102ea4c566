// Package cli provides the command-line interface for boxtint.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/boxtint/internal/config"
	"github.com/jmylchreest/boxtint/internal/version"
)

// app carries state shared by every subcommand of one root command.
type app struct {
	configPath string
	verbose    bool
	quiet      bool

	cfg    *config.Config
	logger hclog.Logger
}

// NewRootCmd builds the full command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.Default(),
		logger: hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "boxtint",
		Short: "Class colour palettes and bounding-box previews",
		Long: `boxtint generates palettes of visually distinct colours and uses them to
draw object-detection labels onto images for inspection.

A palette is written once to a YAML or JSON file. The palette commands render
and print it; the annotate command reads it to colour each class id.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (YAML or JSON)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newPaletteCmd(a))
	rootCmd.AddCommand(newAnnotateCmd(a))

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup layers config sources and creates the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)

	cfg := config.Default()
	if a.configPath != "" {
		if err := cfg.LoadFile(a.configPath); err != nil {
			return err
		}
		a.logger.Debug("loaded config file", "path", a.configPath)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
