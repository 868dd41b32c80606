// Package cmd provides the commands of the synchsed tool.
package cmd

import (
	"fmt"

	"github.com/cwbudde/algo-sed/internal/config"
	"github.com/cwbudde/algo-sed/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is the synchsed release, set at link time.
var Version = "0.1.0"

// app is the state shared by the subcommands once flags are parsed.
type app struct {
	cfgFile string
	verbose bool

	cfg      *config.Config
	log      *zap.Logger
	closeLog func() error
}

// NewRootCommand builds the synchsed command tree.
func NewRootCommand() *cobra.Command {
	root, _ := newRoot()
	return root
}

// Execute runs the synchsed command tree with the process arguments and
// releases the log output even when a command fails.
func Execute() error {
	root, a := newRoot()
	defer a.close()
	return root.Execute()
}

func newRoot() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "synchsed",
		Short: "Synchrotron SEDs of relativistic blobs",
		Long: `synchsed evaluates the synchrotron spectral energy distribution of an
electron population in a magnetized, relativistically moving blob,
optionally including synchrotron self-absorption.

The blob, its electron distribution and the frequency grid come from a
YAML configuration file; without one the built-in self-absorbed power-law
blob is used. Run "synchsed config" to print it as a starting point.

Examples:
  synchsed sed --points 25
  synchsed --config run.yaml sed --csv --output sed.csv
  synchsed peak --b 0.1 --gamma 1e4
  synchsed compare reference.txt --upper 0.05 --nu-min 1e11 --nu-max 1e19`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newSEDCommand(a),
		newPeakCommand(a),
		newKernelCommand(a),
		newCompareCommand(a),
		newConfigCommand(a),
		newVersionCommand(),
	)

	return root, a
}

func (a *app) init(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		loaded, err := config.Load(a.cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	var (
		log      *zap.Logger
		closeLog func() error
		err      error
	)
	if cfg.Logging.Output == "" || cfg.Logging.Output == "stderr" {
		log, err = logging.NewWriter(cfg.Logging, cmd.ErrOrStderr())
	} else {
		log, closeLog, err = logging.New(cfg.Logging)
	}
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	a.cfg = cfg
	a.log = log.Named("synchsed")
	a.closeLog = closeLog
	a.log.Debug("configuration loaded", zap.String("file", a.cfgFile))

	return nil
}

// close flushes the logger and releases a file output. It is safe to call
// more than once.
func (a *app) close() {
	if a.log != nil {
		_ = a.log.Sync()
	}
	if a.closeLog != nil {
		_ = a.closeLog()
		a.closeLog = nil
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "synchsed version %s\n", Version)
		},
	}
}

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cfg.Encode(cmd.OutOrStdout())
		},
	}
}
