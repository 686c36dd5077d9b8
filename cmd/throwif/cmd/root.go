package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msto63/throwif/pkg/core/config"
	"github.com/msto63/throwif/pkg/core/logging"
)

// rootOptions holds the persistent flags
type rootOptions struct {
	cfgFile string
	verbose bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "throwif",
		Short: "Tooling for the throwif guard clause library",
		Long: `throwif checks Go sources that use the throwif guard clauses.

Commands:
  lint     - report capture references that would fail at runtime
  version  - show version and build information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $THROWIF_CONFIG or ./.throwif.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newLintCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI with os.Args
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil && !errors.Is(err, ErrProblemsFound) {
		printError(os.Stderr, err)
	}
	return err
}

// loadConfig reads the config named by --config, falling back to the
// environment and default locations, then to built-in defaults
func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.cfgFile != "" {
		return config.Load(o.cfgFile)
	}

	cfg, err := config.LoadFromEnv()
	if errors.Is(err, config.ErrNoConfig) {
		return config.Default(), nil
	}
	return cfg, err
}

// newLogger creates the CLI logger; --verbose forces debug level
func (o *rootOptions) newLogger(cfg *config.Config, w io.Writer) (*zap.Logger, error) {
	lc := logging.DefaultLoggerConfig("throwif")
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	lc.Output = w
	if o.verbose {
		lc.Level = "debug"
	}
	return logging.NewLogger(lc)
}

// reportConfigError logs a config failure with its guard fields before it
// is returned to the caller
func reportConfigError(w io.Writer, err error) {
	lc := logging.DefaultLoggerConfig("throwif")
	lc.Output = w
	logger, lerr := logging.NewLogger(lc)
	if lerr != nil {
		return
	}
	logger.Error("invalid configuration", logging.GuardError(err)...)
	_ = logger.Sync()
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
