package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/throwif/internal/lint"
)

// ErrProblemsFound is returned by the lint command when diagnostics were reported
var ErrProblemsFound = errors.New("lint found problems")

type lintFlags struct {
	format       string
	includeTests bool
	exclude      []string
}

func newLintCmd(opts *rootOptions) *cobra.Command {
	flags := &lintFlags{}

	lintCmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Report capture references that would fail to resolve",
		Long: `Parses Go sources and reports calls to capture.Of, capture.Named and
capture.Value whose accessor or name does not denote a single named
location. No code is run.

Paths ending in /... are walked recursively. Without arguments the
paths from the config file are used (default ./...).

Exit status is 1 if problems were found and 2 on other errors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, opts, flags, args)
		},
	}

	lintCmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text or json")
	lintCmd.Flags().BoolVar(&flags.includeTests, "tests", false, "also check _test.go files")
	lintCmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns of files to skip")

	return lintCmd
}

func runLint(cmd *cobra.Command, opts *rootOptions, flags *lintFlags, args []string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		reportConfigError(cmd.ErrOrStderr(), err)
		return fmt.Errorf("loading config: %w", err)
	}

	// Flags given on the command line win over the config file
	if cmd.Flags().Changed("format") {
		cfg.Lint.Format = flags.format
	}
	if cmd.Flags().Changed("tests") {
		cfg.Lint.IncludeTests = flags.includeTests
	}
	cfg.Lint.Exclude = append(cfg.Lint.Exclude, flags.exclude...)
	if len(args) > 0 {
		cfg.Lint.Paths = args
	}
	if err := cfg.Validate(); err != nil {
		reportConfigError(cmd.ErrOrStderr(), err)
		return err
	}

	logger, err := opts.newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Lint.Timeout.Duration)
	defer cancel()

	linter := lint.New(lint.OptionsFromConfig(cfg.Lint), logger)
	report, err := linter.Run(ctx, cfg.Lint.Paths)
	if err != nil {
		return err
	}

	if err := lint.Write(cmd.OutOrStdout(), report, cfg.Lint.Format); err != nil {
		return err
	}

	if report.HasDiagnostics() {
		return ErrProblemsFound
	}
	return nil
}
