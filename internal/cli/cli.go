package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/treasure-medians/internal/config"
	"github.com/pfrederiksen/treasure-medians/internal/logger"
	"github.com/pfrederiksen/treasure-medians/internal/pipeline"
	"github.com/pfrederiksen/treasure-medians/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// options holds the parsed flags of one invocation
type options struct {
	configPath string
	output     string
	multiplier float64
	format     string
	logLevel   string
	verbose    bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "treasure-medians [heading-id]",
		Short: "Export Sea of Thieves treasure reward medians to an Excel workbook",
		Long: `Fetches the Sea of Thieves wiki pages for treasure chests, bounty skulls
and Athena's Fortune treasure, computes the median gold reward of every item
and writes one sheet per reward table plus an "All Medians" sheet whose
totals are live formulas.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file (default: "+config.DefaultConfigFile()+" if present)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutputPath, "Workbook to write")
	cmd.Flags().Float64Var(&opts.multiplier, "multiplier", config.DefaultMultiplier, "On-Board Loot value written to every row")
	cmd.Flags().StringVar(&opts.format, "format", string(FormatText), "Summary format: text, json or markdown")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", string(logger.LevelWarn), "Diagnostic log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging (same as --log-level debug)")

	return cmd
}

// run loads the configuration and exports the workbook
func run(cmd *cobra.Command, args []string, opts *options) error {
	format := OutputFormat(strings.ToLower(opts.format))
	if !format.Valid() {
		return fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'markdown')", opts.format)
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputPath = opts.output
	}
	if cmd.Flags().Changed("multiplier") {
		cfg.Multiplier = opts.multiplier
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if opts.verbose {
		cfg.LogLevel = string(logger.LevelDebug)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logger.New(level, stderr)
	metrics := logger.NewMetrics()

	if len(args) == 1 {
		// kept for command-line compatibility, the heading is not used
		log.Debug("Ignoring heading id argument", logger.Fields{"heading_id": args[0]})
	}

	log.Debug("Loaded configuration", logger.Fields{
		"categories": cfg.CategoryNames(),
		"multiplier": cfg.Multiplier,
		"output":     cfg.OutputPath,
		"locator":    cfg.Locator,
		"log_level":  string(level),
	})

	// structured summaries own stdout
	var progress io.Writer = stdout
	if format != FormatText {
		progress = stderr
	}

	p, err := pipeline.New(cfg, scraper.NewWithOptions(cfg.Timeout, cfg.UserAgent),
		pipeline.WithLogger(log),
		pipeline.WithMetrics(metrics),
		pipeline.WithProgress(progress),
	)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := p.Run(ctx)
	if err != nil {
		return err
	}

	if err := WriteOutput(stdout, result, format, opts.verbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if opts.verbose {
		if err := metrics.WriteSummary(stderr); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
