// Package main is the entry point for the batting-report application
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/myusername/batting-report/internal/config"
	"github.com/myusername/batting-report/internal/utils"
	"github.com/myusername/batting-report/pkg/pipeline"
	"github.com/myusername/batting-report/pkg/scraper"
)

// Version is set during build using ldflags
var (
	version = "dev"
)

type options struct {
	configPath string
	verbose    bool
	letter     string
	format     string
	output     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "batting-report <path>",
		Short: "Report batsmen whose surname starts with a given letter, ordered by runs",
		Long: `batting-report reads "<initials> <surname>,<runs>,<average>" lines from a
text file, HTML table, PDF or http(s) URL, keeps the batsmen whose surname
starts with the configured letter and prints them with the most runs first.

Any unreadable input or malformed line aborts the run.`,
		Args:         cobra.ExactArgs(1),
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolveConfig(cmd)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogLevel(), opts.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runReport(cmd.OutOrStdout(), cfg, args[0], logger)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().StringVar(&opts.letter, "letter", "", "Surname initial to keep (default C)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format, one of %v", utils.Formats))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Also write the result to this CSV file")

	return cmd
}

// resolveConfig loads the config file, if any, and applies the flags that were set
func (o *options) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("letter") {
		cfg.Filter.Letter = o.letter
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("output") {
		cfg.Output.CSVPath = o.output
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(level zapcore.Level, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// runReport loads location, runs the pipeline and writes the result to w
func runReport(w io.Writer, cfg *config.Config, location string, logger *zap.Logger) error {
	logger.Debug("starting report", zap.String("source", location), zap.String("version", version))

	loader := scraper.NewLoader(cfg.FetchTimeout(), logger)
	lines, err := loader.Load(location)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", location, err)
	}

	batsmen, err := pipeline.New(cfg.Letter(), logger).Run(lines)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", location, err)
	}

	if cfg.Output.CSVPath != "" {
		if err := utils.SaveBatsmenToCSV(batsmen, cfg.Output.CSVPath); err != nil {
			return fmt.Errorf("failed to save CSV: %w", err)
		}
		logger.Info("saved CSV", zap.String("path", cfg.Output.CSVPath), zap.Int("records", len(batsmen)))
	}

	if err := utils.DisplayBatsmen(w, batsmen, cfg.Output.Format); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Debug("report complete", zap.Int("records", len(batsmen)))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
