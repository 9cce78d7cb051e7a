package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/imishinist/logstat/internal/aggregator"
	"github.com/imishinist/logstat/internal/config"
	"github.com/imishinist/logstat/internal/logging"
	"github.com/imishinist/logstat/internal/models"
	"github.com/imishinist/logstat/internal/parser"
	"github.com/imishinist/logstat/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file...]",
	Short: "Aggregate response times per endpoint",
	Long: `Read one or more newline-delimited JSON log files and aggregate the
request count and average response_time per url.
The summary is saved as a JSON report and printed as a table sorted by request count.`,
	Example: `  # Analyze a single file
  logstat analyze --file access.log

  # Analyze several files and choose the report location
  logstat analyze --file a.log --file b.log --report out.json

  # Paths after --file are also accepted as arguments
  logstat analyze --file a.log b.log c.log`,
	RunE: analyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringArray("file", []string{}, "Log file path (can be specified multiple times)")
	analyzeCmd.Flags().String("report", "", "Report file path (default: LOGSTAT_REPORT or average.json)")
}

type analyzeOptions struct {
	Files           []string
	ReportPath      string
	ReportPrecision int
	TablePrecision  int
}

func analyze(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.NoColor)
	if err != nil {
		return err
	}

	// Parse flags
	files, _ := cmd.Flags().GetStringArray("file")
	reportPath, _ := cmd.Flags().GetString("report")

	files = append(files, args...)
	if len(files) == 0 {
		return fmt.Errorf("at least one log file must be specified")
	}

	// Use config defaults if not specified
	if reportPath == "" {
		reportPath = cfg.ReportPath
	}

	opts := analyzeOptions{
		Files:           files,
		ReportPath:      reportPath,
		ReportPrecision: cfg.ReportPrecision,
		TablePrecision:  cfg.TablePrecision,
	}
	return runAnalyze(opts, cmd.OutOrStdout(), logger)
}

// runAnalyze reads every file in order, then saves and prints the summary.
// It returns nil without writing anything when no records could be read.
func runAnalyze(opts analyzeOptions, out io.Writer, logger zerolog.Logger) error {
	var records []models.Record
	for _, path := range opts.Files {
		records = append(records, parser.ReadLogFile(path, logger)...)
	}

	if len(records) == 0 {
		logger.Warn().Int("files", len(opts.Files)).Msg("no data: input files are empty or contain no valid JSON records")
		return nil
	}

	stats := aggregator.Aggregate(records)
	logger.Debug().Int("records", len(records)).Int("endpoints", len(stats)).Msg("aggregated records")

	if err := report.WriteFile(opts.ReportPath, report.Build(stats, opts.ReportPrecision)); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	rows := report.Rows(stats, opts.TablePrecision)
	if err := report.WriteTable(out, rows, opts.TablePrecision); err != nil {
		return fmt.Errorf("failed to print table: %w", err)
	}

	fmt.Fprintf(out, "\nReport saved to: %s\n", opts.ReportPath)
	return nil
}
