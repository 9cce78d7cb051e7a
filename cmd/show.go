package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imishinist/logstat/internal/config"
	"github.com/imishinist/logstat/internal/models"
	"github.com/imishinist/logstat/internal/parser"
	"github.com/imishinist/logstat/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a saved report",
	Long:  "Read a report written by analyze and print it as a table, JSON or YAML",
	Example: `  # Print the default report as a table
  logstat show

  # Convert a report to YAML
  logstat show --report out.json --format yaml`,
	Args: cobra.NoArgs,
	RunE: show,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().String("report", "", "Report file path (default: LOGSTAT_REPORT or average.json)")
	showCmd.Flags().String("format", "table", "Output format (table/json/yaml)")
}

func show(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Parse flags
	reportPath, _ := cmd.Flags().GetString("report")
	format, _ := cmd.Flags().GetString("format")

	if reportPath == "" {
		reportPath = cfg.ReportPath
	}

	rep, err := loadReport(reportPath)
	if err != nil {
		return err
	}

	return renderReport(cmd.OutOrStdout(), rep, format, cfg.TablePrecision)
}

func loadReport(path string) (models.Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report %s: %w", path, err)
	}
	defer file.Close()

	var rep models.Report
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		rep, err = parser.ParseYAMLReport(file)
	default:
		rep, err = parser.ParseJSONReport(file)
	}

	if err != nil {
		return nil, err
	}
	return rep, nil
}

func renderReport(w io.Writer, rep models.Report, format string, precision int) error {
	switch strings.ToLower(format) {
	case "table":
		return report.WriteTable(w, report.RowsFromReport(rep, precision), precision)
	case "json":
		return report.WriteJSON(w, rep)
	case "yaml", "yml":
		return report.WriteYAML(w, rep)
	default:
		return fmt.Errorf("unsupported output format: %s (supported: table, json, yaml)", format)
	}
}
