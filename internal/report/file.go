package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/imishinist/logstat/internal/models"
)

// Build converts finalized statistics into a report, rounding averages to
// precision decimal places.
func Build(stats map[string]models.EndpointStats, precision int) models.Report {
	report := make(models.Report, len(stats))
	for endpoint, s := range stats {
		report[endpoint] = models.ReportEntry{
			Count:           s.Count,
			AvgResponseTime: round(s.AvgResponseTime, precision),
		}
	}
	return report
}

// WriteFile writes report to path as indented JSON, replacing any existing file.
// An existing file is left untouched when the report cannot be encoded.
func WriteFile(path string, report models.Report) error {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, report); err != nil {
		return fmt.Errorf("failed to encode report %s: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	if _, err := buf.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close report %s: %w", path, err)
	}

	return nil
}

// WriteJSON encodes report with two-space indentation. Non-ASCII and HTML
// characters in endpoints are written as-is.
func WriteJSON(w io.Writer, report models.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if report == nil {
		report = models.Report{}
	}
	return encoder.Encode(report)
}

func round(v float64, precision int) float64 {
	p := math.Pow10(precision)
	// beyond 2^53 / p there are no fractional digits left to round
	if scaled := v * p; math.IsInf(scaled, 0) || math.Abs(v) >= (1<<53)/p {
		return v
	}
	return math.Round(v*p) / p
}
