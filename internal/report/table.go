package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/imishinist/logstat/internal/models"
)

var tableHeader = [3]string{"handler", "total", "avg_response_time"}

// Rows builds sorted table rows from finalized statistics.
func Rows(stats map[string]models.EndpointStats, precision int) []models.Row {
	rows := make([]models.Row, 0, len(stats))
	for endpoint, s := range stats {
		rows = append(rows, models.Row{
			Handler:         endpoint,
			Total:           s.Count,
			AvgResponseTime: round(s.AvgResponseTime, precision),
		})
	}
	SortRows(rows)
	return rows
}

// RowsFromReport builds sorted table rows from a report loaded from disk.
func RowsFromReport(report models.Report, precision int) []models.Row {
	rows := make([]models.Row, 0, len(report))
	for endpoint, entry := range report {
		rows = append(rows, models.Row{
			Handler:         endpoint,
			Total:           entry.Count,
			AvgResponseTime: round(entry.AvgResponseTime, precision),
		})
	}
	SortRows(rows)
	return rows
}

// SortRows orders rows by total descending, breaking ties by handler.
func SortRows(rows []models.Row) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Handler < rows[j].Handler
	})
}

// WriteTable renders rows as a right-aligned table, printing averages with
// precision decimal places.
func WriteTable(w io.Writer, rows []models.Row, precision int) error {
	cells := make([][3]string, 0, len(rows)+1)
	cells = append(cells, tableHeader)
	for _, row := range rows {
		cells = append(cells, [3]string{
			row.Handler,
			strconv.Itoa(row.Total),
			strconv.FormatFloat(row.AvgResponseTime, 'f', precision, 64),
		})
	}

	var widths [3]int
	for _, line := range cells {
		for i, cell := range line {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	// fmt pads by rune count, matching the widths above
	for _, line := range cells {
		_, err := fmt.Fprintf(w, "%*s  %*s  %*s\n",
			widths[0], line[0], widths[1], line[1], widths[2], line[2])
		if err != nil {
			return err
		}
	}

	return nil
}
