package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/imishinist/logstat/internal/models"
)

func ParseJSONReport(reader io.Reader) (models.Report, error) {
	var data models.Report
	decoder := json.NewDecoder(reader)

	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON report: %w", err)
	}

	return data, nil
}
