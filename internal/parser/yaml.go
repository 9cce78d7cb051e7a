package parser

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/imishinist/logstat/internal/models"
)

func ParseYAMLReport(reader io.Reader) (models.Report, error) {
	var data models.Report
	decoder := yaml.NewDecoder(reader)

	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse YAML report: %w", err)
	}

	return data, nil
}
