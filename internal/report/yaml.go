package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/imishinist/logstat/internal/models"
)

func WriteYAML(w io.Writer, report models.Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if report == nil {
		report = models.Report{}
	}
	if err := encoder.Encode(report); err != nil {
		return err
	}
	return encoder.Close()
}
