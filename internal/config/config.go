package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DefaultReportPath      = "average.json"
	DefaultReportPrecision = 2
	DefaultTablePrecision  = 3
	DefaultLogLevel        = "info"
)

type Config struct {
	ReportPath      string `validate:"required"`
	ReportPrecision int    `validate:"gte=0,lte=15"`
	TablePrecision  int    `validate:"gte=0,lte=15"`
	// diagnostics are logged at warn, so quieter levels are rejected
	LogLevel        string `validate:"oneof=trace debug info warn"`
	NoColor         bool
}

func New() *Config {
	return &Config{
		ReportPath:      viper.GetString("report"),
		ReportPrecision: viper.GetInt("report_precision"),
		TablePrecision:  viper.GetInt("table_precision"),
		LogLevel:        viper.GetString("log_level"),
		NoColor:         viper.GetBool("no_color"),
	}
}

// SetDefaults registers the default value of every key read by New.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("report", DefaultReportPath)
	v.SetDefault("report_precision", DefaultReportPrecision)
	v.SetDefault("table_precision", DefaultTablePrecision)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("no_color", false)
}

func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
