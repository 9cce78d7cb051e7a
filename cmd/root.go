package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/imishinist/logstat/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "logstat",
	Short: "Endpoint response time statistics from JSON logs",
	Long: `A command line tool that reads newline-delimited JSON access logs,
aggregates request counts and average response times per endpoint,
and reports them as a JSON file and a console table.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level: trace, debug, info, warn (overrides LOGSTAT_LOG_LEVEL)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored log output (overrides LOGSTAT_NO_COLOR)")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

func initConfig() {
	// Environment variables
	viper.SetEnvPrefix("LOGSTAT")
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())
}
