package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "calrecur",
	Short: "Expand RFC 5545 recurrence rules into concrete occurrence dates",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (json|text); defaults to text on a TTY, json otherwise")
	rootCmd.PersistentFlags().Int("page-size", 20, "default take size when --take is omitted")

	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("page-size", rootCmd.PersistentFlags().Lookup("page-size"))

	viper.SetEnvPrefix("CALRECUR")
	viper.AutomaticEnv()
}

// initLogger configures the package-level logger from viper-bound flags
// and environment overrides, run once before any subcommand.
func initLogger() error {
	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	format := viper.GetString("log-format")
	if format == "" {
		format = "text"
		if fi, err := os.Stdout.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
			format = "json"
		}
	}
	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{})
	}
	return nil
}
