package cmd

import (
	"fmt"
	"os"

	"binpix/cli"
	"binpix/config"
	"binpix/log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "binpix",
	Short: "Encodes arbitrary binary data as lossless PNG images, and back.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.CalledAs() == "init" {
			return nil
		}
		homeDir := cli.GetHomeDir(cmd)
		var err error
		cfg, err = config.LoadConfig(homeDir)
		if err != nil {
			return errors.Wrap(err, "error loading config")
		}
		logLevelStr := cfg.LogLevel
		if cmd.Flags().Changed(cli.FlagLogLevel) {
			logLevelStr, _ = cmd.Flags().GetString(cli.FlagLogLevel)
		}
		logLevel, err := log.NewLevel(logLevelStr)
		if err != nil {
			return errors.Wrap(err, "error parsing log level")
		}
		log.SetLevel(logLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.binpix", "Home directory for binpix's config.")
	rootCmd.PersistentFlags().String(cli.FlagLogLevel, log.LevelInfo.String(), "Sets the log level.")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
