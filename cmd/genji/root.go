package main

import (
	"fmt"
	"os"

	"github.com/harunnryd/genji/internal/config"
	"github.com/harunnryd/genji/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "genji",
	Short: "Genji coding agent",
	Long:  `Genji is an interactive terminal agent that pairs a chat model with human-gated local tools.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd)
		if err != nil {
			return err
		}

		logger.Setup(cfg.Server.LogLevel)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.genji/config.yaml)")
	rootCmd.PersistentFlags().String("server.log_level", config.DefaultServerLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("model.name", config.DefaultModelName, "model identifier sent to the API")
	rootCmd.PersistentFlags().String("model.system_prompt", "", "system prompt override")
}
