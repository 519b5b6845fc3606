package main

import (
	"os"

	"github.com/harunnryd/genji/internal/conversation"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start Genji in interactive mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		stdin := sharedStdin()
		c, err := buildClient(cfg, stdin)
		if err != nil {
			return err
		}

		repl := NewREPL(c, conversation.New(), stdin, os.Stdout)
		return repl.Start(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
