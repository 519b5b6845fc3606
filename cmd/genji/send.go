package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/harunnryd/genji/internal/conversation"

	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send [prompt]",
	Short: "Send a single prompt and print the final answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildClient(cfg, sharedStdin())
		if err != nil {
			return err
		}

		conv := conversation.New()
		conv.AddUserMessage(strings.Join(args, " "))

		resp, err := c.SendMessage(cmd.Context(), conv)
		if err != nil {
			return err
		}

		fmt.Println(resp.Content)
		fmt.Fprintf(os.Stderr, "[tokens: prompt=%d completion=%d total=%d]\n",
			resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
}
