package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/harunnryd/genji/internal/client"
	"github.com/harunnryd/genji/internal/conversation"

	"charm.land/lipgloss/v2"
)

type REPL struct {
	client *client.Client
	conv   *conversation.Conversation
	reader *bufio.Reader
	out    io.Writer

	bannerStyle lipgloss.Style
	errorStyle  lipgloss.Style
	usageStyle  lipgloss.Style
}

func NewREPL(c *client.Client, conv *conversation.Conversation, reader *bufio.Reader, out io.Writer) *REPL {
	return &REPL{
		client:      c,
		conv:        conv,
		reader:      reader,
		out:         out,
		bannerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		errorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		usageStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (r *REPL) Start(ctx context.Context) error {
	fmt.Fprintln(r.out, r.bannerStyle.Render("Genji Interactive Session"))
	fmt.Fprintln(r.out, "Type '/exit' to quit.")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			if err := r.readLine(ctx); err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}
	}
}

func (r *REPL) readLine(ctx context.Context) error {
	fmt.Fprint(r.out, "> ")
	text, err := r.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(text) == "" {
			return io.EOF
		}
		if err != io.EOF {
			return err
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if text == "/exit" {
		return io.EOF
	}

	r.conv.AddUserMessage(text)

	resp, sendErr := r.client.SendMessage(ctx, r.conv)
	if sendErr != nil {
		// Fatal for the exchange, not for the session.
		fmt.Fprintln(r.out, r.errorStyle.Render(fmt.Sprintf("error: %v", sendErr)))
		return nil
	}

	r.conv.AddAssistantMessage(resp.Content)
	fmt.Fprintln(r.out, resp.Content)
	fmt.Fprintln(r.out, r.usageStyle.Render(fmt.Sprintf(
		"[tokens: prompt=%d completion=%d total=%d]",
		resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens,
	)))
	return nil
}
