package main

import (
	"bufio"
	"io"
	"os"

	"github.com/harunnryd/genji/internal/client"
	"github.com/harunnryd/genji/internal/config"
	"github.com/harunnryd/genji/internal/tool"
	"github.com/harunnryd/genji/internal/tool/builtin"
)

// buildClient wires the tool registry, approval gate, and transport into
// a ready client. The stdin reader is shared between the REPL and the
// approval prompts so buffered input is never split between readers.
func buildClient(cfg *config.Config, stdin io.Reader) (*client.Client, error) {
	timeout, err := config.DurationOrDefault(cfg.Model.RequestTimeout, config.DefaultModelRequestTimeout)
	if err != nil {
		return nil, err
	}

	confirmer := tool.NewTerminalConfirmer(stdin, os.Stderr)
	registry := tool.NewRegistry()
	for _, t := range builtin.All(tool.BuiltinOptions{
		Confirm:           confirmer,
		AutoAllowCommands: cfg.Tools.Bash.AutoAllow,
	}) {
		registry.Register(t)
	}

	transport := client.NewHTTPTransport(cfg.Model.BaseURL, cfg.Model.Path, cfg.Model.APIKey, timeout)
	return client.New(cfg, transport, tool.NewRunner(registry)), nil
}

func sharedStdin() *bufio.Reader {
	return bufio.NewReader(os.Stdin)
}
