package builtin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"

	toolcore "github.com/harunnryd/genji/internal/tool"

	"github.com/google/shlex"
)

// BashTool executes a shell command under the operator approval gate,
// merging stderr into stdout.
type BashTool struct {
	opts toolcore.BuiltinOptions
}

func NewBashTool(options toolcore.BuiltinOptions) *BashTool {
	return &BashTool{opts: options}
}

func (t *BashTool) Name() string {
	return "bash"
}

func (t *BashTool) Description() string {
	return "Execute a bash command. Use this to run shell commands, compile code, run tests, and other terminal operations."
}

func (t *BashTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"command": map[string]interface{}{
				"type":        "string",
				"description": "The bash command to execute",
			},
		},
		"required": []string{"command"},
	}
}

func (t *BashTool) Execute(ctx context.Context, input json.RawMessage) (string, error) {
	var args toolcore.BashInput
	if err := json.Unmarshal(input, &args); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}
	if strings.TrimSpace(args.Command) == "" {
		return "", fmt.Errorf("command is required")
	}

	if !t.autoAllowed(args.Command) {
		if !t.opts.Confirm.Confirm(fmt.Sprintf("[tool] bash: %s", args.Command)) {
			return "Command skipped by user", nil
		}
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", args.Command)
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "Error: failed to execute command", nil
		}
	}

	result := string(output)
	if limit := t.opts.OutputLimit(); len(result) > limit {
		result = result[:limit] + "\n... [truncated at 100KB]"
	}

	exitCode := 0
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}
	return result + fmt.Sprintf("\n[exit code: %d]", exitCode), nil
}

// autoAllowed reports whether the command's first shell word is on the
// configured no-prompt list.
func (t *BashTool) autoAllowed(command string) bool {
	if len(t.opts.AutoAllowCommands) == 0 {
		return false
	}
	words, err := shlex.Split(command)
	if err != nil || len(words) == 0 {
		return false
	}
	return slices.Contains(t.opts.AutoAllowCommands, words[0])
}
