package builtin

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	toolcore "github.com/harunnryd/genji/internal/tool"

	"github.com/natefinch/atomic"
)

// EditFileTool replaces a single exact occurrence of old_string. The
// uniqueness check runs strictly before the approval prompt: the
// operator is never asked to approve an edit that cannot be applied
// unambiguously.
type EditFileTool struct {
	opts toolcore.BuiltinOptions
}

func NewEditFileTool(options toolcore.BuiltinOptions) *EditFileTool {
	return &EditFileTool{opts: options}
}

func (t *EditFileTool) Name() string {
	return "edit_file"
}

func (t *EditFileTool) Description() string {
	return "Make a targeted edit to a file by replacing an exact string. The old_string must appear exactly once in the file. Use this instead of bash sed."
}

func (t *EditFileTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"file_path": map[string]interface{}{
				"type":        "string",
				"description": "Path to the file to edit",
			},
			"old_string": map[string]interface{}{
				"type":        "string",
				"description": "The exact string to find and replace (must be unique)",
			},
			"new_string": map[string]interface{}{
				"type":        "string",
				"description": "The replacement string",
			},
		},
		"required": []string{"file_path", "old_string", "new_string"},
	}
}

func (t *EditFileTool) Execute(ctx context.Context, input json.RawMessage) (string, error) {
	_ = ctx

	var args toolcore.EditFileInput
	if err := json.Unmarshal(input, &args); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}

	data, err := os.ReadFile(args.FilePath)
	if err != nil {
		return "Error: Cannot open file: " + args.FilePath, nil
	}
	contents := string(data)

	if args.OldString == "" {
		return "Error: old_string not found in " + args.FilePath, nil
	}
	count := strings.Count(contents, args.OldString)
	if count == 0 {
		return "Error: old_string not found in " + args.FilePath, nil
	}
	if count > 1 {
		return fmt.Sprintf("Error: old_string is not unique in %s (found %d occurrences)", args.FilePath, count), nil
	}

	prompt := fmt.Sprintf("[tool] edit_file: %s\n--- old ---\n%s\n--- new ---\n%s", args.FilePath, args.OldString, args.NewString)
	if !t.opts.Confirm.Confirm(prompt) {
		return "Edit skipped by user", nil
	}

	updated := strings.Replace(contents, args.OldString, args.NewString, 1)
	if err := atomic.WriteFile(args.FilePath, strings.NewReader(updated)); err != nil {
		return "Error: Cannot write file: " + args.FilePath, nil
	}

	return "Applied edit to " + args.FilePath, nil
}
