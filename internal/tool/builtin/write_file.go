package builtin

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	toolcore "github.com/harunnryd/genji/internal/tool"
)

// WriteFileTool writes content to a file, creating parent directories as
// needed. Every write is operator-gated.
type WriteFileTool struct {
	opts toolcore.BuiltinOptions
}

func NewWriteFileTool(options toolcore.BuiltinOptions) *WriteFileTool {
	return &WriteFileTool{opts: options}
}

func (t *WriteFileTool) Name() string {
	return "write_file"
}

func (t *WriteFileTool) Description() string {
	return "Write content to a file. Creates parent directories if needed. Use this instead of bash echo/cat with redirects."
}

func (t *WriteFileTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"file_path": map[string]interface{}{
				"type":        "string",
				"description": "Path to the file to write",
			},
			"content": map[string]interface{}{
				"type":        "string",
				"description": "The content to write to the file",
			},
		},
		"required": []string{"file_path", "content"},
	}
}

func (t *WriteFileTool) Execute(ctx context.Context, input json.RawMessage) (string, error) {
	_ = ctx

	var args toolcore.WriteFileInput
	if err := json.Unmarshal(input, &args); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}

	prompt := fmt.Sprintf("[tool] write_file: %s (%d bytes)", args.FilePath, len(args.Content))
	if !t.opts.Confirm.Confirm(prompt) {
		return "Write skipped by user", nil
	}

	if parent := filepath.Dir(args.FilePath); parent != "" && parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return "Error: Cannot create directory: " + parent, nil
		}
	}

	file, err := os.Create(args.FilePath)
	if err != nil {
		return "Error: Cannot open file for writing: " + args.FilePath, nil
	}

	_, writeErr := file.WriteString(args.Content)
	closeErr := file.Close()
	if writeErr != nil || closeErr != nil {
		return "Error: Write failed", nil
	}

	return fmt.Sprintf("Wrote %d bytes to %s", len(args.Content), args.FilePath), nil
}
