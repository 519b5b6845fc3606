package builtin

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	toolcore "github.com/harunnryd/genji/internal/tool"
)

// ReadFileTool reads a file with 1-indexed line numbering. Read-only, so
// it never prompts.
type ReadFileTool struct {
	opts toolcore.BuiltinOptions
}

func NewReadFileTool(options toolcore.BuiltinOptions) *ReadFileTool {
	return &ReadFileTool{opts: options}
}

func (t *ReadFileTool) Name() string {
	return "read_file"
}

func (t *ReadFileTool) Description() string {
	return "Read the contents of a file. Returns lines with line numbers. Use this instead of bash cat/head/tail."
}

func (t *ReadFileTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"file_path": map[string]interface{}{
				"type":        "string",
				"description": "Path to the file to read",
			},
			"offset": map[string]interface{}{
				"type":        "integer",
				"description": "1-indexed line number to start from (optional)",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of lines to read (optional)",
			},
		},
		"required": []string{"file_path"},
	}
}

func (t *ReadFileTool) Execute(ctx context.Context, input json.RawMessage) (string, error) {
	_ = ctx

	var args toolcore.ReadFileInput
	if err := json.Unmarshal(input, &args); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}

	file, err := os.Open(args.FilePath)
	if err != nil {
		return "Error: Cannot open file: " + args.FilePath, nil
	}
	defer file.Close()

	offset := 1
	if args.Offset != nil {
		offset = *args.Offset
	}
	limit := math.MaxInt
	if args.Limit != nil {
		limit = *args.Limit
	}

	var b strings.Builder
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	maxOutput := t.opts.OutputLimit()
	lineNum := 0
	linesRead := 0

	for scanner.Scan() {
		lineNum++
		if lineNum < offset {
			continue
		}
		if linesRead >= limit {
			break
		}
		fmt.Fprintf(&b, "%6d\t%s\n", lineNum, scanner.Text())
		linesRead++
		if b.Len() > maxOutput {
			b.WriteString("\n... [truncated at 100KB]")
			break
		}
	}

	if b.Len() == 0 {
		return "File is empty or offset is past end", nil
	}
	return b.String(), nil
}
