package builtin

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	toolcore "github.com/harunnryd/genji/internal/tool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLines(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestReadFile_CannotOpen(t *testing.T) {
	tool := NewReadFileTool(toolcore.BuiltinOptions{})

	out, err := tool.Execute(context.Background(), json.RawMessage(`{"file_path":"/no/such/file"}`))
	require.NoError(t, err)
	assert.Equal(t, "Error: Cannot open file: /no/such/file", out)
}

func TestReadFile_NumbersAllLines(t *testing.T) {
	path := writeLines(t, 3)
	tool := NewReadFileTool(toolcore.BuiltinOptions{})

	input, _ := json.Marshal(map[string]any{"file_path": path})
	out, err := tool.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "     1\tline 1\n     2\tline 2\n     3\tline 3\n", out)
}

func TestReadFile_OffsetAndLimit(t *testing.T) {
	path := writeLines(t, 20)
	tool := NewReadFileTool(toolcore.BuiltinOptions{})

	input, _ := json.Marshal(map[string]any{"file_path": path, "offset": 10, "limit": 5})
	out, err := tool.Execute(context.Background(), input)
	require.NoError(t, err)

	var want strings.Builder
	for i := 10; i <= 14; i++ {
		fmt.Fprintf(&want, "%6d\tline %d\n", i, i)
	}
	assert.Equal(t, want.String(), out)
	assert.True(t, strings.HasPrefix(out, "    10\t"))
}

func TestReadFile_OffsetPastEnd(t *testing.T) {
	path := writeLines(t, 5)
	tool := NewReadFileTool(toolcore.BuiltinOptions{})

	input, _ := json.Marshal(map[string]any{"file_path": path, "offset": 50})
	out, err := tool.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "File is empty or offset is past end", out)
}

func TestReadFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	tool := NewReadFileTool(toolcore.BuiltinOptions{})

	input, _ := json.Marshal(map[string]any{"file_path": path})
	out, err := tool.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "File is empty or offset is past end", out)
}

func TestReadFile_TruncatesLongOutput(t *testing.T) {
	path := writeLines(t, 100)
	tool := NewReadFileTool(toolcore.BuiltinOptions{MaxOutputBytes: 80})

	input, _ := json.Marshal(map[string]any{"file_path": path})
	out, err := tool.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Contains(t, out, "... [truncated at 100KB]")
	assert.NotContains(t, out, "line 100")
}
