package builtin

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	toolcore "github.com/harunnryd/genji/internal/tool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_DeniedByUser(t *testing.T) {
	confirm := &stubConfirmer{allow: false}
	tool := NewWriteFileTool(toolcore.BuiltinOptions{Confirm: confirm})
	path := filepath.Join(t.TempDir(), "denied.txt")

	input, _ := json.Marshal(map[string]any{"file_path": path, "content": "nope"})
	out, err := tool.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "Write skipped by user", out)
	assert.NoFileExists(t, path)
	require.Len(t, confirm.prompts, 1)
	assert.Equal(t, fmt.Sprintf("[tool] write_file: %s (4 bytes)", path), confirm.prompts[0])
}

func TestWriteFile_CreatesParentDirectories(t *testing.T) {
	tool := NewWriteFileTool(toolcore.BuiltinOptions{Confirm: &stubConfirmer{allow: true}})
	path := filepath.Join(t.TempDir(), "a", "b", "c", "out.txt")

	input, _ := json.Marshal(map[string]any{"file_path": path, "content": "hello world"})
	out, err := tool.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Wrote 11 bytes to %s", path), out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
}

func TestWriteFile_ThenReadBackRoundTrip(t *testing.T) {
	opts := toolcore.BuiltinOptions{Confirm: &stubConfirmer{allow: true}}
	writeTool := NewWriteFileTool(opts)
	readTool := NewReadFileTool(opts)
	path := filepath.Join(t.TempDir(), "round.txt")

	content := "first\nsecond\nthird"
	input, _ := json.Marshal(map[string]any{"file_path": path, "content": content})
	_, err := writeTool.Execute(context.Background(), input)
	require.NoError(t, err)

	readInput, _ := json.Marshal(map[string]any{"file_path": path})
	out, err := readTool.Execute(context.Background(), readInput)
	require.NoError(t, err)
	assert.Equal(t, "     1\tfirst\n     2\tsecond\n     3\tthird\n", out)
}

func TestWriteFile_CannotCreateDirectory(t *testing.T) {
	tool := NewWriteFileTool(toolcore.BuiltinOptions{Confirm: &stubConfirmer{allow: true}})

	// Parent path runs through an existing regular file.
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	path := filepath.Join(blocker, "sub", "out.txt")
	input, _ := json.Marshal(map[string]any{"file_path": path, "content": "data"})
	out, err := tool.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "Error: Cannot create directory: "+filepath.Dir(path), out)
}
