package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerExecute_UnknownToolIsTextualResult(t *testing.T) {
	runner := NewRunner(NewRegistry())

	got := runner.Execute(context.Background(), "launch_missiles", `{}`)
	assert.Equal(t, "Error: unknown tool: launch_missiles", got)
}

func TestRunnerExecute_InvalidArgumentsIsTextualResult(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubTool{name: "echo", result: "ok"})
	runner := NewRunner(registry)

	got := runner.Execute(context.Background(), "echo", `{not json`)
	assert.Contains(t, got, "Error: invalid tool arguments")

	got = runner.Execute(context.Background(), "echo", `{}`)
	assert.Contains(t, got, "missing required field: value")
}

func TestRunnerExecute_Success(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubTool{name: "echo", result: "done"})
	runner := NewRunner(registry)

	got := runner.Execute(context.Background(), "echo", `{"value":"hi"}`)
	assert.Equal(t, "done", got)
}

func TestRunnerExecute_ExecutorErrorBecomesText(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubTool{name: "echo", err: errors.New("boom")})
	runner := NewRunner(registry)

	got := runner.Execute(context.Background(), "echo", `{"value":"hi"}`)
	assert.Equal(t, "Error: boom", got)
}

func TestRunnerDefinitions_NilSafe(t *testing.T) {
	var runner *Runner
	require.Nil(t, runner.Definitions())
}
