package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/harunnryd/genji/internal/logger"
)

// Runner dispatches tool calls by name and always produces a textual
// result. Failures of any kind (unknown tool, bad arguments, executor
// error) become ordinary result text the model can read and react to;
// they never abort the agent loop.
type Runner struct {
	registry *Registry
}

func NewRunner(registry *Registry) *Runner {
	return &Runner{registry: registry}
}

func (r *Runner) Definitions() []Definition {
	if r == nil || r.registry == nil {
		return nil
	}
	return r.registry.Definitions()
}

// Execute handles the full lifecycle: Find Tool -> Validate Input -> Run -> Return Text.
// The arguments arrive as the raw JSON string emitted by the model.
func (r *Runner) Execute(ctx context.Context, toolName string, arguments string) string {
	t, ok := r.registry.Get(toolName)
	if !ok {
		return fmt.Sprintf("Error: unknown tool: %s", NormalizeToolName(toolName))
	}
	resolvedName := NormalizeToolName(t.Name())
	input := json.RawMessage(arguments)

	if err := ValidateInput(t.Parameters(), input); err != nil {
		slog.Warn("Tool input validation failed", "tool", resolvedName, "error", err)
		return fmt.Sprintf("Error: invalid tool arguments: %v", err)
	}

	start := time.Now()
	traceID := logger.GetTraceID(ctx)
	slog.Info("Executing tool", "tool", resolvedName, "trace_id", traceID)

	result, err := t.Execute(ctx, input)

	duration := time.Since(start)
	if err != nil {
		slog.Error("Tool execution failed", "tool", resolvedName, "error", err, "duration", duration, "trace_id", traceID)
		return fmt.Sprintf("Error: %v", err)
	}

	slog.Info("Tool execution done", "tool", resolvedName, "duration", duration, "trace_id", traceID)
	return result
}
