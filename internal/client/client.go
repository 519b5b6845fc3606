package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/harunnryd/genji/internal/config"
	"github.com/harunnryd/genji/internal/conversation"
	genjiErrors "github.com/harunnryd/genji/internal/errors"
	"github.com/harunnryd/genji/internal/logger"
	"github.com/harunnryd/genji/internal/tool"

	"github.com/oklog/ulid/v2"
)

const nudgeMessage = "Please use your tools or respond with text."

// Client drives exchanges against an OpenAI-compatible chat-completion
// endpoint: it sends the transcript, executes requested tool calls
// through the runner, and loops until the model answers with text or
// the iteration budget runs out.
type Client struct {
	model         config.ModelConfig
	maxIterations int
	transport     Transport
	tools         *tool.Runner
	echo          io.Writer
}

type Option func(*Client)

// WithEcho redirects the operator-facing tool output echo (default stderr).
func WithEcho(w io.Writer) Option {
	return func(c *Client) { c.echo = w }
}

func New(cfg *config.Config, transport Transport, tools *tool.Runner, opts ...Option) *Client {
	c := &Client{
		model:         cfg.Model,
		maxIterations: cfg.Agent.MaxIterations,
		transport:     transport,
		tools:         tools,
		echo:          os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BuildRequest assembles the single-shot wire request for a
// conversation. The agent loop builds its requests the same way, with
// the same system-prompt override rule.
func (c *Client) BuildRequest(conv *conversation.Conversation) ([]byte, error) {
	req := c.newRequest(buildTranscript(conv, c.model.SystemPrompt), buildTools(c.tools.Definitions()))
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, genjiErrors.Wrap(err, "marshal request")
	}
	return payload, nil
}

func (c *Client) newRequest(transcript []json.RawMessage, tools []wireTool) wireRequest {
	req := wireRequest{
		Model:     c.model.Name,
		MaxTokens: c.model.MaxTokens,
		Messages:  transcript,
		Tools:     tools,
	}
	if c.model.Temperature >= 0 {
		temp := c.model.Temperature
		req.Temperature = &temp
	}
	return req
}

// SendMessage runs one full exchange. The working transcript is owned by
// this invocation alone: it is built fresh from the conversation, grows
// with tool-call turns the caller never sees, and is discarded on exit.
func (c *Client) SendMessage(ctx context.Context, conv *conversation.Conversation) (*ChatResponse, error) {
	traceID := ulid.Make().String()
	ctx = logger.WithTraceID(ctx, traceID)

	transcript := buildTranscript(conv, c.model.SystemPrompt)
	tools := buildTools(c.tools.Definitions())

	for i := 0; i < c.maxIterations; i++ {
		payload, err := json.Marshal(c.newRequest(transcript, tools))
		if err != nil {
			return nil, genjiErrors.Wrap(err, "marshal request")
		}
		slog.Debug("chat request", "iteration", i, "trace_id", traceID, "body", string(payload))

		status, body, err := c.transport.Post(ctx, payload)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, apiError(status, body)
		}
		slog.Debug("chat response", "iteration", i, "trace_id", traceID, "body", string(body))

		var resp wireResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, genjiErrors.MalformedResponse(fmt.Sprintf("failed to parse API response: %v", err))
		}
		if len(resp.Choices) == 0 {
			return nil, genjiErrors.MalformedResponse("response missing choices array")
		}

		rawMsg := resp.Choices[0].Message
		var msg wireMessage
		if err := json.Unmarshal(rawMsg, &msg); err != nil {
			return nil, genjiErrors.MalformedResponse(fmt.Sprintf("failed to parse choice message: %v", err))
		}

		// Tool calls: execute in order and loop
		if len(msg.ToolCalls) > 0 {
			transcript = append(transcript, rawMsg)

			for _, tc := range msg.ToolCalls {
				output := c.tools.Execute(ctx, tc.Function.Name, tc.Function.Arguments)
				fmt.Fprintln(c.echo, output)

				result := output
				transcript = append(transcript, rawMessage(wireMessage{
					Role:       "tool",
					ToolCallID: tc.ID,
					Content:    &result,
				}))
			}
			continue
		}

		// Text content: the final answer
		if msg.Content != nil && *msg.Content != "" {
			return parseResponse(body)
		}

		// Empty/null content with no tool calls: nudge the model
		if hasContentField(rawMsg) {
			transcript = append(transcript, rawMsg)
		}
		nudge := nudgeMessage
		transcript = append(transcript, rawMessage(wireMessage{
			Role:    string(conversation.RoleUser),
			Content: &nudge,
		}))
	}

	return nil, fmt.Errorf("no final answer after %d iterations: %w", c.maxIterations, genjiErrors.ErrAgentLoopExceeded)
}

func hasContentField(rawMsg json.RawMessage) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(rawMsg, &fields); err != nil {
		return false
	}
	_, ok := fields["content"]
	return ok
}

// apiError maps a non-200 response to an error carrying the status and
// either the API-provided error.message or the raw body.
func apiError(status int, body []byte) error {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	message := string(body)
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		message = parsed.Error.Message
	}
	return &genjiErrors.APIError{Status: status, Message: message}
}
