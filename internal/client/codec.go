package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harunnryd/genji/internal/conversation"
	genjiErrors "github.com/harunnryd/genji/internal/errors"
	"github.com/harunnryd/genji/internal/tool"
)

// buildTranscript maps the domain conversation to wire messages: system
// prompt first (an override from configuration wins over the
// conversation's own), then each domain message 1:1. Building is total
// for well-formed conversations.
func buildTranscript(conv *conversation.Conversation, systemOverride string) []json.RawMessage {
	var transcript []json.RawMessage

	systemPrompt := strings.TrimSpace(systemOverride)
	if systemPrompt == "" {
		systemPrompt = conv.SystemPrompt()
	}
	if systemPrompt != "" {
		transcript = append(transcript, rawMessage(wireMessage{
			Role:    string(conversation.RoleSystem),
			Content: &systemPrompt,
		}))
	}

	for _, msg := range conv.Messages() {
		content := msg.Content
		transcript = append(transcript, rawMessage(wireMessage{
			Role:    string(msg.Role),
			Content: &content,
		}))
	}

	return transcript
}

func buildTools(defs []tool.Definition) []wireTool {
	tools := make([]wireTool, 0, len(defs))
	for _, def := range defs {
		params := def.Parameters
		if params == nil {
			params = map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			}
		}
		tools = append(tools, wireTool{
			Type: "function",
			Function: wireToolDef{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  params,
			},
		})
	}
	return tools
}

func rawMessage(m wireMessage) json.RawMessage {
	data, err := json.Marshal(m)
	if err != nil {
		// wireMessage contains only marshalable fields
		panic(fmt.Sprintf("client: marshal wire message: %v", err))
	}
	return data
}

// parseResponse interprets one API response body as a terminal
// ChatResponse. A non-empty tool_calls array is summarized as
// "[Tool call] <name>: <arguments>\n" per call in array order; an empty
// array falls through to the text-content path.
func parseResponse(body []byte) (*ChatResponse, error) {
	var resp wireResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, genjiErrors.MalformedResponse(fmt.Sprintf("failed to parse API response: %v", err))
	}
	if len(resp.Choices) == 0 {
		return nil, genjiErrors.MalformedResponse("response missing choices array")
	}

	usage := TokenUsage{}
	if resp.Usage != nil {
		usage = TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}

	var msg wireMessage
	if err := json.Unmarshal(resp.Choices[0].Message, &msg); err != nil {
		return nil, genjiErrors.MalformedResponse(fmt.Sprintf("failed to parse choice message: %v", err))
	}

	if len(msg.ToolCalls) > 0 {
		var display strings.Builder
		for _, tc := range msg.ToolCalls {
			fmt.Fprintf(&display, "[Tool call] %s: %s\n", tc.Function.Name, tc.Function.Arguments)
		}
		return &ChatResponse{Content: display.String(), Usage: usage}, nil
	}

	if msg.Content == nil {
		return nil, genjiErrors.NoContent("response contains no text content")
	}

	return &ChatResponse{Content: *msg.Content, Usage: usage}, nil
}
