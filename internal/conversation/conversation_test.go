package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversation_AppendOrder(t *testing.T) {
	conv := New()
	conv.AddUserMessage("hello")
	conv.AddAssistantMessage("hi there")
	conv.AddUserMessage("how are you?")

	msgs := conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, RoleUser, msgs[0].Role)
	assert.Equal(t, RoleAssistant, msgs[1].Role)
	assert.Equal(t, "how are you?", msgs[2].Content)
}

func TestConversation_MessagesReturnsCopy(t *testing.T) {
	conv := New()
	conv.AddUserMessage("original")

	msgs := conv.Messages()
	msgs[0].Content = "mutated"

	assert.Equal(t, "original", conv.Messages()[0].Content)
}

func TestConversation_SystemPrompt(t *testing.T) {
	conv := New()
	assert.Empty(t, conv.SystemPrompt())

	conv.SetSystemPrompt("  You are a helpful assistant.  ")
	assert.Equal(t, "You are a helpful assistant.", conv.SystemPrompt())
}
