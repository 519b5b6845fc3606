package conversation

import "strings"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is an immutable role + content pair.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is an append-only ordered sequence of messages with an
// optional system prompt. The client reads it to build wire transcripts
// and never mutates it.
type Conversation struct {
	systemPrompt string
	messages     []Message
}

func New() *Conversation {
	return &Conversation{}
}

func (c *Conversation) SetSystemPrompt(prompt string) {
	c.systemPrompt = strings.TrimSpace(prompt)
}

func (c *Conversation) SystemPrompt() string {
	return c.systemPrompt
}

func (c *Conversation) AddUserMessage(content string) {
	c.messages = append(c.messages, Message{Role: RoleUser, Content: content})
}

func (c *Conversation) AddAssistantMessage(content string) {
	c.messages = append(c.messages, Message{Role: RoleAssistant, Content: content})
}

// Messages returns a copy so callers cannot alias the internal slice.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int {
	return len(c.messages)
}
