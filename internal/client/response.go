package client

// TokenUsage reports token counts for one exchange. Counts default to
// zero when the API omits them.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ChatResponse is the terminal result of one exchange: either the
// model's final text answer or, for a bare tool-call response, a
// synthesized summary of the requested calls.
type ChatResponse struct {
	Content string
	Usage   TokenUsage
}
