package domain

import "context"

// ToolChoice is the policy that tells the LLM whether it may call tools.
type ToolChoice string

const (
	ToolChoice_Auto ToolChoice = "auto"
	ToolChoice_None ToolChoice = "none"
)

// AssistantUsage contains token usage for one assistant turn.
type AssistantUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// AssistantTurnRequest is the domain request for one chat completion.
type AssistantTurnRequest struct {
	Model      string
	Messages   []Message
	MaxTokens  *int
	Tools      []FunctionSchema
	ToolChoice ToolChoice
}

// AssistantTurnResponse contains the single assistant message returned for a turn.
type AssistantTurnResponse struct {
	Message Message
	Usage   AssistantUsage
}

// Assistant defines the LLM interaction in domain terms.
type Assistant interface {
	// RunTurnSync executes one chat completion and returns the assistant message.
	RunTurnSync(ctx context.Context, req AssistantTurnRequest) (AssistantTurnResponse, error)
}
