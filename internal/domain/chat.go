package domain

// ChatRole represents the role of a chat message
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
	ChatRole_Tool      ChatRole = "tool"
)

// Message represents one message exchanged with the LLM during a query.
// An empty Content is sent as null.
type Message struct {
	Role       ChatRole
	Content    string
	ToolCallID *string
	ToolCalls  []ToolCallRequest
}

// IsSystem reports whether the message is pinned in every conversation window.
func (m Message) IsSystem() bool {
	return m.Role == ChatRole_System
}

// HasToolCalls reports whether the message is an assistant message requesting tool calls.
func (m Message) HasToolCalls() bool {
	return m.Role == ChatRole_Assistant && len(m.ToolCalls) > 0
}

// ToolCallRequest is a tool invocation requested by the LLM.
// Arguments holds the serialized JSON arguments exactly as emitted by the model.
type ToolCallRequest struct {
	ID        string
	Name      string
	Arguments string
}
