package domain

// DefaultMaxWindowMessages is the number of non-system messages kept in a conversation window.
const DefaultMaxWindowMessages = 10

// TrimWindow bounds a message history to all of its system messages followed by
// the last maxNonSystem non-system messages. Relative order is preserved within
// each partition. A non-positive maxNonSystem keeps only the system messages.
func TrimWindow(messages []Message, maxNonSystem int) []Message {
	var (
		system []Message
		rest   []Message
	)
	for _, msg := range messages {
		if msg.IsSystem() {
			system = append(system, msg)
			continue
		}
		rest = append(rest, msg)
	}

	maxNonSystem = max(maxNonSystem, 0)
	if len(rest) > maxNonSystem {
		rest = rest[len(rest)-maxNonSystem:]
	}

	trimmed := make([]Message, 0, len(system)+len(rest))
	trimmed = append(trimmed, system...)
	trimmed = append(trimmed, rest...)
	return trimmed
}

// ConversationWindow is the size-bounded view of a query's history that is sent to the LLM.
// The window is re-trimmed after every append, so its size bound holds after each round.
// It is not safe for concurrent use.
type ConversationWindow struct {
	maxNonSystem int
	messages     []Message
}

// NewConversationWindow creates a window seeded with the given messages.
func NewConversationWindow(maxNonSystem int, seed ...Message) *ConversationWindow {
	w := &ConversationWindow{maxNonSystem: maxNonSystem}
	w.Append(seed...)
	return w
}

// Append adds messages to the history and re-applies the window bound.
func (w *ConversationWindow) Append(messages ...Message) {
	w.messages = append(w.messages, messages...)
	w.messages = dropOrphanedToolResults(TrimWindow(w.messages, w.maxNonSystem))
}

// Messages returns a copy of the current window.
func (w *ConversationWindow) Messages() []Message {
	out := make([]Message, len(w.messages))
	copy(out, w.messages)
	return out
}

// Len returns the number of messages in the window.
func (w *ConversationWindow) Len() int {
	return len(w.messages)
}

// dropOrphanedToolResults removes tool messages whose originating assistant
// tool call is no longer present in the window.
func dropOrphanedToolResults(messages []Message) []Message {
	callIDs := make(map[string]struct{})
	out := messages[:0]
	for _, msg := range messages {
		if msg.HasToolCalls() {
			for _, call := range msg.ToolCalls {
				callIDs[call.ID] = struct{}{}
			}
		}
		if msg.Role == ChatRole_Tool {
			if msg.ToolCallID == nil {
				continue
			}
			if _, ok := callIDs[*msg.ToolCallID]; !ok {
				continue
			}
		}
		out = append(out, msg)
	}
	return out
}
