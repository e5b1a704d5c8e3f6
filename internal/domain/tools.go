package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ToolDescriptor describes one capability exposed by the tool host.
// Descriptors are fetched once when the session connects and are immutable afterwards.
type ToolDescriptor struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// FunctionSchema is the function-call schema offered to the LLM for one tool.
type FunctionSchema struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ToolResultKind tags the shape of a ToolResult.
type ToolResultKind string

const (
	// ToolResultKind_Items is a sequence of typed content items.
	ToolResultKind_Items ToolResultKind = "items"
	// ToolResultKind_Opaque is a single value of unknown shape.
	ToolResultKind_Opaque ToolResultKind = "opaque"
)

// ToolContentTypeText is the only content item type whose text is shown to the user.
const ToolContentTypeText = "text"

// ToolContentItem is one typed item of a tool result.
// Raw holds the item exactly as the tool host encoded it.
type ToolContentItem struct {
	Type string
	Text string
	Raw  json.RawMessage
}

// ToolResult is the normalized result of a tool invocation.
type ToolResult struct {
	Kind  ToolResultKind
	Items []ToolContentItem
	Value any
}

// NewItemsToolResult creates a ToolResult holding a sequence of content items.
func NewItemsToolResult(items ...ToolContentItem) ToolResult {
	return ToolResult{Kind: ToolResultKind_Items, Items: items}
}

// NewOpaqueToolResult creates a ToolResult holding a single value.
func NewOpaqueToolResult(value any) ToolResult {
	return ToolResult{Kind: ToolResultKind_Opaque, Value: value}
}

// DisplayText returns the user-facing text of the result.
// Only text items are extracted; other item types are ignored.
// Opaque values are stringified: strings verbatim, anything else as JSON.
func (r ToolResult) DisplayText() string {
	if r.Kind == ToolResultKind_Items {
		texts := make([]string, 0, len(r.Items))
		for _, item := range r.Items {
			if item.Type == ToolContentTypeText {
				texts = append(texts, item.Text)
			}
		}
		return strings.Join(texts, "\n")
	}

	switch v := r.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	encoded, err := encodeJSON(r.Value)
	if err != nil {
		return fmt.Sprint(r.Value)
	}
	return encoded
}

// Serialize returns the JSON encoding of the raw result content.
func (r ToolResult) Serialize() (string, error) {
	if r.Kind != ToolResultKind_Items {
		return encodeJSON(r.Value)
	}

	items := make([]json.RawMessage, len(r.Items))
	for i, item := range r.Items {
		if len(item.Raw) > 0 {
			items[i] = item.Raw
			continue
		}
		raw, err := encodeJSON(struct {
			Type string `json:"type"`
			Text string `json:"text,omitempty"`
		}{Type: item.Type, Text: item.Text})
		if err != nil {
			return "", err
		}
		items[i] = json.RawMessage(raw)
	}
	return encodeJSON(items)
}

// encodeJSON encodes v without HTML escaping and without a trailing newline.
func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ToolHost is an open session with the process hosting the tools.
type ToolHost interface {
	// ListTools returns the descriptors of every tool exposed by the host.
	ListTools(ctx context.Context) ([]ToolDescriptor, error)
	// Invoke executes the named tool with the given arguments.
	// A failing tool is reported as a *ToolExecutionErr.
	Invoke(ctx context.Context, name string, arguments map[string]any) (ToolResult, error)
	// Close releases the session and terminates the host process. It is idempotent.
	Close() error
}

// ToolCatalog holds the function schemas discovered for the current session.
type ToolCatalog interface {
	// Schemas returns the schemas offered to the LLM, in discovery order.
	Schemas() []FunctionSchema
	// Lookup returns the schema registered under name.
	Lookup(name string) (FunctionSchema, bool)
}
