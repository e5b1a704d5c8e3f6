package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-mcpweb/internal/domain"
	"github.com/cleitonmarx/symbiont-mcpweb/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	// Maximum number of characters of a serialized tool result kept in the history
	MAX_TOOL_RESULT_HISTORY_CHARS = 1000

	// Appended to a serialized tool result cut at MAX_TOOL_RESULT_HISTORY_CHARS
	TRUNCATION_MARKER = "... [truncated]"
)

// ToolInvocation is the outcome of a single tool call.
// Err is set when the call failed; DisplayText is empty in that case and
// HistoryContent carries an error payload for the LLM.
type ToolInvocation struct {
	Call           domain.ToolCallRequest
	DisplayText    string
	HistoryContent string
	Err            error
}

// Failed reports whether the call failed.
func (ti ToolInvocation) Failed() bool {
	return ti.Err != nil
}

// ToolInvoker defines the interface for running one tool call requested by the LLM
type ToolInvoker interface {
	// Run executes the call. Failures are scoped to the returned ToolInvocation.
	Run(ctx context.Context, call domain.ToolCallRequest) ToolInvocation
}

// ToolInvokerImpl is the implementation of ToolInvoker on top of a tool host session
type ToolInvokerImpl struct {
	host    domain.ToolHost
	catalog domain.ToolCatalog
	logger  *log.Logger
}

// NewToolInvokerImpl creates a new instance of ToolInvokerImpl
func NewToolInvokerImpl(host domain.ToolHost, catalog domain.ToolCatalog, logger *log.Logger) ToolInvokerImpl {
	return ToolInvokerImpl{
		host:    host,
		catalog: catalog,
		logger:  logger,
	}
}

// Run executes the tool call and normalizes its result.
func (ti ToolInvokerImpl) Run(ctx context.Context, call domain.ToolCallRequest) ToolInvocation {
	spanCtx, span := telemetry.Start(ctx, telemetry.ToolCallAttributes(call.Name, call.ID))
	defer span.End()

	inv := ti.run(spanCtx, call)
	telemetry.RecordErrorAndStatus(span, inv.Err)
	RecordToolCall(spanCtx, call.Name, inv.Failed())
	return inv
}

func (ti ToolInvokerImpl) run(ctx context.Context, call domain.ToolCallRequest) ToolInvocation {
	if _, ok := ti.catalog.Lookup(call.Name); !ok {
		return failedInvocation(call, domain.NewToolExecutionErr(
			call.Name,
			fmt.Sprintf("tool %q is not registered", call.Name),
			nil,
		))
	}

	args, err := ParseToolArguments(call.Arguments)
	if err != nil {
		ti.logger.Printf("ToolInvoker: invalid arguments for tool %s, using {}: %v", call.Name, err)
	}

	result, err := ti.host.Invoke(ctx, call.Name, args)
	if err != nil {
		var toolErr *domain.ToolExecutionErr
		if !errors.As(err, &toolErr) {
			err = domain.NewToolExecutionErr(call.Name, "tool call failed", err)
		}
		return failedInvocation(call, err)
	}

	serialized, err := result.Serialize()
	if err != nil {
		return failedInvocation(call, domain.NewToolExecutionErr(call.Name, "failed to serialize tool result", err))
	}

	return ToolInvocation{
		Call:           call,
		DisplayText:    result.DisplayText(),
		HistoryContent: CapHistoryContent(serialized),
	}
}

// ParseToolArguments decodes the serialized arguments of a tool call.
// Empty arguments decode to an empty object. On malformed or non-object input
// it returns an empty object together with the decoding error.
func ParseToolArguments(raw string) (map[string]any, error) {
	args := map[string]any{}
	if strings.TrimSpace(raw) == "" {
		return args, nil
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return args, err
	}
	if parsed == nil {
		return args, nil
	}
	return parsed, nil
}

// CapHistoryContent bounds a serialized tool result to MAX_TOOL_RESULT_HISTORY_CHARS
// characters, appending TRUNCATION_MARKER when it was cut.
func CapHistoryContent(serialized string) string {
	runes := []rune(serialized)
	if len(runes) <= MAX_TOOL_RESULT_HISTORY_CHARS {
		return serialized
	}
	return string(runes[:MAX_TOOL_RESULT_HISTORY_CHARS]) + TRUNCATION_MARKER
}

func failedInvocation(call domain.ToolCallRequest, err error) ToolInvocation {
	payload, _ := json.Marshal(map[string]string{"error": err.Error()})
	return ToolInvocation{
		Call:           call,
		HistoryContent: CapHistoryContent(string(payload)),
		Err:            err,
	}
}

// InitToolInvoker is the initializer for the ToolInvoker
type InitToolInvoker struct {
	ToolHost domain.ToolHost    `resolve:""`
	Catalog  domain.ToolCatalog `resolve:""`
	Logger   *log.Logger        `resolve:""`
}

// Initialize registers the ToolInvoker in the dependency container
func (i InitToolInvoker) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ToolInvoker](NewToolInvokerImpl(i.ToolHost, i.Catalog, i.Logger))
	return ctx, nil
}
