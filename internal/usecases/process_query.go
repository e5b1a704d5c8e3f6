package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-mcpweb/internal/common"
	"github.com/cleitonmarx/symbiont-mcpweb/internal/domain"
	"github.com/cleitonmarx/symbiont-mcpweb/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

const (
	// Response length cap sent with every chat completion
	DEFAULT_MAX_TOKENS = 500

	// Prefix of the output line emitted for every tool call
	TOOL_MARKER_PREFIX = "[Tool: "

	// Smallest window that still holds an assistant tool call together with its result
	MIN_WINDOW_MESSAGES = 2
)

// ProcessQuery defines the interface for the ProcessQuery use case
type ProcessQuery interface {
	// Execute resolves a user query into a final answer, calling tools as requested by the LLM
	Execute(ctx context.Context, query string) (string, error)
}

// ProcessQueryImpl is the implementation of the ProcessQuery use case
type ProcessQueryImpl struct {
	assistant    domain.Assistant
	catalog      domain.ToolCatalog
	invoker      ToolInvoker
	logger       *log.Logger
	model        string
	maxTokens    int
	maxWindow    int
	systemPrompt []domain.Message
}

// NewProcessQueryImpl creates a new instance of ProcessQueryImpl
func NewProcessQueryImpl(
	assistant domain.Assistant,
	catalog domain.ToolCatalog,
	invoker ToolInvoker,
	logger *log.Logger,
	model string,
	maxTokens int,
	maxWindow int,
	systemPrompt []domain.Message,
) ProcessQueryImpl {
	if maxTokens <= 0 {
		maxTokens = DEFAULT_MAX_TOKENS
	}
	if maxWindow <= 0 {
		maxWindow = domain.DefaultMaxWindowMessages
	}
	maxWindow = max(maxWindow, MIN_WINDOW_MESSAGES)
	return ProcessQueryImpl{
		assistant:    assistant,
		catalog:      catalog,
		invoker:      invoker,
		logger:       logger,
		model:        model,
		maxTokens:    maxTokens,
		maxWindow:    maxWindow,
		systemPrompt: systemPrompt,
	}
}

// Execute resolves a user query into a final answer.
// Tool calls are run one at a time, in the order the model emitted them, and each
// is followed by a completion without tools over the updated window.
func (pq ProcessQueryImpl) Execute(ctx context.Context, query string) (string, error) {
	queryID := uuid.New()
	spanCtx, span := telemetry.Start(ctx, telemetry.QueryAttributes(queryID.String(), pq.model))
	defer span.End()

	if strings.TrimSpace(query) == "" {
		err := domain.NewValidationErr("query cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}

	window := domain.NewConversationWindow(pq.maxWindow, pq.systemPrompt...)
	window.Append(domain.Message{
		Role:    domain.ChatRole_User,
		Content: query,
	})

	tools := pq.catalog.Schemas()
	req := domain.AssistantTurnRequest{
		Model:     pq.model,
		Messages:  window.Messages(),
		MaxTokens: common.Ptr(pq.maxTokens),
		Tools:     tools,
	}
	if len(tools) > 0 {
		req.ToolChoice = domain.ToolChoice_Auto
	}

	resp, err := pq.runTurn(spanCtx, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		pq.logger.Printf("ProcessQuery: query %s failed: %v", queryID, err)
		return "", err
	}

	output := []string{}
	if !resp.Message.HasToolCalls() {
		if resp.Message.Content != "" {
			output = append(output, resp.Message.Content)
		}
		return strings.Join(output, "\n"), nil
	}

	for _, call := range resp.Message.ToolCalls {
		inv := pq.invoker.Run(spanCtx, call)
		if inv.Failed() {
			pq.logger.Printf("ProcessQuery: query %s: tool %s failed: %v", queryID, call.Name, inv.Err)
			output = append(output, fmt.Sprintf("%s%s] error: %s", TOOL_MARKER_PREFIX, call.Name, toolFailureReason(inv.Err)))
		} else {
			output = append(output, TOOL_MARKER_PREFIX+call.Name+"]")
			if inv.DisplayText != "" {
				output = append(output, inv.DisplayText)
			}
		}

		window.Append(
			domain.Message{
				Role:      domain.ChatRole_Assistant,
				Content:   resp.Message.Content,
				ToolCalls: []domain.ToolCallRequest{call},
			},
			domain.Message{
				Role:       domain.ChatRole_Tool,
				Content:    inv.HistoryContent,
				ToolCallID: common.Ptr(call.ID),
			},
		)

		followup, err := pq.runTurn(spanCtx, domain.AssistantTurnRequest{
			Model:     pq.model,
			Messages:  window.Messages(),
			MaxTokens: common.Ptr(pq.maxTokens),
		})
		if telemetry.RecordErrorAndStatus(span, err) {
			pq.logger.Printf("ProcessQuery: query %s failed after tool %s: %v", queryID, call.Name, err)
			return "", err
		}
		if followup.Message.Content != "" {
			output = append(output, followup.Message.Content)
		}
	}

	return strings.Join(output, "\n"), nil
}

// runTurn calls the LLM once and records token usage.
func (pq ProcessQueryImpl) runTurn(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
	resp, err := pq.assistant.RunTurnSync(ctx, req)
	if err != nil {
		var modelErr *domain.ModelCallErr
		if !errors.As(err, &modelErr) {
			err = domain.NewModelCallErr("chat completion failed", err)
		}
		return domain.AssistantTurnResponse{}, err
	}
	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	return resp, nil
}

// toolFailureReason returns the innermost message of a tool failure.
func toolFailureReason(err error) string {
	var toolErr *domain.ToolExecutionErr
	if errors.As(err, &toolErr) && toolErr.Unwrap() != nil {
		return toolErr.Unwrap().Error()
	}
	return err.Error()
}

// InitProcessQuery is the initializer for the ProcessQuery use case
type InitProcessQuery struct {
	Assistant domain.Assistant   `resolve:""`
	Catalog   domain.ToolCatalog `resolve:""`
	Invoker   ToolInvoker        `resolve:""`
	Logger    *log.Logger        `resolve:""`
	Model     string             `config:"LLM_MODEL" default:"gpt-4o-mini"`
	MaxTokens int                `config:"LLM_MAX_TOKENS" default:"500"`
	// Number of non-system messages kept in the window sent to the LLM
	MaxWindowMessages int    `config:"LLM_MAX_WINDOW_MESSAGES" default:"10"`
	SystemPromptFile  string `config:"LLM_SYSTEM_PROMPT_FILE" default:"-"`
}

// Initialize registers the ProcessQuery use case in the dependency container
func (i InitProcessQuery) Initialize(ctx context.Context) (context.Context, error) {
	if i.MaxWindowMessages > 0 && i.MaxWindowMessages < MIN_WINDOW_MESSAGES {
		return ctx, domain.NewConfigurationErr(fmt.Sprintf(
			"LLM_MAX_WINDOW_MESSAGES must be at least %d, got %d", MIN_WINDOW_MESSAGES, i.MaxWindowMessages,
		))
	}

	systemPrompt, err := LoadSystemPrompt(i.SystemPromptFile)
	if err != nil {
		return ctx, err
	}

	depend.Register[ProcessQuery](NewProcessQueryImpl(
		i.Assistant,
		i.Catalog,
		i.Invoker,
		i.Logger,
		i.Model,
		i.MaxTokens,
		i.MaxWindowMessages,
		systemPrompt,
	))
	return ctx, nil
}
