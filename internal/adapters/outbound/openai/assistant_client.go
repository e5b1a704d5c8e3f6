package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-mcpweb/internal/domain"
	"github.com/cleitonmarx/symbiont-mcpweb/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// AssistantClient adapts APIClient to the domain.Assistant interface.
type AssistantClient struct {
	client APIClient
}

// NewAssistantClientAdapter creates a new adapter.
func NewAssistantClientAdapter(client APIClient) AssistantClient {
	return AssistantClient{client: client}
}

// RunTurnSync implements domain.Assistant.
func (a AssistantClient) RunTurnSync(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := a.client.Chat(spanCtx, toChatRequest(req))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AssistantTurnResponse{}, domain.NewModelCallErr("chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		err := domain.NewModelCallErr("chat completion failed", errors.New("no choices in response"))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResponse{}, err
	}

	res := domain.AssistantTurnResponse{Message: toDomainMessage(resp.Choices[0].Message)}
	if resp.Usage != nil {
		res.Usage = domain.AssistantUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return res, nil
}

func toChatRequest(req domain.AssistantTurnRequest) ChatRequest {
	adapterReq := ChatRequest{
		Model:      req.Model,
		MaxTokens:  req.MaxTokens,
		ToolChoice: string(req.ToolChoice),
		Messages:   make([]ChatMessage, len(req.Messages)),
	}

	for i, msg := range req.Messages {
		adpMsg := ChatMessage{
			Role:       string(msg.Role),
			ToolCallID: msg.ToolCallID,
		}
		if msg.Content != "" {
			content := msg.Content
			adpMsg.Content = &content
		}
		for _, call := range msg.ToolCalls {
			adpMsg.ToolCalls = append(adpMsg.ToolCalls, ToolCall{
				ID:   call.ID,
				Type: "function",
				Function: ToolCallFunction{
					Name:      call.Name,
					Arguments: call.Arguments,
				},
			})
		}
		adapterReq.Messages[i] = adpMsg
	}

	if len(req.Tools) == 0 {
		adapterReq.ToolChoice = ""
		return adapterReq
	}

	adapterReq.Tools = make([]Tool, len(req.Tools))
	for i, schema := range req.Tools {
		params := schema.Parameters
		if params == nil {
			params = map[string]any{"type": "object", "properties": map[string]any{}}
		}
		adapterReq.Tools[i] = Tool{
			Type: "function",
			Function: ToolFunc{
				Name:        schema.Name,
				Description: schema.Description,
				Parameters:  params,
			},
		}
	}

	return adapterReq
}

func toDomainMessage(msg Message) domain.Message {
	out := domain.Message{Role: domain.ChatRole_Assistant}
	if msg.Content != nil {
		out.Content = *msg.Content
	}
	for _, call := range msg.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, domain.ToolCallRequest{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}
	return out
}

// InitAssistantClient initializes the assistant client dependency.
type InitAssistantClient struct {
	HttpClient *http.Client `resolve:""`
	ModelHost  string       `config:"LLM_MODEL_HOST" default:"https://api.openai.com"`
	APIKey     string       `config:"OPENAI_API_KEY" default:"-"`
}

// Initialize registers the domain.Assistant implementation.
func (i InitAssistantClient) Initialize(ctx context.Context) (context.Context, error) {
	apiKey := strings.TrimSpace(i.APIKey)
	if apiKey == "" || apiKey == "-" {
		return ctx, domain.NewConfigurationErr("OPENAI_API_KEY is required")
	}

	depend.Register[domain.Assistant](NewAssistantClientAdapter(NewAPIClient(i.ModelHost, apiKey, i.HttpClient)))
	return ctx, nil
}
