package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-mcpweb/internal/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter         = otel.Meter(telemetry.InstrumentationScope)
	LLMTokensUsed metric.Int64Counter
	ToolCalls     metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	ToolCalls, err = meter.Int64Counter(
		"mcp_tool_calls_total",
		metric.WithDescription("Total tool calls executed on the tool host"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordToolCall records one tool call and whether it succeeded.
func RecordToolCall(ctx context.Context, toolName string, failed bool) {
	outcome := "success"
	if failed {
		outcome = "error"
	}
	ToolCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", toolName),
		attribute.String("outcome", outcome),
	))
}
