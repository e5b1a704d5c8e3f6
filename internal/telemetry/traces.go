package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationScope names the tracer and meter of every span and metric emitted by mcpweb.
const InstrumentationScope = "mcpweb"

var (
	tracer = otel.Tracer(InstrumentationScope)
)

// Span attribute keys shared by the query pipeline.
const (
	AttrQueryID    = attribute.Key("mcpweb.query.id")
	AttrToolName   = attribute.Key("mcpweb.tool.name")
	AttrToolCallID = attribute.Key("mcpweb.tool.call_id")
	AttrModel      = attribute.Key("mcpweb.llm.model")
)

// QueryAttributes tags a query span with its correlation id and model.
func QueryAttributes(queryID, model string) trace.SpanStartOption {
	return trace.WithAttributes(AttrQueryID.String(queryID), AttrModel.String(model))
}

// ToolCallAttributes tags a tool call span with the tool name and the LLM call id.
func ToolCallAttributes(toolName, callID string) trace.SpanStartOption {
	return trace.WithAttributes(AttrToolName.String(toolName), AttrToolCallID.String(callID))
}

// Start opens a span named after the calling function, e.g. "usecases::ProcessQueryImpl::Execute".
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, callerSpanName(2), opts...)
}

// RecordErrorAndStatus marks the span as failed when err is set and as OK otherwise.
// It reports whether err was set, so it can guard the error branch directly.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	if err == nil {
		span.SetStatus(codes.Ok, "OK")
		return false
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return true
}

// HttpHandler instruments h with a server span per request and the http.route metric attribute.
func HttpHandler(h http.Handler, operation string) http.Handler {
	return otelhttp.NewHandler(h, operation,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
		otelhttp.WithMetricAttributesFn(WithHttpMetricAttributes),
	)
}

// SpanNameFormatter names HTTP spans after the matched mux pattern, or
// "METHOD /path" when the request was not routed through a pattern.
func SpanNameFormatter(_ string, r *http.Request) string {
	return httpRoute(r)
}

func httpRoute(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
}

// callerSpanName turns the function at the given stack depth into
// "package::Type::Method".
func callerSpanName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	name = name[strings.LastIndex(name, "/")+1:]
	name = strings.NewReplacer("(*", "", ")", "").Replace(name)
	return strings.ReplaceAll(name, ".", "::")
}

// newTracerProvider batches spans to the OTLP/HTTP collector at endpoint.
func newTracerProvider(ctx context.Context, res *resource.Resource, endpoint string) (*sdktrace.TracerProvider, sdktrace.SpanExporter, error) {
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(time.Second)),
		sdktrace.WithResource(res),
	)
	return tracerProvider, exporter, nil
}
