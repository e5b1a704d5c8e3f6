package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// useInMemoryTracer routes spans started through this package and through
// the global provider to an in-memory exporter for the duration of the test.
func useInMemoryTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	prevTracer := tracer
	tracer = tp.Tracer(InstrumentationScope)
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		tracer = prevTracer
		_ = tp.Shutdown(context.Background())
	})
	return exporter
}

type toolHostStub struct{}

func (toolHostStub) Invoke(ctx context.Context) {
	_, span := Start(ctx, ToolCallAttributes("get_weather", "call_1"))
	span.End()
}

type orchestratorStub struct{}

func (*orchestratorStub) Execute(ctx context.Context) {
	_, span := Start(ctx, QueryAttributes("q-1", "gpt-4o-mini"))
	span.End()
}

func TestStart(t *testing.T) {
	tests := map[string]struct {
		run          func(ctx context.Context)
		expectedName string
		expectedAttr []attribute.KeyValue
	}{
		"tool-call-span": {
			run:          toolHostStub{}.Invoke,
			expectedName: "telemetry::toolHostStub::Invoke",
			expectedAttr: []attribute.KeyValue{
				AttrToolName.String("get_weather"),
				AttrToolCallID.String("call_1"),
			},
		},
		"query-span": {
			run:          (&orchestratorStub{}).Execute,
			expectedName: "telemetry::orchestratorStub::Execute",
			expectedAttr: []attribute.KeyValue{
				AttrQueryID.String("q-1"),
				AttrModel.String("gpt-4o-mini"),
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			exporter := useInMemoryTracer(t)

			tt.run(t.Context())

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.expectedName, spans[0].Name)
			assert.Equal(t, InstrumentationScope, spans[0].InstrumentationScope.Name)
			assert.ElementsMatch(t, tt.expectedAttr, spans[0].Attributes)
		})
	}
}

func TestRecordErrorAndStatus(t *testing.T) {
	tests := map[string]struct {
		err            error
		expectRecorded bool
		expectedStatus sdktrace.Status
		expectedEvents int
	}{
		"tool-failure": {
			err:            errors.New("tool get_weather: city not found"),
			expectRecorded: true,
			expectedStatus: sdktrace.Status{Code: codes.Error, Description: "tool get_weather: city not found"},
			expectedEvents: 1,
		},
		"success": {
			expectedStatus: sdktrace.Status{Code: codes.Ok},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			exporter := useInMemoryTracer(t)

			_, span := Start(t.Context())
			assert.Equal(t, tt.expectRecorded, RecordErrorAndStatus(span, tt.err))
			span.End()

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.expectedStatus, spans[0].Status)
			assert.Len(t, spans[0].Events, tt.expectedEvents)
		})
	}
}

func TestHttpHandler(t *testing.T) {
	tests := map[string]struct {
		pattern      string
		expectedName string
	}{
		"routed-through-mux": {pattern: "POST /query", expectedName: "POST /query"},
		"direct-handler":     {expectedName: "POST /query"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			exporter := useInMemoryTracer(t)

			var h http.Handler = HttpHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}), "mcpweb-relay")
			if tt.pattern != "" {
				mux := http.NewServeMux()
				mux.Handle(tt.pattern, h)
				h = mux
			}

			req := httptest.NewRequest(http.MethodPost, "/query", nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.expectedName, spans[0].Name)
		})
	}
}

func TestWithHttpMetricAttributes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/introspect", nil)
	assert.Equal(t, "GET /introspect", WithHttpMetricAttributes(req)[0].Value.AsString())

	req.Pattern = "/introspect"
	assert.Equal(t, "/introspect", WithHttpMetricAttributes(req)[0].Value.AsString())
}
