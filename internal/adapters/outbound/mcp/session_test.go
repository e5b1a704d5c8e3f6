package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"sync/atomic"
	"testing"

	"github.com/cleitonmarx/symbiont-mcpweb/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerWeatherTools(server *mcpsdk.Server) {
	server.AddTool(&mcpsdk.Tool{
		Name:        "get_weather",
		Description: "Current weather for a city",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"city": map[string]any{"type": "string"},
			},
		},
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		var args map[string]any
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return nil, err
			}
		}
		city, _ := args["city"].(string)
		if city == "" {
			return &mcpsdk.CallToolResult{
				IsError: true,
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "city not found"}},
			}, nil
		}
		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "Sunny, 22C in " + city}},
		}, nil
	})

	server.AddTool(&mcpsdk.Tool{
		Name:        "radar",
		InputSchema: map[string]any{"type": "object"},
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{
				&mcpsdk.ImageContent{Data: []byte{0x89, 0x50}, MIMEType: "image/png"},
				&mcpsdk.TextContent{Text: "radar image"},
			},
		}, nil
	})
}

// useInMemoryServer points transportFactory at an in-process MCP server.
func useInMemoryServer(t *testing.T, calls *atomic.Int32) {
	t.Helper()
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "weather-server", Version: "test"}, nil)
	registerWeatherTools(server)

	serverTransport, clientTransport := mcpsdk.NewInMemoryTransports()
	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		session, err := server.Connect(ctx, serverTransport, nil)
		ready <- err
		if err != nil {
			return
		}
		<-ctx.Done()
		_ = session.Close()
	}()

	original := transportFactory
	transportFactory = func(context.Context, EndpointDescriptor) (mcpsdk.Transport, error) {
		if calls != nil {
			calls.Add(1)
		}
		return clientTransport, nil
	}
	t.Cleanup(func() {
		transportFactory = original
		cancel()
		<-done
		require.NoError(t, <-ready)
	})
}

type failingTransport struct{}

func (failingTransport) Connect(context.Context) (mcpsdk.Connection, error) {
	return nil, errors.New("connect failed")
}

func openTestSession(t *testing.T) *ToolHostSession {
	t.Helper()
	useInMemoryServer(t, nil)
	session, err := OpenToolHostSession(
		context.Background(),
		EndpointDescriptor{ScriptPath: "weather.js", Command: "node", Args: []string{"weather.js"}},
		log.New(io.Discard, "", 0),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestOpenToolHostSession_ListTools(t *testing.T) {
	session := openTestSession(t)

	tools, err := session.ListTools(context.Background())
	require.NoError(t, err)
	require.Len(t, tools, 2)

	byName := map[string]domain.ToolDescriptor{}
	for _, tool := range tools {
		byName[tool.Name] = tool
	}
	weather := byName["get_weather"]
	assert.Equal(t, "Current weather for a city", weather.Description)
	assert.Equal(t, "object", weather.InputSchema["type"])
	assert.Contains(t, weather.InputSchema, "properties")
	assert.Equal(t, "", byName["radar"].Description)
}

func TestToolHostSession_Invoke(t *testing.T) {
	session := openTestSession(t)

	tests := map[string]struct {
		tool          string
		args          map[string]any
		expectDisplay string
		expectErr     string
		check         func(*testing.T, domain.ToolResult)
	}{
		"text-result": {
			tool:          "get_weather",
			args:          map[string]any{"city": "Paris"},
			expectDisplay: "Sunny, 22C in Paris",
			check: func(t *testing.T, result domain.ToolResult) {
				serialized, err := result.Serialize()
				require.NoError(t, err)
				assert.JSONEq(t, `[{"type":"text","text":"Sunny, 22C in Paris"}]`, serialized)
			},
		},
		"mixed-content": {
			tool:          "radar",
			args:          nil,
			expectDisplay: "radar image",
			check: func(t *testing.T, result domain.ToolResult) {
				require.Len(t, result.Items, 2)
				assert.Equal(t, "image", result.Items[0].Type)
				serialized, err := result.Serialize()
				require.NoError(t, err)
				assert.Contains(t, serialized, `"mimeType":"image/png"`)
			},
		},
		"tool-reported-error": {
			tool:      "get_weather",
			args:      map[string]any{},
			expectErr: "city not found",
		},
		"unknown-tool": {
			tool:      "launch_rocket",
			args:      map[string]any{},
			expectErr: "tool call failed",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result, err := session.Invoke(context.Background(), tt.tool, tt.args)
			if tt.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectErr)
				var toolErr *domain.ToolExecutionErr
				require.ErrorAs(t, err, &toolErr)
				assert.Equal(t, tt.tool, toolErr.ToolName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.ToolResultKind_Items, result.Kind)
			assert.Equal(t, tt.expectDisplay, result.DisplayText())
			if tt.check != nil {
				tt.check(t, result)
			}
		})
	}
}

func TestToolHostSession_Close(t *testing.T) {
	session := openTestSession(t)

	assert.NoError(t, session.Close())
	assert.NoError(t, session.Close())

	_, err := session.Invoke(context.Background(), "get_weather", map[string]any{"city": "Paris"})
	var connErr *domain.ConnectionErr
	assert.ErrorAs(t, err, &connErr)

	_, err = session.ListTools(context.Background())
	assert.ErrorAs(t, err, &connErr)
}

func TestOpenToolHostSession_ConnectFailure(t *testing.T) {
	original := transportFactory
	transportFactory = func(context.Context, EndpointDescriptor) (mcpsdk.Transport, error) {
		return failingTransport{}, nil
	}
	t.Cleanup(func() { transportFactory = original })

	session, err := OpenToolHostSession(
		context.Background(),
		EndpointDescriptor{ScriptPath: "weather.py", Command: "python3", Args: []string{"weather.py"}},
		log.New(io.Discard, "", 0),
	)
	assert.Nil(t, session)
	var connErr *domain.ConnectionErr
	assert.ErrorAs(t, err, &connErr)
}

func TestToToolResult(t *testing.T) {
	tests := map[string]struct {
		result        *mcpsdk.CallToolResult
		expectKind      domain.ToolResultKind
		expectDisplay   string
		expectSerialize string
	}{
		"nil-result": {
			result:        nil,
			expectKind:    domain.ToolResultKind_Opaque,
			expectDisplay: "",
		},
		"structured-only": {
			result:        &mcpsdk.CallToolResult{StructuredContent: map[string]any{"temp": 21}},
			expectKind:    domain.ToolResultKind_Opaque,
			expectDisplay: `{"temp":21}`,
		},
		"text-items": {
			result: &mcpsdk.CallToolResult{Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: "one"},
				&mcpsdk.TextContent{Text: "two"},
			}},
			expectKind:      domain.ToolResultKind_Items,
			expectDisplay:   "one\ntwo",
			expectSerialize: `[{"type":"text","text":"one"},{"type":"text","text":"two"}]`,
		},
		"markup-kept-verbatim": {
			result: &mcpsdk.CallToolResult{Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: "a<b & c>d"},
			}},
			expectKind:      domain.ToolResultKind_Items,
			expectDisplay:   "a<b & c>d",
			expectSerialize: `[{"type":"text","text":"a<b & c>d"}]`,
		},
		"empty-content": {
			result:        &mcpsdk.CallToolResult{},
			expectKind:    domain.ToolResultKind_Items,
			expectDisplay: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := toToolResult(tt.result)
			require.NoError(t, err)
			assert.Equal(t, tt.expectKind, got.Kind)
			assert.Equal(t, tt.expectDisplay, got.DisplayText())
			if tt.expectSerialize != "" {
				serialized, err := got.Serialize()
				require.NoError(t, err)
				assert.Equal(t, tt.expectSerialize, serialized)
			}
		})
	}
}

func TestInitToolHostSession_Initialize(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var calls atomic.Int32
		useInMemoryServer(t, &calls)

		initializer := &InitToolHostSession{
			Logger:       log.New(io.Discard, "", 0),
			ServerScript: "weather.js",
		}
		ctx, err := initializer.Initialize(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, ctx)
		t.Cleanup(initializer.Close)
		assert.Equal(t, int32(1), calls.Load())

		host, err := depend.Resolve[domain.ToolHost]()
		require.NoError(t, err)
		tools, err := host.ListTools(context.Background())
		require.NoError(t, err)
		assert.Len(t, tools, 2)
	})

	t.Run("unsupported-script-starts-nothing", func(t *testing.T) {
		var calls atomic.Int32
		useInMemoryServer(t, &calls)

		initializer := &InitToolHostSession{
			Logger:       log.New(io.Discard, "", 0),
			ServerScript: "weather.rb",
		}
		_, err := initializer.Initialize(context.Background())
		var cfgErr *domain.ConfigurationErr
		assert.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, int32(0), calls.Load())
		initializer.Close()
	})
}

func TestUnescapeHTML(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want string
	}{
		"no-escapes":         {raw: `{"text":"plain"}`, want: `{"text":"plain"}`},
		"html-escapes":       {raw: `{"text":"a\u003cb \u0026 c\u003ed"}`, want: `{"text":"a<b & c>d"}`},
		"upper-case-hex":     {raw: `{"text":"\u003C\u003E"}`, want: `{"text":"<>"}`},
		"escaped-backslash":  {raw: `{"text":"\\u003c"}`, want: `{"text":"\\u003c"}`},
		"other-escapes-kept": {raw: `{"text":"line\nbreak \"q\" é"}`, want: `{"text":"line\nbreak \"q\" é"}`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := unescapeHTML([]byte(tt.raw))
			assert.Equal(t, tt.want, string(got))
			assert.True(t, json.Valid(got))
		})
	}
}
