package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cleitonmarx/symbiont-mcpweb/internal/domain"
	"github.com/cleitonmarx/symbiont-mcpweb/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	clientName    = "mcpweb"
	clientVersion = "1.0.0"
)

// transportFactory is overridden in tests to connect over in-memory transports.
var transportFactory = commandTransport

func commandTransport(_ context.Context, ep EndpointDescriptor) (mcpsdk.Transport, error) {
	// #nosec G204 -- the command is restricted to node/python by ResolveEndpoint
	cmd := exec.Command(ep.Command, ep.Args...)
	cmd.Stderr = os.Stderr
	return &mcpsdk.CommandTransport{Command: cmd}, nil
}

// ToolHostSession is an MCP client session with a tool host child process.
// Tool descriptors are listed once at open time.
type ToolHostSession struct {
	session   *mcpsdk.ClientSession
	tools     []domain.ToolDescriptor
	logger    *log.Logger
	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// OpenToolHostSession launches the tool host, performs the MCP handshake and lists its tools.
// If the handshake or the listing fails the host process is terminated before returning.
func OpenToolHostSession(ctx context.Context, ep EndpointDescriptor, logger *log.Logger) (*ToolHostSession, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	transport, err := transportFactory(spanCtx, ep)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, domain.NewConnectionErr("failed to create tool host transport", err)
	}

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: clientName, Version: clientVersion}, nil)
	session, err := client.Connect(spanCtx, transport, nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, domain.NewConnectionErr(fmt.Sprintf("failed to connect to tool host %s", ep.ScriptPath), err)
	}

	tools, err := listTools(spanCtx, session)
	if telemetry.RecordErrorAndStatus(span, err) {
		if closeErr := session.Close(); closeErr != nil {
			logger.Printf("ToolHostSession: failed to close session after listing error: %v", closeErr)
		}
		return nil, domain.NewConnectionErr("failed to list tools", err)
	}

	return &ToolHostSession{
		session: session,
		tools:   tools,
		logger:  logger,
	}, nil
}

func listTools(ctx context.Context, session *mcpsdk.ClientSession) ([]domain.ToolDescriptor, error) {
	var tools []domain.ToolDescriptor
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			return nil, err
		}
		descriptor, err := toToolDescriptor(tool)
		if err != nil {
			return nil, err
		}
		tools = append(tools, descriptor)
	}
	return tools, nil
}

// ListTools returns the descriptors listed when the session was opened.
func (s *ToolHostSession) ListTools(_ context.Context) ([]domain.ToolDescriptor, error) {
	if s.closed.Load() {
		return nil, domain.NewConnectionErr("tool host session is closed", nil)
	}
	out := make([]domain.ToolDescriptor, len(s.tools))
	copy(out, s.tools)
	return out, nil
}

// Invoke calls the named tool. Both transport failures and results flagged as
// errors by the tool are returned as *domain.ToolExecutionErr.
func (s *ToolHostSession) Invoke(ctx context.Context, name string, arguments map[string]any) (domain.ToolResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if s.closed.Load() {
		err := domain.NewConnectionErr("tool host session is closed", nil)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ToolResult{}, err
	}

	if arguments == nil {
		arguments = map[string]any{}
	}

	result, err := s.session.CallTool(spanCtx, &mcpsdk.CallToolParams{
		Name:      name,
		Arguments: arguments,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ToolResult{}, domain.NewToolExecutionErr(name, "tool call failed", err)
	}

	toolResult, err := toToolResult(result)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ToolResult{}, domain.NewToolExecutionErr(name, "invalid tool result", err)
	}

	if result.IsError {
		reason := toolResult.DisplayText()
		if reason == "" {
			reason = "tool reported an error"
		}
		err = domain.NewToolExecutionErr(name, reason, nil)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ToolResult{}, err
	}

	return toolResult, nil
}

// Close ends the session and terminates the tool host process. It is idempotent.
func (s *ToolHostSession) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.closeErr = s.session.Close()
	})
	return s.closeErr
}

func toToolDescriptor(tool *mcpsdk.Tool) (domain.ToolDescriptor, error) {
	schema := map[string]any{}
	if tool.InputSchema != nil {
		raw, err := json.Marshal(tool.InputSchema)
		if err != nil {
			return domain.ToolDescriptor{}, fmt.Errorf("invalid input schema for tool %s: %w", tool.Name, err)
		}
		if err := json.Unmarshal(raw, &schema); err != nil {
			return domain.ToolDescriptor{}, fmt.Errorf("invalid input schema for tool %s: %w", tool.Name, err)
		}
	}
	return domain.ToolDescriptor{
		Name:        tool.Name,
		Description: tool.Description,
		InputSchema: schema,
	}, nil
}

// toToolResult resolves the shape of a tool result: content items when the tool
// returned any, otherwise its structured content as an opaque value.
func toToolResult(result *mcpsdk.CallToolResult) (domain.ToolResult, error) {
	if result == nil {
		return domain.NewOpaqueToolResult(nil), nil
	}
	if len(result.Content) == 0 && result.StructuredContent != nil {
		return domain.NewOpaqueToolResult(result.StructuredContent), nil
	}

	items := make([]domain.ToolContentItem, 0, len(result.Content))
	for _, content := range result.Content {
		raw, err := marshalContent(content)
		if err != nil {
			return domain.ToolResult{}, err
		}
		var head struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			return domain.ToolResult{}, err
		}
		items = append(items, domain.ToolContentItem{
			Type: strings.TrimSpace(head.Type),
			Text: head.Text,
			Raw:  raw,
		})
	}
	return domain.NewItemsToolResult(items...), nil
}

// marshalContent encodes one content item as the tool host sent it. The SDK
// content types marshal through json.Marshal, which escapes '<', '>' and '&',
// so those escapes are reverted to keep the tool's own text.
func marshalContent(content mcpsdk.Content) (json.RawMessage, error) {
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	return unescapeHTML(raw), nil
}

// unescapeHTML rewrites the \u003c, \u003e and \u0026 escapes of a JSON
// document back to their literal characters. Other escapes are copied as is.
func unescapeHTML(raw []byte) json.RawMessage {
	if !bytes.Contains(raw, []byte(`\u00`)) {
		return raw
	}
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			out = append(out, raw[i])
			continue
		}
		if raw[i+1] == 'u' && i+6 <= len(raw) {
			switch string(bytes.ToLower(raw[i+2 : i+6])) {
			case "003c":
				out = append(out, '<')
				i += 5
				continue
			case "003e":
				out = append(out, '>')
				i += 5
				continue
			case "0026":
				out = append(out, '&')
				i += 5
				continue
			}
		}
		out = append(out, raw[i], raw[i+1])
		i++
	}
	return out
}

// InitToolHostSession opens the tool host session at startup and closes it at shutdown.
type InitToolHostSession struct {
	Logger       *log.Logger `resolve:""`
	ServerScript string      `config:"MCP_SERVER_SCRIPT"`
	session      *ToolHostSession
}

// Initialize opens the session and registers it as the domain.ToolHost.
func (i *InitToolHostSession) Initialize(ctx context.Context) (context.Context, error) {
	ep, err := ResolveEndpoint(i.ServerScript)
	if err != nil {
		return ctx, err
	}

	session, err := OpenToolHostSession(ctx, ep, i.Logger)
	if err != nil {
		return ctx, err
	}
	i.session = session
	i.Logger.Printf("ToolHostSession: connected to %s %s", ep.Command, ep.ScriptPath)

	depend.Register[domain.ToolHost](session)
	return ctx, nil
}

// Close terminates the tool host process.
func (i *InitToolHostSession) Close() {
	if i.session == nil {
		return
	}
	if err := i.session.Close(); err != nil {
		i.Logger.Printf("ToolHostSession: failed to close session: %v", err)
	}
}
