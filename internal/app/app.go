package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-mcpweb/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-mcpweb/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-mcpweb/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-mcpweb/internal/adapters/outbound/mcp"
	"github.com/cleitonmarx/symbiont-mcpweb/internal/adapters/outbound/openai"
	"github.com/cleitonmarx/symbiont-mcpweb/internal/telemetry"
	"github.com/cleitonmarx/symbiont-mcpweb/internal/usecases"
)

// NewMCPWebApp creates and returns a new instance of the MCP web client application.
func NewMCPWebApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitVaultProvider{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&mcp.InitToolHostSession{},
			&openai.InitAssistantClient{},

			&usecases.InitToolRegistry{},
			&usecases.InitToolInvoker{},
			&usecases.InitProcessQuery{},
		).
		Host(
			&http.QueryRelayServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
