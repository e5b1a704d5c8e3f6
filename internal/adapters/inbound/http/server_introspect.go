package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont-mcpweb/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// IntrospectionGraphName is the named dependency holding the mermaid graph of the app.
const IntrospectionGraphName = "introspection-graph-mermaid"

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

type introspectPage struct {
	Title string
	Graph string
	Tools []domain.FunctionSchema
}

// IntrospectHandler renders the dependency graph and, once the tool host is
// connected, the tools offered to the LLM.
func IntrospectHandler(w http.ResponseWriter, r *http.Request) {
	mermaidGraph, err := depend.ResolveNamed[string](IntrospectionGraphName)
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	page := introspectPage{
		Title: "MCP Web Client Introspection Graph",
		Graph: mermaidGraph,
	}
	if catalog, err := depend.Resolve[domain.ToolCatalog](); err == nil {
		page.Tools = catalog.Schemas()
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
