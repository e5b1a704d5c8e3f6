package app

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont-mcpweb/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
// The relay serves it at /introspect.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, http.IntrospectionGraphName)
	return nil
}

// ReportLoggerIntrospector logs the configuration keys read at startup,
// flagging the ones that fell back to their defaults.
type ReportLoggerIntrospector struct {
	out io.Writer
}

// Introspect writes one line per configuration key.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	out := i.out
	if out == nil {
		out = os.Stdout
	}
	logger := log.New(out, "[mcpweb] ", log.LstdFlags|log.Lmsgprefix)
	for _, c := range r.Configs {
		source := "provided"
		if c.UsedDefault {
			source = "default"
		}
		logger.Printf("Config: %s (%s)", c.Key, source)
	}
	return nil
}
