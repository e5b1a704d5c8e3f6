package usecases

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-mcpweb/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// BuildToolSchemas maps tool descriptors to the function schemas offered to the LLM.
// The output has one schema per descriptor, in input order.
func BuildToolSchemas(descriptors []domain.ToolDescriptor) []domain.FunctionSchema {
	schemas := make([]domain.FunctionSchema, 0, len(descriptors))
	for _, d := range descriptors {
		schemas = append(schemas, domain.FunctionSchema{
			Name:        d.Name,
			Description: d.Description,
			Parameters:  d.InputSchema,
		})
	}
	return schemas
}

// ToolRegistry is the immutable catalog of tools discovered for a session.
type ToolRegistry struct {
	schemas []domain.FunctionSchema
	byName  map[string]int
}

// NewToolRegistry creates a ToolRegistry from the descriptors listed by the tool host.
func NewToolRegistry(descriptors []domain.ToolDescriptor) ToolRegistry {
	schemas := BuildToolSchemas(descriptors)
	byName := make(map[string]int, len(schemas))
	for i, s := range schemas {
		byName[s.Name] = i
	}
	return ToolRegistry{schemas: schemas, byName: byName}
}

// Schemas returns the registered schemas in discovery order.
func (r ToolRegistry) Schemas() []domain.FunctionSchema {
	out := make([]domain.FunctionSchema, len(r.schemas))
	copy(out, r.schemas)
	return out
}

// Lookup returns the schema registered under name.
func (r ToolRegistry) Lookup(name string) (domain.FunctionSchema, bool) {
	i, ok := r.byName[name]
	if !ok {
		return domain.FunctionSchema{}, false
	}
	return r.schemas[i], true
}

// Names returns the registered tool names in discovery order.
func (r ToolRegistry) Names() []string {
	names := make([]string, len(r.schemas))
	for i, s := range r.schemas {
		names[i] = s.Name
	}
	return names
}

// InitToolRegistry lists the tools of the open session once and registers the catalog.
type InitToolRegistry struct {
	ToolHost domain.ToolHost `resolve:""`
	Logger   *log.Logger     `resolve:""`
}

// Initialize registers the ToolCatalog in the dependency container
func (i InitToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	descriptors, err := i.ToolHost.ListTools(ctx)
	if err != nil {
		return ctx, fmt.Errorf("failed to list tools: %w", err)
	}

	registry := NewToolRegistry(descriptors)
	i.Logger.Printf("ToolRegistry: connected to server with tools: %v", registry.Names())

	depend.Register[domain.ToolCatalog](registry)
	return ctx, nil
}
