// Package http exposes the query relay: a JSON endpoint that forwards a
// natural-language query to the orchestrator and a small embedded web page.
package http

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-mcpweb/internal/telemetry"
	"github.com/cleitonmarx/symbiont-mcpweb/internal/usecases"
	"github.com/rs/cors"
)

// QueryRelayServer is the HTTP relay and UI server for the MCP web client.
type QueryRelayServer struct {
	Port              int                   `config:"HTTP_PORT" default:"3000"`
	Logger            *log.Logger           `resolve:""`
	ProcessQueryUCase usecases.ProcessQuery `resolve:""`

	// the tool host session is not safe for overlapping conversations
	mu sync.Mutex
}

//go:embed webappdist/*
var embedFS embed.FS

// Handler builds the relay routes wrapped with telemetry and CORS.
func (api *QueryRelayServer) Handler() (http.Handler, error) {
	mux := http.NewServeMux()

	sub, err := fs.Sub(embedFS, "webappdist")
	if err != nil {
		return nil, fmt.Errorf("failed to create sub filesystem for webapp: %w", err)
	}
	mux.Handle("/", http.FileServerFS(sub))

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	mux.Handle("/query", telemetry.HttpHandler(http.HandlerFunc(api.Query), "mcpweb-relay"))

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(mux), nil
}

// Run starts the HTTP server for the QueryRelayServer.
func (api *QueryRelayServer) Run(ctx context.Context) error {
	h, err := api.Handler()
	if err != nil {
		return err
	}

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("QueryRelayServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("QueryRelayServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("QueryRelayServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the QueryRelayServer is ready by performing a health check.
func (api *QueryRelayServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
