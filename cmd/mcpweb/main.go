package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cleitonmarx/symbiont-mcpweb/internal/app"
)

// Usage: mcpweb [path/to/server.js|server.py]
// The argument overrides MCP_SERVER_SCRIPT.
func main() {
	if err := applyServerScriptArg(os.Args[1:]); err != nil {
		panic(err)
	}

	err := app.NewMCPWebApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}

func applyServerScriptArg(args []string) error {
	if len(args) == 0 || args[0] == "" {
		return nil
	}
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve server script path: %w", err)
	}
	return os.Setenv("MCP_SERVER_SCRIPT", path)
}
