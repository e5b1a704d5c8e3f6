package mcp

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cleitonmarx/symbiont-mcpweb/internal/domain"
)

// EndpointDescriptor identifies the tool host process to launch.
type EndpointDescriptor struct {
	ScriptPath string
	Command    string
	Args       []string
}

// ResolveEndpoint maps a server script to the interpreter that runs it.
// Only .js (node) and .py (python3, python on Windows) scripts are accepted;
// the extension match is case-sensitive.
// Nothing is started here.
func ResolveEndpoint(scriptPath string) (EndpointDescriptor, error) {
	scriptPath = strings.TrimSpace(scriptPath)
	if scriptPath == "" {
		return EndpointDescriptor{}, domain.NewConfigurationErr("server script path is required")
	}

	var command string
	switch filepath.Ext(scriptPath) {
	case ".js":
		command = "node"
	case ".py":
		command = pythonCommand(runtime.GOOS)
	default:
		return EndpointDescriptor{}, domain.NewConfigurationErr("Server script must be a .js or .py file")
	}

	return EndpointDescriptor{
		ScriptPath: scriptPath,
		Command:    command,
		Args:       []string{scriptPath},
	}, nil
}

func pythonCommand(goos string) string {
	if goos == "windows" {
		return "python"
	}
	return "python3"
}
