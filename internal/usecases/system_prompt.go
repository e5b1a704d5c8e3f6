package usecases

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cleitonmarx/symbiont-mcpweb/internal/domain"
	"go.yaml.in/yaml/v3"
)

// LoadSystemPrompt reads the system messages prepended to every query from a YAML file.
// The file holds a list of {role, content} entries; only the system role is accepted.
// An empty path or "-" means no system prompt.
func LoadSystemPrompt(path string) ([]domain.Message, error) {
	if path == "" || path == "-" {
		return nil, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open system prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	return DecodeSystemPrompt(file)
}

// DecodeSystemPrompt decodes a YAML list of system messages.
func DecodeSystemPrompt(r io.Reader) ([]domain.Message, error) {
	messages := []domain.Message{}
	if err := yaml.NewDecoder(r).Decode(&messages); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode system prompt: %w", err)
	}

	for i, msg := range messages {
		if msg.Role == "" {
			msg.Role = domain.ChatRole_System
			messages[i].Role = msg.Role
		}
		if !msg.IsSystem() {
			return nil, domain.NewConfigurationErr(
				fmt.Sprintf("system prompt message %d has role %q, expected %q", i, msg.Role, domain.ChatRole_System),
			)
		}
		messages[i].Content = strings.TrimSpace(msg.Content)
	}
	return messages, nil
}
