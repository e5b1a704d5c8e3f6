package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
	cause   error
}

// Error returns the error message.
func (e domainErr) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the underlying cause, if any.
func (e domainErr) Unwrap() error {
	return e.cause
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// ConfigurationErr represents an invalid or missing setting detected at startup,
// before any tool host session is opened.
type ConfigurationErr struct {
	domainErr
}

// NewConfigurationErr creates a new ConfigurationErr with the given message.
func NewConfigurationErr(message string) *ConfigurationErr {
	return &ConfigurationErr{
		domainErr: domainErr{message: message},
	}
}

// ConnectionErr represents a tool host that could not be reached.
type ConnectionErr struct {
	domainErr
}

// NewConnectionErr creates a new ConnectionErr wrapping the cause.
func NewConnectionErr(message string, cause error) *ConnectionErr {
	return &ConnectionErr{
		domainErr: domainErr{message: message, cause: cause},
	}
}

// ToolExecutionErr represents the failure of a single tool call.
// It is scoped to that call and never aborts the query.
type ToolExecutionErr struct {
	domainErr
	ToolName string
}

// NewToolExecutionErr creates a new ToolExecutionErr for the named tool.
func NewToolExecutionErr(toolName, message string, cause error) *ToolExecutionErr {
	return &ToolExecutionErr{
		domainErr: domainErr{message: message, cause: cause},
		ToolName:  toolName,
	}
}

// ModelCallErr represents a failed LLM call. It is fatal for the current query only.
type ModelCallErr struct {
	domainErr
}

// NewModelCallErr creates a new ModelCallErr wrapping the cause.
func NewModelCallErr(message string, cause error) *ModelCallErr {
	return &ModelCallErr{
		domainErr: domainErr{message: message, cause: cause},
	}
}
