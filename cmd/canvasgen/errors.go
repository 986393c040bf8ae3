package main

import "fmt"

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

// commandError is the user-facing failure of a command.
type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	msg := "Failed to " + e.operation
	if e.context != "" {
		msg += ": " + e.context
	}
	if e.cause != nil {
		msg += fmt.Sprintf("\n\nError: %v", e.cause)
	}
	if e.suggestion != "" {
		msg += "\n\nSuggestion: " + e.suggestion
	}
	return msg
}

func (e *commandError) Unwrap() error {
	return e.cause
}
