package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrInactiveKind is wrapped by PropertyError when a list operation targets
// a component other than the one being edited.
var ErrInactiveKind = stdErrors.New("component is not active")

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PropertyError reports a rejected edit of a component's property bag:
// unknown key, wrong value type, list index out of range or inactive
// component.
type PropertyError struct {
	Kind    string
	Key     string
	Message string
	Err     error
}

// NewPropertyError constructs a PropertyError.
func NewPropertyError(kind, key, message string, err error) error {
	return &PropertyError{Kind: kind, Key: key, Message: message, Err: err}
}

func (e *PropertyError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("property error [%s.%s]: %s", e.Kind, e.Key, e.Message)
	}
	return fmt.Sprintf("property error [%s]: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying error.
func (e *PropertyError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
