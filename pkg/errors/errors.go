package errors

import (
	"fmt"
)

// ConfigError reports an invalid chart composition: a primitive that is not
// permitted for the chart kind, a missing required field selector, or a
// chart with no data-bearing children. Composition never defaults these
// away; the error surfaces during the composition pass.
type ConfigError struct {
	Chart     string
	Primitive string
	Message   string
}

// NewConfigError constructs a ConfigError for the given chart kind and primitive.
func NewConfigError(chart, primitive, message string) error {
	return &ConfigError{Chart: chart, Primitive: primitive, Message: message}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Primitive != "" {
		return fmt.Sprintf("chart config error: %s: %s: %s", e.Chart, e.Primitive, e.Message)
	}
	return fmt.Sprintf("chart config error: %s: %s", e.Chart, e.Message)
}

// ParseError represents a chart definition parsing failure with optional
// line metadata.
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

// ValidationError captures chart definition validation issues.
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

// BridgeError represents a failure while calling across the renderer bridge
// boundary. These are logged and treated as non-fatal by callers; there is
// no retry policy.
type BridgeError struct {
	Op         string
	InstanceID string
	Err        error
}

// NewBridgeError constructs a BridgeError for the given bridge operation.
func NewBridgeError(op, instanceID string, err error) error {
	return &BridgeError{Op: op, InstanceID: instanceID, Err: err}
}

func (e *BridgeError) Error() string {
	if e == nil {
		return ""
	}
	if e.InstanceID != "" {
		return fmt.Sprintf("bridge error: %s on instance %s: %v", e.Op, e.InstanceID, e.Err)
	}
	return fmt.Sprintf("bridge error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the root error.
func (e *BridgeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
