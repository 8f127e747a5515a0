// Package errors provides the error types returned at the boundaries of the
// drawing library: tool construction, the board and configuration.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrUnknownTool   = errors.New("unknown tool kind")
	ErrToolNotFound  = errors.New("tool not found")
	ErrToolExists    = errors.New("tool already exists")
	ErrInvalidPoint  = errors.New("invalid point")
	ErrPointCount    = errors.New("wrong number of anchor points")
	ErrInvalidOption = errors.New("invalid tool option")
	ErrConfigInvalid = errors.New("invalid configuration")
)

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ToolError represents a failed operation on a drawing tool.
type ToolError struct {
	ToolID    string
	Kind      string
	Operation string
	Err       error
}

func (e *ToolError) Error() string {
	switch {
	case e.ToolID != "" && e.Kind != "":
		return fmt.Sprintf("tool error [%s %s] %s: %v", e.Kind, e.ToolID, e.Operation, e.Err)
	case e.ToolID != "":
		return fmt.Sprintf("tool error [%s] %s: %v", e.ToolID, e.Operation, e.Err)
	default:
		return fmt.Sprintf("tool error [%s] %s: %v", e.Kind, e.Operation, e.Err)
	}
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// NewToolError creates a new ToolError.
func NewToolError(toolID, kind, operation string, err error) *ToolError {
	return &ToolError{
		ToolID:    toolID,
		Kind:      kind,
		Operation: operation,
		Err:       err,
	}
}

// PointCountError reports that a tool received the wrong number of anchors.
type PointCountError struct {
	Kind string
	Want int
	Got  int
}

func (e *PointCountError) Error() string {
	return fmt.Sprintf("%s needs %d points, got %d", e.Kind, e.Want, e.Got)
}

func (e *PointCountError) Unwrap() error {
	return ErrPointCount
}

// NewPointCountError creates a new PointCountError.
func NewPointCountError(kind string, want, got int) *PointCountError {
	return &PointCountError{
		Kind: kind,
		Want: want,
		Got:  got,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
