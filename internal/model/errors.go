package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks
var (
	ErrNoOpenPosition    = errors.New("no open position")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrUnknownDateFormat = errors.New("unknown date format")
	ErrMissingField      = errors.New("missing field")
)

// ParseError represents errors reading an order document or definition
type ParseError struct {
	Profile string
	Field   string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Profile, e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Profile, e.Field, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error
func NewParseError(profile, field, message string, cause error) *ParseError {
	return &ParseError{
		Profile: profile,
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Value   interface{}
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// ExtractionError represents failures reading facts out of a finished order
type ExtractionError struct {
	Method  string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed [%s]: %s (%v)", e.Method, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed [%s]: %s", e.Method, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// NewExtractionError creates a new extraction error
func NewExtractionError(method, message string, cause error) *ExtractionError {
	return &ExtractionError{
		Method:  method,
		Message: message,
		Cause:   cause,
	}
}

// UsageError reports a misuse of the builder API. It is raised with panic,
// never returned.
type UsageError struct {
	Op    string
	Cause error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *UsageError) Unwrap() error {
	return e.Cause
}

// NewUsageError creates a new usage error
func NewUsageError(op string, cause error) *UsageError {
	return &UsageError{Op: op, Cause: cause}
}
