package caseerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUnknownCase indicates a case name that is not registered.
	ErrUnknownCase = errors.New("unknown case")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrParse indicates a preset file could not be decoded.
	ErrParse = errors.New("parse error")
)

// UnknownCaseError is returned when a case is requested by a name that the
// registry does not know and no custom bundle was supplied.
type UnknownCaseError struct {
	// Name is the name exactly as requested
	Name string
	// Known lists the registered case names, in registry order (may be empty)
	Known []string
}

// Error returns a human-readable error message.
func (e *UnknownCaseError) Error() string {
	msg := fmt.Sprintf("unknown case %q", e.Name)
	if len(e.Known) > 0 {
		msg += " (known: " + strings.Join(e.Known, ", ") + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnknownCaseError) Is(target error) bool {
	return target == ErrUnknownCase
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, malformed custom boundaries, and
// conflicting preset registrations.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ParseError represents a failure to decode a preset file.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying decoder error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
