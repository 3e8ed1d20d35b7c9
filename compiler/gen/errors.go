// Package gen derives typed Go structs from composed variants, giving the
// transport and persistence layers compile-time contracts for the schemas
// they bind to.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the generator's failure cases.
var (
	// ErrMissingConfig indicates an incomplete generator configuration.
	ErrMissingConfig = errors.New("syrinx: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("syrinx: code generation failed")
)

// ConfigError reports an invalid generator configuration option.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("syrinx: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("syrinx: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel for config errors.
func (e *ConfigError) Is(target error) bool { return target == ErrMissingConfig }

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// GenerationError reports a failure while rendering or writing a file.
type GenerationError struct {
	Variant string
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("syrinx: generation error")
	if e.Variant != "" {
		b.WriteString(" for variant ")
		b.WriteString(e.Variant)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error { return e.Cause }

// Is reports whether the target matches the sentinel for generation errors.
func (e *GenerationError) Is(target error) bool { return target == ErrGenerationFailed }

// NewGenerationError creates a new GenerationError.
func NewGenerationError(variantName, file, message string, cause error) *GenerationError {
	return &GenerationError{Variant: variantName, File: file, Message: message, Cause: cause}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var e *GenerationError
	return errors.As(err, &e)
}
