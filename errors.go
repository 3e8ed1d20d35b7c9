package syrinx

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for the two failure classes of the library.
var (
	// ErrInvalidDefinition is returned when a schema definition is malformed:
	// traits with incompatible same-named field types, a field that cannot be
	// relaxed to optional, a broken field builder chain. Definition errors
	// are fatal at composition or registration time; the process must refuse
	// to start with a malformed schema.
	ErrInvalidDefinition = errors.New("syrinx: invalid definition")

	// ErrValidationFailed is returned when input does not satisfy a composed
	// variant: an unknown field on a strict variant, a missing required
	// field, or a declared field whose value fails its type or validator.
	// Validation errors are recoverable and carry enough detail (field name,
	// reason) for the caller to correct the input.
	ErrValidationFailed = errors.New("syrinx: validation failed")
)

// DefinitionError reports a malformed schema definition.
type DefinitionError struct {
	Variant string // Variant being composed (if known)
	Field   string // Offending field (if applicable)
	Message string
	Cause   error
}

// Error returns the error string.
func (e *DefinitionError) Error() string {
	var b strings.Builder
	b.WriteString("syrinx: definition error")
	if e.Variant != "" {
		fmt.Fprintf(&b, " on variant %q", e.Variant)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " field %q", e.Field)
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
func (e *DefinitionError) Unwrap() error { return e.Cause }

// Is reports whether the target matches the sentinel for definition errors.
func (e *DefinitionError) Is(target error) bool { return target == ErrInvalidDefinition }

// NewDefinitionError returns a new DefinitionError.
func NewDefinitionError(variant, fieldName, message string, cause error) *DefinitionError {
	return &DefinitionError{Variant: variant, Field: fieldName, Message: message, Cause: cause}
}

// IsDefinitionError reports whether the error is a DefinitionError.
func IsDefinitionError(err error) bool {
	if err == nil {
		return false
	}
	var e *DefinitionError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidDefinition)
}

// ValidationError reports a declared field whose value failed its type check
// or one of its validators.
type ValidationError struct {
	Variant string // Variant the input was validated against
	Field   string // Field that failed
	Value   any    // Offending value (nil for explicit null)
	Message string
	Cause   error
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("syrinx: validation failed")
	if e.Variant != "" {
		fmt.Fprintf(&b, " on variant %q", e.Variant)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " field %q", e.Field)
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
func (e *ValidationError) Unwrap() error { return e.Cause }

// Is reports whether the target matches the sentinel for validation errors.
func (e *ValidationError) Is(target error) bool { return target == ErrValidationFailed }

// NewValidationError returns a new ValidationError for the given field.
func NewValidationError(variant, fieldName string, value any, message string, cause error) *ValidationError {
	return &ValidationError{Variant: variant, Field: fieldName, Value: value, Message: message, Cause: cause}
}

// IsValidationError reports whether the error is a ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e)
}

// UnknownFieldError reports input fields not declared on a strict variant.
// The offending field names are reported, never silently dropped or coerced.
type UnknownFieldError struct {
	Variant string
	Fields  []string // Offending field names, sorted
}

// Error returns the error string.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("syrinx: unknown fields %s on strict variant %q",
		quoteJoin(e.Fields), e.Variant)
}

// Is reports whether the target matches the sentinel for validation errors.
func (e *UnknownFieldError) Is(target error) bool { return target == ErrValidationFailed }

// NewUnknownFieldError returns a new UnknownFieldError.
func NewUnknownFieldError(variant string, fields ...string) *UnknownFieldError {
	return &UnknownFieldError{Variant: variant, Fields: fields}
}

// IsUnknownField reports whether the error is an UnknownFieldError.
func IsUnknownField(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownFieldError
	return errors.As(err, &e)
}

// MissingFieldError reports a required field absent from the input of a
// non-partial variant.
type MissingFieldError struct {
	Variant string
	Field   string
}

// Error returns the error string.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("syrinx: missing required field %q on variant %q", e.Field, e.Variant)
}

// Is reports whether the target matches the sentinel for validation errors.
func (e *MissingFieldError) Is(target error) bool { return target == ErrValidationFailed }

// NewMissingFieldError returns a new MissingFieldError.
func NewMissingFieldError(variant, fieldName string) *MissingFieldError {
	return &MissingFieldError{Variant: variant, Field: fieldName}
}

// IsMissingField reports whether the error is a MissingFieldError.
func IsMissingField(err error) bool {
	if err == nil {
		return false
	}
	var e *MissingFieldError
	return errors.As(err, &e)
}

// AggregateError collects every error found in a single validation or
// composition pass, so the caller can fix all offending fields at once.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "syrinx: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("syrinx: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors so errors.Is and errors.As traverse
// into each of them.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// NewAggregateError returns nil if no non-nil errors are given, the single
// error if exactly one is given, and an AggregateError otherwise.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
