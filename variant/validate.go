package variant

import (
	"fmt"
	"math"
	"time"

	"github.com/audialab/syrinx"
	"github.com/audialab/syrinx/schema/field"
	"github.com/google/uuid"
)

// Validate checks decoded input against the variant and returns the
// accepted values keyed by field name. It is a pure, synchronous
// computation: the variant is immutable, so concurrent calls are safe.
//
// Presence semantics:
//
//   - A key absent from the input is an omission. On a non-partial variant
//     an omitted field takes its declared default if it has one, is skipped
//     if optional, and is a MissingFieldError otherwise. On a partial
//     variant an omitted field stays omitted — it produces no entry in the
//     returned map.
//   - A key present with a nil value is an explicit null. It is accepted
//     only for nillable fields and yields a nil entry in the returned map,
//     keeping "omitted" and "supplied as null" distinguishable.
//
// On strict variants, input keys not declared on the variant fail with an
// UnknownFieldError naming every offending key. All failures found in one
// pass are aggregated; no field is ever silently dropped or coerced.
func (v *Variant) Validate(input map[string]any) (map[string]any, error) {
	var errs []error
	if v.strict {
		if unknown := v.unknownFields(input); len(unknown) > 0 {
			errs = append(errs, syrinx.NewUnknownFieldError(v.name, unknown...))
		}
	}
	out := make(map[string]any, len(input))
	for _, fd := range v.fields {
		value, ok := input[fd.Name]
		switch {
		case !ok:
			switch {
			case v.partial:
				// Omission stays omission on update payloads.
			case fd.Default != nil:
				out[fd.Name] = resolveDefault(fd.Default)
			case fd.Optional:
			default:
				errs = append(errs, syrinx.NewMissingFieldError(v.name, fd.Name))
			}
		case value == nil:
			if !fd.Nillable {
				errs = append(errs, syrinx.NewValidationError(v.name, fd.Name, nil, "value cannot be null", nil))
				continue
			}
			out[fd.Name] = nil
		default:
			typed, err := v.conform(fd, value)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			out[fd.Name] = typed
		}
	}
	if err := syrinx.NewAggregateError(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

// conform coerces the raw value to the field type and runs its validators.
func (v *Variant) conform(fd *field.Descriptor, value any) (any, error) {
	typed, err := coerce(fd, value)
	if err != nil {
		return nil, syrinx.NewValidationError(v.name, fd.Name, value, err.Error(), nil)
	}
	for _, fn := range fd.Validators {
		if err := runValidator(fn, typed); err != nil {
			return nil, syrinx.NewValidationError(v.name, fd.Name, value, "", err)
		}
	}
	return typed, nil
}

// coerce converts a decoded JSON value to the field's Go type. Numbers
// arrive as float64, instants and identifiers as strings; typed values are
// accepted as-is so in-process callers can skip serialization.
func coerce(fd *field.Descriptor, value any) (any, error) {
	switch fd.Info.Type {
	case field.TypeBool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case field.TypeInt:
		switch n := value.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		case float64:
			if n != math.Trunc(n) {
				return nil, fmt.Errorf("value %v is not an integer", n)
			}
			return int(n), nil
		}
	case field.TypeFloat:
		switch n := value.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		}
	case field.TypeString:
		if s, ok := value.(string); ok {
			return s, nil
		}
	case field.TypeEnum:
		s, ok := value.(string)
		if !ok {
			break
		}
		for _, e := range fd.Enums {
			if e == s {
				return s, nil
			}
		}
		return nil, fmt.Errorf("value %q is not a declared enum value", s)
	case field.TypeTime:
		switch t := value.(type) {
		case time.Time:
			return t, nil
		case string:
			parsed, err := time.Parse(time.RFC3339Nano, t)
			if err != nil {
				return nil, fmt.Errorf("invalid time value %q: expected RFC 3339", t)
			}
			return parsed, nil
		}
	case field.TypeUUID:
		switch id := value.(type) {
		case uuid.UUID:
			return id, nil
		case string:
			parsed, err := uuid.Parse(id)
			if err != nil {
				return nil, fmt.Errorf("invalid uuid value %q", id)
			}
			return parsed, nil
		}
	}
	return nil, fmt.Errorf("invalid value kind %T, expected %s", value, fd.Info)
}

// runValidator dispatches the typed value to a validator registered by the
// field builders.
func runValidator(fn, value any) error {
	switch fn := fn.(type) {
	case func(string) error:
		if v, ok := value.(string); ok {
			return fn(v)
		}
	case func(int) error:
		if v, ok := value.(int); ok {
			return fn(v)
		}
	case func(float64) error:
		if v, ok := value.(float64); ok {
			return fn(v)
		}
	case func(time.Time) error:
		if v, ok := value.(time.Time); ok {
			return fn(v)
		}
	case func(uuid.UUID) error:
		if v, ok := value.(uuid.UUID); ok {
			return fn(v)
		}
	}
	return nil
}

// resolveDefault returns the default value, invoking generator functions.
func resolveDefault(def any) any {
	switch fn := def.(type) {
	case func() string:
		return fn()
	case func() int:
		return fn()
	case func() float64:
		return fn()
	case func() bool:
		return fn()
	case func() time.Time:
		return fn()
	case func() uuid.UUID:
		return fn()
	default:
		return def
	}
}
