package field

import (
	"fmt"
	"regexp"

	"github.com/audialab/syrinx/schema"
)

// A Descriptor for field configuration. Builders in this package accumulate
// their configuration into a Descriptor; the variant composer consumes it.
// Builder misuse is recorded in Err and surfaced when the variant is built,
// keeping the fluent chains free of error returns.
type Descriptor struct {
	Name          string               // field name (snake_case, wire name)
	Info          *TypeInfo            // field type info
	Optional      bool                 // may be omitted from input
	Nillable      bool                 // explicit null permitted
	Immutable     bool                 // assigned once, never updated
	Unique        bool                 // unique across records
	Sensitive     bool                 // excluded from snapshots and read views
	Default       any                  // default value or generator func
	UpdateDefault any                  // generator func applied on mutation
	Validators    []any                // typed validator funcs
	Enums         []string             // permitted values for enum fields
	Size          int                  // max size for string fields (0 = unbounded)
	Comment       string               // documentation comment
	Annotations   []schema.Annotation  // cross-cutting metadata
	Err           error                // deferred builder error
}

// Clone returns a deep copy of the descriptor. The composer clones every
// descriptor it merges so composed variants never alias trait state.
func (d *Descriptor) Clone() *Descriptor {
	c := *d
	if d.Info != nil {
		info := *d.Info
		c.Info = &info
	}
	c.Validators = append([]any(nil), d.Validators...)
	c.Enums = append([]string(nil), d.Enums...)
	c.Annotations = append([]schema.Annotation(nil), d.Annotations...)
	return &c
}

func (d *Descriptor) err(format string, args ...any) {
	if d.Err == nil {
		d.Err = fmt.Errorf("field %q: "+format, append([]any{d.Name}, args...)...)
	}
}

// String returns a new builder for a string field.
func String(name string) *StringBuilder {
	return &StringBuilder{desc: &Descriptor{
		Name: name,
		Info: &TypeInfo{Type: TypeString},
	}}
}

// Text returns a new builder for an unbounded string field. It behaves like
// String with no implied size limit.
func Text(name string) *StringBuilder {
	return String(name)
}

// StringBuilder is the builder for string fields.
type StringBuilder struct {
	desc *Descriptor
}

// NotEmpty rejects empty string values.
func (b *StringBuilder) NotEmpty() *StringBuilder {
	return b.MinLen(1)
}

// MinLen rejects values shorter than i.
func (b *StringBuilder) MinLen(i int) *StringBuilder {
	if i < 0 {
		b.desc.err("MinLen value cannot be negative")
		return b
	}
	b.desc.Validators = append(b.desc.Validators, func(v string) error {
		if len(v) < i {
			return fmt.Errorf("value is less than the required length %d", i)
		}
		return nil
	})
	return b
}

// MaxLen rejects values longer than i and records i as the field size.
func (b *StringBuilder) MaxLen(i int) *StringBuilder {
	if i <= 0 {
		b.desc.err("MaxLen value must be positive")
		return b
	}
	b.desc.Size = i
	b.desc.Validators = append(b.desc.Validators, func(v string) error {
		if len(v) > i {
			return fmt.Errorf("value is greater than the size limit %d", i)
		}
		return nil
	})
	return b
}

// Match rejects values that do not match the given regular expression.
func (b *StringBuilder) Match(re *regexp.Regexp) *StringBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v string) error {
		if !re.MatchString(v) {
			return fmt.Errorf("value does not match validation %q", re)
		}
		return nil
	})
	return b
}

// Validate adds a custom validator.
func (b *StringBuilder) Validate(fn func(string) error) *StringBuilder {
	b.desc.Validators = append(b.desc.Validators, fn)
	return b
}

// Default sets the default value of the field.
func (b *StringBuilder) Default(s string) *StringBuilder {
	b.desc.Default = s
	return b
}

// DefaultFunc sets a function that generates the default value.
func (b *StringBuilder) DefaultFunc(fn func() string) *StringBuilder {
	b.desc.Default = fn
	return b
}

// Optional marks the field as optional on input.
func (b *StringBuilder) Optional() *StringBuilder {
	b.desc.Optional = true
	return b
}

// Nillable permits an explicit null value, distinct from omission.
func (b *StringBuilder) Nillable() *StringBuilder {
	b.desc.Nillable = true
	return b
}

// Immutable marks the field as assigned once and never updated.
func (b *StringBuilder) Immutable() *StringBuilder {
	b.desc.Immutable = true
	return b
}

// Unique marks the field value as unique across records.
func (b *StringBuilder) Unique() *StringBuilder {
	b.desc.Unique = true
	return b
}

// Sensitive excludes the field from snapshots and read views.
func (b *StringBuilder) Sensitive() *StringBuilder {
	b.desc.Sensitive = true
	return b
}

// Comment sets the documentation comment of the field.
func (b *StringBuilder) Comment(c string) *StringBuilder {
	b.desc.Comment = c
	return b
}

// Annotations attaches cross-cutting metadata to the field.
func (b *StringBuilder) Annotations(annotations ...schema.Annotation) *StringBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the syrinx.Field interface.
func (b *StringBuilder) Descriptor() *Descriptor {
	return b.desc
}

// Bool returns a new builder for a boolean field.
func Bool(name string) *BoolBuilder {
	return &BoolBuilder{desc: &Descriptor{
		Name: name,
		Info: &TypeInfo{Type: TypeBool},
	}}
}

// BoolBuilder is the builder for boolean fields.
type BoolBuilder struct {
	desc *Descriptor
}

// Default sets the default value of the field.
func (b *BoolBuilder) Default(v bool) *BoolBuilder {
	b.desc.Default = v
	return b
}

// Optional marks the field as optional on input.
func (b *BoolBuilder) Optional() *BoolBuilder {
	b.desc.Optional = true
	return b
}

// Nillable permits an explicit null value, distinct from omission.
func (b *BoolBuilder) Nillable() *BoolBuilder {
	b.desc.Nillable = true
	return b
}

// Immutable marks the field as assigned once and never updated.
func (b *BoolBuilder) Immutable() *BoolBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the documentation comment of the field.
func (b *BoolBuilder) Comment(c string) *BoolBuilder {
	b.desc.Comment = c
	return b
}

// Annotations attaches cross-cutting metadata to the field.
func (b *BoolBuilder) Annotations(annotations ...schema.Annotation) *BoolBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the syrinx.Field interface.
func (b *BoolBuilder) Descriptor() *Descriptor {
	return b.desc
}
