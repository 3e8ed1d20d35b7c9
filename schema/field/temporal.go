package field

import (
	"time"

	"github.com/audialab/syrinx/schema"
	"github.com/google/uuid"
)

// Time returns a new builder for a time field. Time values arriving as JSON
// strings are parsed as RFC 3339 by the validation engine.
func Time(name string) *TimeBuilder {
	return &TimeBuilder{desc: &Descriptor{
		Name: name,
		Info: &TypeInfo{Type: TypeTime},
	}}
}

// TimeBuilder is the builder for time fields.
type TimeBuilder struct {
	desc *Descriptor
}

// Default sets a function that generates the default value, e.g. time.Now.
func (b *TimeBuilder) Default(fn func() time.Time) *TimeBuilder {
	b.desc.Default = fn
	return b
}

// UpdateDefault sets a function generating the value stamped on every
// mutation, e.g. time.Now for an updated_at field.
func (b *TimeBuilder) UpdateDefault(fn func() time.Time) *TimeBuilder {
	b.desc.UpdateDefault = fn
	return b
}

// Validate adds a custom validator.
func (b *TimeBuilder) Validate(fn func(time.Time) error) *TimeBuilder {
	b.desc.Validators = append(b.desc.Validators, fn)
	return b
}

// Optional marks the field as optional on input.
func (b *TimeBuilder) Optional() *TimeBuilder {
	b.desc.Optional = true
	return b
}

// Nillable permits an explicit null value, distinct from omission.
func (b *TimeBuilder) Nillable() *TimeBuilder {
	b.desc.Nillable = true
	return b
}

// Immutable marks the field as assigned once and never updated.
func (b *TimeBuilder) Immutable() *TimeBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the documentation comment of the field.
func (b *TimeBuilder) Comment(c string) *TimeBuilder {
	b.desc.Comment = c
	return b
}

// Annotations attaches cross-cutting metadata to the field.
func (b *TimeBuilder) Annotations(annotations ...schema.Annotation) *TimeBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the syrinx.Field interface.
func (b *TimeBuilder) Descriptor() *Descriptor {
	return b.desc
}

// UUID returns a new builder for a UUID field. UUID values arriving as JSON
// strings are parsed in canonical form by the validation engine.
func UUID(name string) *UUIDBuilder {
	return &UUIDBuilder{desc: &Descriptor{
		Name: name,
		Info: &TypeInfo{Type: TypeUUID},
	}}
}

// UUIDBuilder is the builder for uuid.UUID fields.
type UUIDBuilder struct {
	desc *Descriptor
}

// Default sets a function that generates the default value, e.g. uuid.New.
func (b *UUIDBuilder) Default(fn func() uuid.UUID) *UUIDBuilder {
	b.desc.Default = fn
	return b
}

// Validate adds a custom validator.
func (b *UUIDBuilder) Validate(fn func(uuid.UUID) error) *UUIDBuilder {
	b.desc.Validators = append(b.desc.Validators, fn)
	return b
}

// Optional marks the field as optional on input.
func (b *UUIDBuilder) Optional() *UUIDBuilder {
	b.desc.Optional = true
	return b
}

// Nillable permits an explicit null value, distinct from omission.
func (b *UUIDBuilder) Nillable() *UUIDBuilder {
	b.desc.Nillable = true
	return b
}

// Immutable marks the field as assigned once and never updated.
func (b *UUIDBuilder) Immutable() *UUIDBuilder {
	b.desc.Immutable = true
	return b
}

// Unique marks the field value as unique across records.
func (b *UUIDBuilder) Unique() *UUIDBuilder {
	b.desc.Unique = true
	return b
}

// Comment sets the documentation comment of the field.
func (b *UUIDBuilder) Comment(c string) *UUIDBuilder {
	b.desc.Comment = c
	return b
}

// Annotations attaches cross-cutting metadata to the field.
func (b *UUIDBuilder) Annotations(annotations ...schema.Annotation) *UUIDBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the syrinx.Field interface.
func (b *UUIDBuilder) Descriptor() *Descriptor {
	return b.desc
}

// Enum returns a new builder for an enum field.
func Enum(name string) *EnumBuilder {
	return &EnumBuilder{desc: &Descriptor{
		Name: name,
		Info: &TypeInfo{Type: TypeEnum},
	}}
}

// EnumBuilder is the builder for enum fields.
type EnumBuilder struct {
	desc *Descriptor
}

// Values sets the permitted values of the enum.
func (b *EnumBuilder) Values(values ...string) *EnumBuilder {
	b.desc.Enums = append(b.desc.Enums, values...)
	return b
}

// Default sets the default value of the field. It must be one of the
// declared values.
func (b *EnumBuilder) Default(v string) *EnumBuilder {
	b.desc.Default = v
	return b
}

// Optional marks the field as optional on input.
func (b *EnumBuilder) Optional() *EnumBuilder {
	b.desc.Optional = true
	return b
}

// Nillable permits an explicit null value, distinct from omission.
func (b *EnumBuilder) Nillable() *EnumBuilder {
	b.desc.Nillable = true
	return b
}

// Immutable marks the field as assigned once and never updated.
func (b *EnumBuilder) Immutable() *EnumBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the documentation comment of the field.
func (b *EnumBuilder) Comment(c string) *EnumBuilder {
	b.desc.Comment = c
	return b
}

// Annotations attaches cross-cutting metadata to the field.
func (b *EnumBuilder) Annotations(annotations ...schema.Annotation) *EnumBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the syrinx.Field interface.
func (b *EnumBuilder) Descriptor() *Descriptor {
	desc := b.desc
	if len(desc.Enums) == 0 {
		desc.err("missing enum values")
	}
	if v, ok := desc.Default.(string); ok && !contains(desc.Enums, v) {
		desc.err("default value %q is not a declared enum value", v)
	}
	return desc
}

func contains(values []string, v string) bool {
	for _, e := range values {
		if e == v {
			return true
		}
	}
	return false
}
