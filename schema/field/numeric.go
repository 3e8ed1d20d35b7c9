package field

import (
	"fmt"

	"github.com/audialab/syrinx/schema"
)

// Int returns a new builder for an integer field.
func Int(name string) *IntBuilder {
	return &IntBuilder{desc: &Descriptor{
		Name: name,
		Info: &TypeInfo{Type: TypeInt},
	}}
}

// IntBuilder is the builder for integer fields.
type IntBuilder struct {
	desc *Descriptor
}

// Min rejects values smaller than i.
func (b *IntBuilder) Min(i int) *IntBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v int) error {
		if v < i {
			return fmt.Errorf("value is less than the minimum %d", i)
		}
		return nil
	})
	return b
}

// Max rejects values greater than i.
func (b *IntBuilder) Max(i int) *IntBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v int) error {
		if v > i {
			return fmt.Errorf("value is greater than the maximum %d", i)
		}
		return nil
	})
	return b
}

// Range rejects values outside the range [i, j].
func (b *IntBuilder) Range(i, j int) *IntBuilder {
	if i > j {
		b.desc.err("Range lower bound is greater than the upper bound")
		return b
	}
	b.desc.Validators = append(b.desc.Validators, func(v int) error {
		if v < i || v > j {
			return fmt.Errorf("value is out of the range [%d, %d]", i, j)
		}
		return nil
	})
	return b
}

// Positive rejects values smaller than 1.
func (b *IntBuilder) Positive() *IntBuilder {
	return b.Min(1)
}

// NonNegative rejects values smaller than 0.
func (b *IntBuilder) NonNegative() *IntBuilder {
	return b.Min(0)
}

// Validate adds a custom validator.
func (b *IntBuilder) Validate(fn func(int) error) *IntBuilder {
	b.desc.Validators = append(b.desc.Validators, fn)
	return b
}

// Default sets the default value of the field.
func (b *IntBuilder) Default(i int) *IntBuilder {
	b.desc.Default = i
	return b
}

// DefaultFunc sets a function that generates the default value.
func (b *IntBuilder) DefaultFunc(fn func() int) *IntBuilder {
	b.desc.Default = fn
	return b
}

// Optional marks the field as optional on input.
func (b *IntBuilder) Optional() *IntBuilder {
	b.desc.Optional = true
	return b
}

// Nillable permits an explicit null value, distinct from omission.
func (b *IntBuilder) Nillable() *IntBuilder {
	b.desc.Nillable = true
	return b
}

// Immutable marks the field as assigned once and never updated.
func (b *IntBuilder) Immutable() *IntBuilder {
	b.desc.Immutable = true
	return b
}

// Unique marks the field value as unique across records.
func (b *IntBuilder) Unique() *IntBuilder {
	b.desc.Unique = true
	return b
}

// Comment sets the documentation comment of the field.
func (b *IntBuilder) Comment(c string) *IntBuilder {
	b.desc.Comment = c
	return b
}

// Annotations attaches cross-cutting metadata to the field.
func (b *IntBuilder) Annotations(annotations ...schema.Annotation) *IntBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the syrinx.Field interface.
func (b *IntBuilder) Descriptor() *Descriptor {
	return b.desc
}

// Float returns a new builder for a float field.
func Float(name string) *FloatBuilder {
	return &FloatBuilder{desc: &Descriptor{
		Name: name,
		Info: &TypeInfo{Type: TypeFloat},
	}}
}

// FloatBuilder is the builder for float fields.
type FloatBuilder struct {
	desc *Descriptor
}

// Min rejects values smaller than f.
func (b *FloatBuilder) Min(f float64) *FloatBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v float64) error {
		if v < f {
			return fmt.Errorf("value is less than the minimum %v", f)
		}
		return nil
	})
	return b
}

// Max rejects values greater than f.
func (b *FloatBuilder) Max(f float64) *FloatBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v float64) error {
		if v > f {
			return fmt.Errorf("value is greater than the maximum %v", f)
		}
		return nil
	})
	return b
}

// Range rejects values outside the range [i, j].
func (b *FloatBuilder) Range(i, j float64) *FloatBuilder {
	if i > j {
		b.desc.err("Range lower bound is greater than the upper bound")
		return b
	}
	b.desc.Validators = append(b.desc.Validators, func(v float64) error {
		if v < i || v > j {
			return fmt.Errorf("value is out of the range [%v, %v]", i, j)
		}
		return nil
	})
	return b
}

// Positive rejects values that are not greater than zero.
func (b *FloatBuilder) Positive() *FloatBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v float64) error {
		if v <= 0 {
			return fmt.Errorf("value must be positive")
		}
		return nil
	})
	return b
}

// Validate adds a custom validator.
func (b *FloatBuilder) Validate(fn func(float64) error) *FloatBuilder {
	b.desc.Validators = append(b.desc.Validators, fn)
	return b
}

// Default sets the default value of the field.
func (b *FloatBuilder) Default(f float64) *FloatBuilder {
	b.desc.Default = f
	return b
}

// Optional marks the field as optional on input.
func (b *FloatBuilder) Optional() *FloatBuilder {
	b.desc.Optional = true
	return b
}

// Nillable permits an explicit null value, distinct from omission.
func (b *FloatBuilder) Nillable() *FloatBuilder {
	b.desc.Nillable = true
	return b
}

// Immutable marks the field as assigned once and never updated.
func (b *FloatBuilder) Immutable() *FloatBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the documentation comment of the field.
func (b *FloatBuilder) Comment(c string) *FloatBuilder {
	b.desc.Comment = c
	return b
}

// Annotations attaches cross-cutting metadata to the field.
func (b *FloatBuilder) Annotations(annotations ...schema.Annotation) *FloatBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the syrinx.Field interface.
func (b *FloatBuilder) Descriptor() *Descriptor {
	return b.desc
}
