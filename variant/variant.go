// Package variant composes traits into the concrete schema variants of an
// entity's CRUD lifecycle and validates decoded input against them.
//
// A variant is built once, at process start, from an ordered list of traits:
//
//	create, err := variant.Compose("SubgenreCreate", Content{}).
//	    Strict().
//	    Build()
//
// Composition is an ordered field-set union. When two traits declare the
// same field name, the earliest trait in the composition owns the field:
// its type, flags, and validators win, and the later declaration is
// discarded. Same-named fields with different types are a definition error,
// reported by Build before any request is processed.
//
// Composed variants are immutable and safe for concurrent use. A variant
// also implements syrinx.Trait, so derived variants compose from base ones:
//
//	createInternal, err := variant.Compose("SubgenreCreateInternal",
//	    create, Ownership{}).Build()
package variant

import (
	"fmt"
	"sort"

	"github.com/audialab/syrinx"
	"github.com/audialab/syrinx/schema"
	"github.com/audialab/syrinx/schema/field"
)

// Variant is an immutable composed schema representing one lifecycle stage
// or view of an entity.
type Variant struct {
	name    string
	strict  bool
	partial bool
	fields  []*field.Descriptor
	index   map[string]int
}

// Builder composes traits into a Variant.
type Builder struct {
	name    string
	traits  []syrinx.Trait
	strict  bool
	partial bool
}

// Compose returns a builder for a variant with the given name, composed
// from the given traits in order. Order matters: it decides both field
// ordering and shadow precedence.
func Compose(name string, traits ...syrinx.Trait) *Builder {
	return &Builder{name: name, traits: traits}
}

// Strict marks the variant as externally facing: input carrying any field
// not declared on the variant is rejected with the offending names.
func (b *Builder) Strict() *Builder {
	b.strict = true
	return b
}

// Partial applies the partial transform at build time: every composed field
// is relaxed to optional while keeping its type, validators, and
// nillability. Create-time defaults are cleared so an omitted field stays
// omitted. Fields declared Immutable have no sensible optional
// representation on an update payload and fail the build.
func (b *Builder) Partial() *Builder {
	b.partial = true
	return b
}

// Build composes the variant. All definition errors found during the merge
// are aggregated, so a malformed schema reports every offending field at
// once.
func (b *Builder) Build() (*Variant, error) {
	if b.name == "" {
		return nil, syrinx.NewDefinitionError("", "", "variant name cannot be empty", nil)
	}
	v := &Variant{
		name:    b.name,
		strict:  b.strict,
		partial: b.partial,
		index:   make(map[string]int),
	}
	var errs []error
	for _, t := range b.traits {
		if t == nil {
			errs = append(errs, syrinx.NewDefinitionError(b.name, "", "nil trait in composition", nil))
			continue
		}
		for _, f := range t.Fields() {
			if err := v.merge(f.Descriptor()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if b.partial {
		for _, fd := range v.fields {
			if fd.Immutable {
				errs = append(errs, syrinx.NewDefinitionError(b.name, fd.Name,
					"immutable field has no optional representation; exclude it from the partial composition", nil))
				continue
			}
			fd.Optional = true
			fd.Default = nil
		}
	}
	if err := syrinx.NewAggregateError(errs...); err != nil {
		return nil, err
	}
	return v, nil
}

// MustBuild is like Build but panics on definition errors. It simplifies
// package-level variant declarations where a malformed schema must abort
// process start.
func (b *Builder) MustBuild() *Variant {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}
	return v
}

// merge folds one field descriptor into the variant under the
// earliest-wins precedence rule.
func (v *Variant) merge(fd *field.Descriptor) error {
	if fd.Err != nil {
		return syrinx.NewDefinitionError(v.name, fd.Name, "invalid field", fd.Err)
	}
	if fd.Name == "" {
		return syrinx.NewDefinitionError(v.name, "", "field name cannot be empty", nil)
	}
	if fd.Info == nil || !fd.Info.Valid() {
		return syrinx.NewDefinitionError(v.name, fd.Name, "missing field type", nil)
	}
	if i, ok := v.index[fd.Name]; ok {
		prior := v.fields[i]
		if !prior.Info.Comparable(fd.Info) {
			return syrinx.NewDefinitionError(v.name, fd.Name,
				fmt.Sprintf("incompatible types in composition: %s shadows %s", prior.Info, fd.Info), nil)
		}
		// Same name, same type: the earlier trait owns the field.
		return nil
	}
	v.index[fd.Name] = len(v.fields)
	v.fields = append(v.fields, fd.Clone())
	return nil
}

// Name returns the variant name.
func (v *Variant) Name() string { return v.name }

// Strict reports whether undeclared input fields are rejected.
func (v *Variant) Strict() bool { return v.strict }

// Partial reports whether the variant went through the partial transform.
func (v *Variant) Partial() bool { return v.partial }

// Len returns the number of composed fields.
func (v *Variant) Len() int { return len(v.fields) }

// Has reports whether the variant declares the given field.
func (v *Variant) Has(name string) bool {
	_, ok := v.index[name]
	return ok
}

// Field returns a copy of the descriptor of the given field.
func (v *Variant) Field(name string) (*field.Descriptor, bool) {
	i, ok := v.index[name]
	if !ok {
		return nil, false
	}
	return v.fields[i].Clone(), true
}

// FieldDescriptors returns copies of the composed field descriptors in
// composition order.
func (v *Variant) FieldDescriptors() []*field.Descriptor {
	descs := make([]*field.Descriptor, len(v.fields))
	for i, fd := range v.fields {
		descs[i] = fd.Clone()
	}
	return descs
}

// FieldNames returns the composed field names in composition order.
func (v *Variant) FieldNames() []string {
	names := make([]string, len(v.fields))
	for i, fd := range v.fields {
		names[i] = fd.Name
	}
	return names
}

// Fields implements syrinx.Trait, so a variant can appear in further
// compositions. The strict and partial flags do not propagate; only the
// field set does.
func (v *Variant) Fields() []syrinx.Field {
	fields := make([]syrinx.Field, len(v.fields))
	for i, fd := range v.fields {
		fields[i] = descriptorField{fd.Clone()}
	}
	return fields
}

// Annotations implements syrinx.Trait.
func (v *Variant) Annotations() []schema.Annotation { return nil }

var _ syrinx.Trait = (*Variant)(nil)

type descriptorField struct {
	desc *field.Descriptor
}

func (f descriptorField) Descriptor() *field.Descriptor { return f.desc }

// unknownFields returns the sorted input keys not declared on the variant.
func (v *Variant) unknownFields(input map[string]any) []string {
	var unknown []string
	for name := range input {
		if _, ok := v.index[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}
