// Package trait provides the base trait implementation for syrinx schemas.
//
// A trait is a reusable, ordered group of typed fields that can be composed
// into multiple entity variants. Traits declare shape only — fields and
// their validation rules — and carry no behavior.
//
// To create a trait, embed Schema and override Fields:
//
//	type Audit struct {
//	    trait.Schema
//	}
//
//	func (Audit) Fields() []syrinx.Field {
//	    return []syrinx.Field{
//	        field.String("created_by").Immutable(),
//	        field.String("updated_by").Optional(),
//	    }
//	}
//
// For the common lifecycle traits (identity, timestamps, soft delete,
// ownership) see the contrib/trait package.
package trait

import (
	"github.com/audialab/syrinx"
	"github.com/audialab/syrinx/schema"
)

// Schema is the default implementation of the syrinx.Trait interface.
// It should be embedded in all trait definitions.
type Schema struct{}

// Fields returns the fields of the trait.
// Override this method to declare fields.
func (Schema) Fields() []syrinx.Field { return nil }

// Annotations returns the annotations of the trait.
// Override this method to attach cross-cutting metadata.
func (Schema) Annotations() []schema.Annotation { return nil }

// base trait must implement the Trait interface.
var _ syrinx.Trait = (*Schema)(nil)

// Fields returns an anonymous trait contributing exactly the given fields.
// It is useful for one-off contributions inside a composition, such as the
// required updated_at stamp an internal update variant appends:
//
//	variant.Compose("SubgenreUpdateInternal",
//	    update,
//	    trait.Fields(field.Time("updated_at")),
//	)
func Fields(fields ...syrinx.Field) syrinx.Trait {
	return fieldsTrait(fields)
}

type fieldsTrait []syrinx.Field

func (t fieldsTrait) Fields() []syrinx.Field         { return t }
func (fieldsTrait) Annotations() []schema.Annotation { return nil }

// AnnotateFields wraps a trait and adds annotations to all its fields.
// This is useful for applying cross-cutting annotations without repeating
// them per field:
//
//	trait.AnnotateFields(
//	    Audit{},
//	    schema.Comment("server managed"),
//	)
func AnnotateFields(t syrinx.Trait, annotations ...schema.Annotation) syrinx.Trait {
	return fieldAnnotator{Trait: t, annotations: annotations}
}

type fieldAnnotator struct {
	syrinx.Trait
	annotations []schema.Annotation
}

func (a fieldAnnotator) Fields() []syrinx.Field {
	fields := a.Trait.Fields()
	for i := range fields {
		desc := fields[i].Descriptor()
		desc.Annotations = append(desc.Annotations, a.annotations...)
	}
	return fields
}
