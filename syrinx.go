// Package syrinx declares one canonical set of domain fields per entity and
// mechanically derives every schema variant a CRUD lifecycle needs: the full
// record, the public read view, creation and partial-update payloads, their
// trusted internal counterparts, and the soft-delete marker.
//
// Field groups are declared once as traits (see schema/trait and
// contrib/trait), combined by ordered union into variants (see variant), and
// validated at runtime against decoded request bodies. Composition happens
// once at process start; composed variants are immutable and safe for
// concurrent use.
package syrinx

import (
	"github.com/audialab/syrinx/schema"
	"github.com/audialab/syrinx/schema/field"
)

// Field is a single named, typed field declaration with validation rules.
// The builders in schema/field implement it.
type Field interface {
	// Descriptor returns the low-level field description used by the
	// variant composer. Builder misuse is reported through Descriptor().Err
	// and surfaced when the variant is built.
	Descriptor() *field.Descriptor
}

// Trait is a reusable, ordered group of fields composed by union into
// concrete entity variants. Traits declare shape only; they carry no
// behavior beyond per-field validation rules.
//
// Implementations usually embed trait.Schema and override Fields:
//
//	type Content struct {
//	    trait.Schema
//	}
//
//	func (Content) Fields() []syrinx.Field {
//	    return []syrinx.Field{
//	        field.String("name").NotEmpty().MaxLen(64),
//	    }
//	}
type Trait interface {
	// Fields returns the fields contributed by the trait, in declaration
	// order. Order matters: when two traits in a composition declare the
	// same field name, the earliest trait wins.
	Fields() []Field

	// Annotations returns cross-cutting metadata attached to the trait.
	Annotations() []schema.Annotation
}
