// Package trait provides the common lifecycle traits composed into entity
// variants: identity, timestamps, soft deletion, and ownership.
//
// These traits are OPTIONAL starting points. Entity packages declare their
// own content traits and pick the lifecycle traits each composition needs:
//
//	variant.Compose("Subgenre",
//	    Content{},
//	    trait.Owner{},
//	    trait.ID{},
//	    trait.Time{},
//	    trait.SoftDelete{},
//	)
//
// Ownership is deliberately a standalone trait rather than part of any
// entity definition, so the same catalog serves both ownership-aware and
// ownership-free compositions.
package trait

import (
	"time"

	"github.com/google/uuid"

	"github.com/audialab/syrinx"
	"github.com/audialab/syrinx/schema/field"
	"github.com/audialab/syrinx/schema/trait"
)

// ID adds an immutable UUID identity field, assigned once at creation.
//
// Contributed field:
//
//	id uuid, immutable, defaults to uuid.New
type ID struct{ trait.Schema }

// Fields of the ID trait.
func (ID) Fields() []syrinx.Field {
	return []syrinx.Field{
		field.UUID("id").
			Default(uuid.New).
			Unique().
			Immutable(),
	}
}

// id trait must implement the Trait interface.
var _ syrinx.Trait = (*ID)(nil)

// CreateTime adds a created_at field, set once at creation.
type CreateTime struct{ trait.Schema }

// Fields of the CreateTime trait.
func (CreateTime) Fields() []syrinx.Field {
	return []syrinx.Field{
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// create time trait must implement the Trait interface.
var _ syrinx.Trait = (*CreateTime)(nil)

// UpdateTime adds an updated_at field, stamped on every mutation.
type UpdateTime struct{ trait.Schema }

// Fields of the UpdateTime trait.
func (UpdateTime) Fields() []syrinx.Field {
	return []syrinx.Field{
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// update time trait must implement the Trait interface.
var _ syrinx.Trait = (*UpdateTime)(nil)

// Time composes CreateTime and UpdateTime.
// Provides both created_at and updated_at fields.
type Time struct{ trait.Schema }

// Fields of the Time trait.
func (Time) Fields() []syrinx.Field {
	return append(
		CreateTime{}.Fields(),
		UpdateTime{}.Fields()...,
	)
}

// time trait must implement the Trait interface.
var _ syrinx.Trait = (*Time)(nil)

// SoftDelete adds a nullable deleted_at field. A record is deleted iff
// deleted_at is non-null; no other field encodes deletion. The field is
// both optional and nillable so a delete marker can distinguish "leave
// deletion state alone" (omitted) from "explicitly restore" (null).
//
// How a data store filters soft-deleted records is outside this library;
// the trait defines the marker's shape only.
type SoftDelete struct{ trait.Schema }

// Fields of the SoftDelete trait.
func (SoftDelete) Fields() []syrinx.Field {
	return []syrinx.Field{
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Deletion instant; null or absent means active"),
	}
}

// soft delete trait must implement the Trait interface.
var _ syrinx.Trait = (*SoftDelete)(nil)

// TimeSoftDelete composes Time and SoftDelete.
// Provides created_at, updated_at, and deleted_at fields.
type TimeSoftDelete struct{ trait.Schema }

// Fields of the TimeSoftDelete trait.
func (TimeSoftDelete) Fields() []syrinx.Field {
	return append(
		Time{}.Fields(),
		SoftDelete{}.Fields()...,
	)
}

// time soft delete trait must implement the Trait interface.
var _ syrinx.Trait = (*TimeSoftDelete)(nil)

// Owner adds an immutable reference to the external user identity owning
// the record. It is pluggable: ownership-aware compositions include it,
// ownership-free compositions simply leave it out. External creation
// payloads never carry it — the trusted internal creation variant appends
// it after the transport layer resolves the caller.
type Owner struct{ trait.Schema }

// Fields of the Owner trait.
func (Owner) Fields() []syrinx.Field {
	return []syrinx.Field{
		field.UUID("owner").
			Immutable().
			Comment("External user identity owning the record"),
	}
}

// owner trait must implement the Trait interface.
var _ syrinx.Trait = (*Owner)(nil)
