// Package subgenre declares the schema catalog of the Subgenre entity: one
// content trait, composed with the shared lifecycle traits into every
// variant the CRUD lifecycle needs.
//
// Two compositions of the same catalog exist, differing only in whether the
// ownership trait is included. Ownership is a composition option, not a
// separate entity definition:
//
//	owned := subgenre.MustNewSet()                         // ownership-aware
//	shared := subgenre.MustNewSet(subgenre.WithoutOwnership())
//
// Exposure convention: the read view never exposes the soft-delete marker —
// only the full entity record and the delete variants carry deleted_at. The
// externally facing delete variant is named SubgenreDelete; its trusted
// counterpart is SubgenreDeleteInternal.
package subgenre

import (
	"github.com/audialab/syrinx"
	ctrait "github.com/audialab/syrinx/contrib/trait"
	"github.com/audialab/syrinx/schema/field"
	"github.com/audialab/syrinx/schema/trait"
	"github.com/audialab/syrinx/variant"
)

// Content declares the domain fields of a subgenre — the only fields a
// client legitimately supplies. Every variant that includes them validates
// them identically; composition never weakens or duplicates the rules.
type Content struct{ trait.Schema }

// Fields of the content trait.
func (Content) Fields() []syrinx.Field {
	return []syrinx.Field{
		field.String("name").
			NotEmpty().
			MaxLen(64).
			Comment("Display name of the subgenre"),
		field.Text("description").
			Optional().
			Nillable().
			MaxLen(512).
			Comment("Free-form description"),
	}
}

// content trait must implement the Trait interface.
var _ syrinx.Trait = (*Content)(nil)

// Set holds every composed variant of the Subgenre entity.
//
// The transport layer binds request bodies to Create and Update, responses
// to Read, and delete markers to Delete. The persistence layer binds to
// Entity, CreateInternal, UpdateInternal, and DeleteInternal, whose
// server-managed fields it is responsible for populating.
type Set struct {
	// Entity is the full record: content, optional ownership, identity,
	// timestamps, and the soft-delete marker.
	Entity *variant.Variant

	// Read is the public view: the entity without soft-delete internals.
	Read *variant.Variant

	// Create is the external creation payload: content only, strict.
	Create *variant.Variant

	// CreateInternal is Create plus the server-resolved ownership reference
	// (identical to Create in ownership-free compositions). Trusted
	// in-process callers only; not strict.
	CreateInternal *variant.Variant

	// Update is the partial external update payload: every content field
	// optional, strict.
	Update *variant.Variant

	// UpdateInternal is Update plus a required updated_at stamp supplied by
	// the internal caller. Not strict.
	UpdateInternal *variant.Variant

	// Delete is the external soft-delete marker: deleted_at, strict. An
	// explicit null restores the record; the field is never required.
	Delete *variant.Variant

	// DeleteInternal is the trusted counterpart of Delete. Not strict.
	DeleteInternal *variant.Variant
}

// Option configures a composition of the catalog.
type Option func(*config)

type config struct {
	ownership bool
}

// WithoutOwnership composes the catalog without the ownership trait. The
// default composition is ownership-aware.
func WithoutOwnership() Option {
	return func(c *config) { c.ownership = false }
}

// NewSet composes every Subgenre variant from the trait catalog. All
// definition errors across the variants are aggregated; a malformed catalog
// must abort process start rather than fail per request.
func NewSet(opts ...Option) (*Set, error) {
	cfg := config{ownership: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	entityTraits := []syrinx.Trait{Content{}}
	readTraits := []syrinx.Trait{Content{}}
	if cfg.ownership {
		entityTraits = append(entityTraits, ctrait.Owner{})
		readTraits = append(readTraits, ctrait.Owner{})
	}
	entityTraits = append(entityTraits, ctrait.ID{}, ctrait.Time{}, ctrait.SoftDelete{})
	readTraits = append(readTraits, ctrait.ID{}, ctrait.Time{})

	s := &Set{}
	var errs []error
	collect := func(v *variant.Variant, err error) *variant.Variant {
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	s.Entity = collect(variant.Compose("Subgenre", entityTraits...).Build())
	s.Read = collect(variant.Compose("SubgenreRead", readTraits...).Build())
	s.Create = collect(variant.Compose("SubgenreCreate", Content{}).Strict().Build())
	if s.Create != nil {
		internal := []syrinx.Trait{s.Create}
		if cfg.ownership {
			internal = append(internal, ctrait.Owner{})
		}
		s.CreateInternal = collect(variant.Compose("SubgenreCreateInternal", internal...).Build())
	}
	s.Update = collect(variant.Compose("SubgenreUpdate", Content{}).Partial().Strict().Build())
	if s.Update != nil {
		s.UpdateInternal = collect(variant.Compose("SubgenreUpdateInternal",
			s.Update,
			trait.Fields(field.Time("updated_at")),
		).Build())
	}
	s.Delete = collect(variant.Compose("SubgenreDelete", ctrait.SoftDelete{}).Strict().Build())
	s.DeleteInternal = collect(variant.Compose("SubgenreDeleteInternal", ctrait.SoftDelete{}).Build())

	if err := syrinx.NewAggregateError(errs...); err != nil {
		return nil, err
	}
	return s, nil
}

// MustNewSet is like NewSet but panics on definition errors.
func MustNewSet(opts ...Option) *Set {
	s, err := NewSet(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Variants returns every composed variant of the set in a stable order,
// ready for registration.
func (s *Set) Variants() []*variant.Variant {
	return []*variant.Variant{
		s.Entity,
		s.Read,
		s.Create,
		s.CreateInternal,
		s.Update,
		s.UpdateInternal,
		s.Delete,
		s.DeleteInternal,
	}
}
