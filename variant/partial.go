package variant

import (
	"github.com/audialab/syrinx"
)

// Partial derives a new variant from any trait or composed variant with
// every field relaxed to optional — the partial-schema transform used for
// update payloads. Types, validators, and nillability are preserved;
// create-time defaults are cleared so an omitted field is never silently
// filled in. The transform is idempotent: applying it to an already-partial
// variant yields an equivalent schema.
//
// A field with no sensible optional representation — one declared Immutable
// — fails the transform at definition time with a diagnostic naming the
// field.
func Partial(name string, t syrinx.Trait) (*Variant, error) {
	return Compose(name, t).Partial().Build()
}

// MustPartial is like Partial but panics on definition errors.
func MustPartial(name string, t syrinx.Trait) *Variant {
	v, err := Partial(name, t)
	if err != nil {
		panic(err)
	}
	return v
}
