// Package field provides fluent builders for declaring the typed, validated
// fields that traits contribute to composed variants.
//
// Field names follow wire conventions (snake_case); the code generator
// derives exported Go names from them:
//
//	field.String("name")        // wire: name, Go: Name
//	field.Time("created_at")    // wire: created_at, Go: CreatedAt
//
// # Field Types
//
//	field.String("name")
//	field.Text("description")
//	field.Bool("featured")
//	field.Int("rank")
//	field.Float("weight")
//	field.Time("created_at")
//	field.UUID("id")
//	field.Enum("visibility").Values("public", "hidden")
//
// # Field Options
//
//	field.String("name").
//	    NotEmpty().            // reject empty values
//	    MaxLen(64).            // reject values over 64 bytes
//	    Optional().            // may be omitted from input
//	    Nillable().            // explicit null permitted
//	    Immutable().           // assigned once, never updated
//	    Comment("Display name")
//
// # Presence semantics
//
// Optional and Nillable are independent: Optional relaxes the presence
// requirement on input, Nillable permits an explicit null value. A field
// that is both may be omitted entirely or supplied as null, and the
// validation engine keeps the two cases distinguishable — omission produces
// no entry in the validated output, explicit null produces a nil entry.
//
// # Defaults
//
//	field.Enum("visibility").Values("public", "hidden").Default("public")
//	field.Time("created_at").Default(time.Now).Immutable()
//	field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now)
//	field.UUID("id").Default(uuid.New).Immutable()
//
// Create-time defaults apply only when a non-partial variant is validated;
// the partial transform clears them so an omitted field on an update payload
// stays omitted.
//
// # Errors
//
// Builder misuse (negative lengths, inverted ranges, enum defaults outside
// the declared values) is recorded on the descriptor and surfaced as a
// definition error when the variant is built, keeping fluent chains free of
// error returns.
package field
