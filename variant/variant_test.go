package variant_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audialab/syrinx"
	"github.com/audialab/syrinx/schema/field"
	"github.com/audialab/syrinx/schema/trait"
	"github.com/audialab/syrinx/variant"
)

// variants must be composable as traits.
var _ syrinx.Trait = (*variant.Variant)(nil)

type content struct {
	trait.Schema
}

func (content) Fields() []syrinx.Field {
	return []syrinx.Field{
		field.String("name").NotEmpty().MaxLen(64),
		field.Text("description").Optional().Nillable().MaxLen(512),
	}
}

type identity struct {
	trait.Schema
}

func (identity) Fields() []syrinx.Field {
	return []syrinx.Field{
		field.UUID("id").Default(uuid.New).Unique().Immutable(),
	}
}

type timestamps struct {
	trait.Schema
}

func (timestamps) Fields() []syrinx.Field {
	return []syrinx.Field{
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func TestCompose(t *testing.T) {
	t.Run("ordered_union", func(t *testing.T) {
		v, err := variant.Compose("Subgenre", content{}, identity{}, timestamps{}).Build()
		require.NoError(t, err)
		assert.Equal(t, "Subgenre", v.Name())
		assert.Equal(t, []string{"name", "description", "id", "created_at", "updated_at"}, v.FieldNames())
		assert.Equal(t, 5, v.Len())
		assert.False(t, v.Strict())
		assert.False(t, v.Partial())
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := variant.Compose("Subgenre", content{}, identity{}, timestamps{}).Build()
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := variant.Compose("Subgenre", content{}, identity{}, timestamps{}).Build()
			require.NoError(t, err)
			assert.Equal(t, first.FieldNames(), again.FieldNames())
		}
	})

	t.Run("earliest_trait_owns_shadowed_field", func(t *testing.T) {
		owner := trait.Fields(field.String("name").MaxLen(10))
		shadowed := trait.Fields(field.String("name").NotEmpty().Immutable())
		v, err := variant.Compose("V", owner, shadowed).Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"name"}, v.FieldNames())

		fd, ok := v.Field("name")
		require.True(t, ok)
		assert.Equal(t, 10, fd.Size)
		assert.False(t, fd.Immutable)
		assert.Len(t, fd.Validators, 1)
	})

	t.Run("type_conflict", func(t *testing.T) {
		_, err := variant.Compose("V",
			trait.Fields(field.String("rank")),
			trait.Fields(field.Int("rank")),
		).Build()
		require.Error(t, err)
		assert.True(t, syrinx.IsDefinitionError(err))
		assert.EqualError(t, err, `syrinx: definition error on variant "V" field "rank": incompatible types in composition: string shadows int`)
	})

	t.Run("empty_name", func(t *testing.T) {
		_, err := variant.Compose("", content{}).Build()
		require.Error(t, err)
		assert.True(t, syrinx.IsDefinitionError(err))
	})

	t.Run("nil_trait", func(t *testing.T) {
		_, err := variant.Compose("V", nil).Build()
		require.Error(t, err)
		assert.True(t, syrinx.IsDefinitionError(err))
	})

	t.Run("invalid_field_surfaces_builder_error", func(t *testing.T) {
		_, err := variant.Compose("V", trait.Fields(field.String("name").MaxLen(0))).Build()
		require.Error(t, err)
		assert.True(t, syrinx.IsDefinitionError(err))
		assert.Contains(t, err.Error(), "MaxLen value must be positive")
	})

	t.Run("aggregates_all_definition_errors", func(t *testing.T) {
		_, err := variant.Compose("V",
			trait.Fields(field.String("rank")),
			trait.Fields(field.Int("rank")),
			nil,
		).Build()
		require.Error(t, err)
		var agg *syrinx.AggregateError
		require.ErrorAs(t, err, &agg)
		assert.Len(t, agg.Errors, 2)
	})

	t.Run("must_build_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			variant.Compose("", content{}).MustBuild()
		})
		assert.NotPanics(t, func() {
			variant.Compose("V", content{}).MustBuild()
		})
	})
}

func TestVariantAsTrait(t *testing.T) {
	base := variant.Compose("SubgenreCreate", content{}).Strict().MustBuild()
	derived, err := variant.Compose("SubgenreCreateInternal",
		base,
		trait.Fields(field.UUID("owner").Immutable()),
	).Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "description", "owner"}, derived.FieldNames())

	// Strictness does not propagate through composition.
	assert.False(t, derived.Strict())

	// The derived variant holds copies; mutating its descriptors leaves the
	// base untouched.
	fd, ok := derived.Field("name")
	require.True(t, ok)
	fd.Optional = true
	baseFd, ok := base.Field("name")
	require.True(t, ok)
	assert.False(t, baseFd.Optional)
}

func TestPartial(t *testing.T) {
	t.Run("every_field_optional", func(t *testing.T) {
		v, err := variant.Partial("SubgenreUpdate", content{})
		require.NoError(t, err)
		assert.True(t, v.Partial())
		for _, fd := range v.FieldDescriptors() {
			assert.True(t, fd.Optional, "field %q must be optional", fd.Name)
		}
	})

	t.Run("preserves_type_validators_and_nillability", func(t *testing.T) {
		v := variant.MustPartial("SubgenreUpdate", content{})
		name, ok := v.Field("name")
		require.True(t, ok)
		assert.Equal(t, field.TypeString, name.Info.Type)
		assert.Len(t, name.Validators, 2)
		assert.False(t, name.Nillable)

		desc, ok := v.Field("description")
		require.True(t, ok)
		assert.True(t, desc.Nillable)
	})

	t.Run("clears_defaults", func(t *testing.T) {
		v := variant.MustPartial("V", trait.Fields(field.String("genre").Default("unknown")))
		fd, ok := v.Field("genre")
		require.True(t, ok)
		assert.Nil(t, fd.Default)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := variant.MustPartial("SubgenreUpdate", content{})
		twice, err := variant.Partial("SubgenreUpdate", once)
		require.NoError(t, err)
		assert.Equal(t, once.FieldNames(), twice.FieldNames())
		for i, fd := range twice.FieldDescriptors() {
			prior := once.FieldDescriptors()[i]
			assert.Equal(t, prior.Info.Type, fd.Info.Type)
			assert.Equal(t, prior.Optional, fd.Optional)
			assert.Equal(t, prior.Nillable, fd.Nillable)
			assert.Len(t, fd.Validators, len(prior.Validators))
			assert.Nil(t, fd.Default)
		}
	})

	t.Run("immutable_field_fails_the_transform", func(t *testing.T) {
		_, err := variant.Partial("V", identity{})
		require.Error(t, err)
		assert.True(t, syrinx.IsDefinitionError(err))
		assert.EqualError(t, err, `syrinx: definition error on variant "V" field "id": immutable field has no optional representation; exclude it from the partial composition`)
	})

	t.Run("must_partial_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			variant.MustPartial("V", identity{})
		})
	})
}

func TestVariantAccessors(t *testing.T) {
	v := variant.Compose("Subgenre", content{}).MustBuild()

	t.Run("has", func(t *testing.T) {
		assert.True(t, v.Has("name"))
		assert.False(t, v.Has("owner"))
	})

	t.Run("field_returns_copy", func(t *testing.T) {
		fd, ok := v.Field("name")
		require.True(t, ok)
		fd.Name = "mutated"
		again, ok := v.Field("name")
		require.True(t, ok)
		assert.Equal(t, "name", again.Name)

		_, ok = v.Field("missing")
		assert.False(t, ok)
	})

	t.Run("descriptors_return_copies", func(t *testing.T) {
		descs := v.FieldDescriptors()
		require.Len(t, descs, 2)
		descs[0].Optional = true
		fd, ok := v.Field("name")
		require.True(t, ok)
		assert.False(t, fd.Optional)
	})
}

func BenchmarkCompose(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := variant.Compose("Subgenre", content{}, identity{}, timestamps{}).Build()
		if err != nil {
			b.Fatal(err)
		}
	}
}
