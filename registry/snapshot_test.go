package registry_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audialab/syrinx/registry"
	"github.com/audialab/syrinx/schema/field"
	"github.com/audialab/syrinx/schema/trait"
	"github.com/audialab/syrinx/subgenre"
	"github.com/audialab/syrinx/variant"
)

func catalogRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	require.NoError(t, r.Register(subgenre.MustNewSet().Variants()...))
	return r
}

func TestSnapshot(t *testing.T) {
	snap := catalogRegistry(t).Snapshot()

	t.Run("variants_sorted_by_name", func(t *testing.T) {
		require.Len(t, snap.Variants, 8)
		for i := 1; i < len(snap.Variants); i++ {
			assert.Less(t, snap.Variants[i-1].Name, snap.Variants[i].Name)
		}
	})

	t.Run("fields_in_composition_order", func(t *testing.T) {
		var entity *registry.VariantSnapshot
		for _, vs := range snap.Variants {
			if vs.Name == "Subgenre" {
				entity = vs
			}
		}
		require.NotNil(t, entity)
		names := make([]string, len(entity.Fields))
		for i, fs := range entity.Fields {
			names[i] = fs.Name
		}
		assert.Equal(t, []string{"name", "description", "owner", "id", "created_at", "updated_at", "deleted_at"}, names)
	})

	t.Run("defaults_as_presence_flags", func(t *testing.T) {
		var entity *registry.VariantSnapshot
		for _, vs := range snap.Variants {
			if vs.Name == "Subgenre" {
				entity = vs
			}
		}
		require.NotNil(t, entity)
		for _, fs := range entity.Fields {
			switch fs.Name {
			case "id":
				assert.True(t, fs.Default)
				assert.Equal(t, "uuid.UUID", fs.Type)
			case "updated_at":
				assert.True(t, fs.Default)
				assert.True(t, fs.UpdateDefault)
			case "deleted_at":
				assert.False(t, fs.Default)
				assert.True(t, fs.Optional)
				assert.True(t, fs.Nillable)
			}
		}
	})

	t.Run("sensitive_fields_excluded", func(t *testing.T) {
		r := registry.New()
		v := variant.Compose("V", trait.Fields(
			field.String("name"),
			field.String("token").Sensitive(),
		)).MustBuild()
		require.NoError(t, r.Register(v))
		snap := r.Snapshot()
		require.Len(t, snap.Variants, 1)
		require.Len(t, snap.Variants[0].Fields, 1)
		assert.Equal(t, "name", snap.Variants[0].Fields[0].Name)
	})
}

func TestSnapshotJSON(t *testing.T) {
	data, err := catalogRegistry(t).Snapshot().JSON()
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "variants")
}

func TestSnapshotEncodeDecode(t *testing.T) {
	snap := catalogRegistry(t).Snapshot()
	data, err := snap.Encode()
	require.NoError(t, err)

	decoded, err := registry.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)

	t.Run("invalid_data", func(t *testing.T) {
		_, err := registry.Decode([]byte{0xc1})
		assert.Error(t, err)
	})
}

func TestFingerprint(t *testing.T) {
	t.Run("deterministic_across_compositions", func(t *testing.T) {
		first, err := catalogRegistry(t).Snapshot().Fingerprint()
		require.NoError(t, err)
		second, err := catalogRegistry(t).Snapshot().Fingerprint()
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, first, 64)
	})

	t.Run("independent_of_registration_order", func(t *testing.T) {
		s := subgenre.MustNewSet()
		forward := registry.New()
		require.NoError(t, forward.Register(s.Variants()...))

		reversed := registry.New()
		vs := s.Variants()
		for i := len(vs) - 1; i >= 0; i-- {
			require.NoError(t, reversed.Register(vs[i]))
		}

		f1, err := forward.Snapshot().Fingerprint()
		require.NoError(t, err)
		f2, err := reversed.Snapshot().Fingerprint()
		require.NoError(t, err)
		assert.Equal(t, f1, f2)
	})

	t.Run("sensitive_to_contract_changes", func(t *testing.T) {
		owned, err := catalogRegistry(t).Snapshot().Fingerprint()
		require.NoError(t, err)

		r := registry.New()
		require.NoError(t, r.Register(subgenre.MustNewSet(subgenre.WithoutOwnership()).Variants()...))
		shared, err := r.Snapshot().Fingerprint()
		require.NoError(t, err)

		assert.NotEqual(t, owned, shared)
	})
}
