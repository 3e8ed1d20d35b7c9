package trait_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audialab/syrinx"
	"github.com/audialab/syrinx/contrib/trait"
	"github.com/audialab/syrinx/schema/field"
)

func TestTraits(t *testing.T) {
	tests := []struct {
		name   string
		trait  syrinx.Trait
		fields []string
	}{
		{name: "id", trait: trait.ID{}, fields: []string{"id"}},
		{name: "create_time", trait: trait.CreateTime{}, fields: []string{"created_at"}},
		{name: "update_time", trait: trait.UpdateTime{}, fields: []string{"updated_at"}},
		{name: "time", trait: trait.Time{}, fields: []string{"created_at", "updated_at"}},
		{name: "soft_delete", trait: trait.SoftDelete{}, fields: []string{"deleted_at"}},
		{name: "time_soft_delete", trait: trait.TimeSoftDelete{}, fields: []string{"created_at", "updated_at", "deleted_at"}},
		{name: "owner", trait: trait.Owner{}, fields: []string{"owner"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := tt.trait.Fields()
			require.Len(t, fields, len(tt.fields))
			for i, f := range fields {
				fd := f.Descriptor()
				assert.Equal(t, tt.fields[i], fd.Name)
				assert.NoError(t, fd.Err)
			}
			assert.Nil(t, tt.trait.Annotations())
		})
	}
}

func TestID(t *testing.T) {
	fd := trait.ID{}.Fields()[0].Descriptor()
	assert.Equal(t, field.TypeUUID, fd.Info.Type)
	assert.True(t, fd.Unique)
	assert.True(t, fd.Immutable)
	gen, ok := fd.Default.(func() uuid.UUID)
	require.True(t, ok)
	assert.NotEqual(t, gen(), gen())
}

func TestCreateTime(t *testing.T) {
	fd := trait.CreateTime{}.Fields()[0].Descriptor()
	assert.Equal(t, field.TypeTime, fd.Info.Type)
	assert.True(t, fd.Immutable)
	gen, ok := fd.Default.(func() time.Time)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), gen(), time.Second)
	assert.Nil(t, fd.UpdateDefault)
}

func TestUpdateTime(t *testing.T) {
	fd := trait.UpdateTime{}.Fields()[0].Descriptor()
	assert.Equal(t, field.TypeTime, fd.Info.Type)
	assert.False(t, fd.Immutable)
	assert.NotNil(t, fd.Default)
	gen, ok := fd.UpdateDefault.(func() time.Time)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), gen(), time.Second)
}

func TestSoftDelete(t *testing.T) {
	fd := trait.SoftDelete{}.Fields()[0].Descriptor()
	assert.Equal(t, field.TypeTime, fd.Info.Type)
	assert.True(t, fd.Optional)
	assert.True(t, fd.Nillable)
	assert.False(t, fd.Immutable)
	assert.Nil(t, fd.Default)
}

func TestOwner(t *testing.T) {
	fd := trait.Owner{}.Fields()[0].Descriptor()
	assert.Equal(t, field.TypeUUID, fd.Info.Type)
	assert.True(t, fd.Immutable)
	assert.Nil(t, fd.Default)
}
