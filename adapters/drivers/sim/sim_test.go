package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csops-dev/csops/domain/model"
)

func TestZoneStore_NameLookupIsCaseInsensitive(t *testing.T) {
	d := New()
	ctx := context.Background()

	created, err := d.Zones().Create(ctx, &model.Zone{Name: "Zone01", DNS1: "8.8.8.8"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	z, err := d.Zones().Get(ctx, "zone01", "")
	require.NoError(t, err)
	assert.Equal(t, created.ID, z.ID)

	z, err = d.Zones().Get(ctx, "", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Zone01", z.Name)

	_, err = d.Zones().Get(ctx, "zone02", "")
	assert.ErrorIs(t, err, model.ErrZoneNotFound)
}

func TestZoneStore_ReturnsCopies(t *testing.T) {
	d := New()
	ctx := context.Background()

	created, err := d.Zones().Create(ctx, &model.Zone{Name: "zone01", DNS1: "8.8.8.8"})
	require.NoError(t, err)

	// Mutating a returned snapshot must not leak into the store.
	created.DNS1 = "changed"
	z, err := d.Zones().Get(ctx, "zone01", "")
	require.NoError(t, err)
	assert.Equal(t, "8.8.8.8", z.DNS1)
}

func TestHostStore_NeverEchoesCredentials(t *testing.T) {
	d := New()
	ctx := context.Background()

	created, err := d.Hosts().Create(ctx, &model.Host{
		Name:     "kvm01",
		Pod:      "pod01",
		URL:      "http://kvm01.example.com",
		Username: "root",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Empty(t, created.URL)
	assert.Empty(t, created.Username)
	assert.Empty(t, created.Password)
	assert.Equal(t, model.HostStateEnabled, created.State)

	h, err := d.Hosts().Get(ctx, "kvm01", "")
	require.NoError(t, err)
	assert.Empty(t, h.Password)

	// Only the resource state is updatable.
	h, err = d.Hosts().Update(ctx, created.ID, &model.Host{State: model.HostStateDisabled, Pod: "pod02"}, []string{"state"})
	require.NoError(t, err)
	assert.Equal(t, model.HostStateDisabled, h.State)
	assert.Equal(t, "pod01", h.Pod)

	require.NoError(t, d.Hosts().Delete(ctx, created.ID))
	_, err = d.Hosts().Get(ctx, "kvm01", "")
	assert.ErrorIs(t, err, model.ErrHostNotFound)
}
