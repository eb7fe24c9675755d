package galnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLockKey_FieldOrderIndependence(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	a, err := NewLockKey(EntityKindSystem, map[string]any{"SystemAddress": int64(1), "BodyID": int64(2)})
	require.NoError(t, err)

	b, err := NewLockKey(EntityKindSystem, map[string]any{"BodyID": int64(2), "SystemAddress": int64(1)})
	require.NoError(t, err)

	assert.Equal(t, a, b, "key construction must not depend on map iteration order")
}

func TestNewLockKey_Validation(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	_, err := NewLockKey("", map[string]any{"x": 1})
	assert.ErrorIs(t, err, ErrLockKeyEmptyEntityKind)

	_, err = NewLockKey(EntityKindSystem, nil)
	assert.ErrorIs(t, err, ErrLockKeyEmptyPK)
}

func TestLockKey_Less(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	a, err := SystemLockKey(1)
	require.NoError(t, err)
	b, err := SystemLockKey(2)
	require.NoError(t, err)

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestSortLockKeys_DedupesAndOrders(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	k1, err := SystemLockKey(42)
	require.NoError(t, err)
	k2, err := BodyLockKey(42, 1)
	require.NoError(t, err)

	sorted := SortLockKeys([]LockKey{k2, k1, k1, k2})

	require.Len(t, sorted, 2)
	assert.Equal(t, EntityKindBody, sorted[0].EntityKind, "body sorts before system lexicographically")
	assert.Equal(t, EntityKindSystem, sorted[1].EntityKind)
}

func TestLandmarkLockKey_NilFieldsCoalesce(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	withNils, err := LandmarkLockKey(nil, nil)
	require.NoError(t, err)

	entryID := int64(-1)
	auxID := ""
	explicit, err := LandmarkLockKey(&entryID, &auxID)
	require.NoError(t, err)

	assert.Equal(t, explicit, withNils, "nil pointers must coalesce to the same sentinel values as explicit defaults")
}

func TestSignalLockKey_DistinguishesBySignalName(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	bodyID := int64(3)
	nameA := "Geological"
	nameB := "Biological"

	keyA, err := SignalLockKey(100, &bodyID, "SAASignalsFound", &nameA)
	require.NoError(t, err)
	keyB, err := SignalLockKey(100, &bodyID, "SAASignalsFound", &nameB)
	require.NoError(t, err)

	assert.NotEqual(t, keyA, keyB)
}

func TestBundle_LockKeys(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	bundle := Bundle{
		Systems: []System{{SystemAddress: 1}},
		Bodies:  []Body{{SystemAddress: 1, BodyID: 1}, {SystemAddress: 1, BodyID: 1}},
	}

	keys, err := bundle.LockKeys()
	require.NoError(t, err)
	assert.Len(t, keys, 2, "duplicate body rows collapse to one lock key")
}
