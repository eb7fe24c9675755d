package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galnet-relay/relay/internal/galnet"
	"github.com/galnet-relay/relay/internal/storage"
)

func TestReport_Status(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	assert.Equal(t, "ok", Report{Total: 10, Success: 10}.Status())
	assert.Equal(t, "degraded", Report{Total: 10, Success: 9, Failure: 1}.Status())
}

func TestRowWrites_OneEntryPerRow(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	store := storage.NewStore(nil, nil)
	bundle := galnet.Bundle{
		Systems: []galnet.System{{SystemAddress: 1}},
		Bodies: []galnet.Body{
			{SystemAddress: 1, BodyID: 1},
			{SystemAddress: 1, BodyID: 2},
		},
	}

	writes, err := rowWrites(store, bundle)
	require.NoError(t, err)
	assert.Len(t, writes, 3, "every physical row gets its own write: one system plus two bodies")
}

func TestRowWrites_DuplicateLockKeysAreNotDeduplicated(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	store := storage.NewStore(nil, nil)
	bodyID := int64(5)
	name := "Geological"
	bundle := galnet.Bundle{
		Signals: []galnet.Signal{
			{SystemAddress: 1, BodyID: &bodyID, Type: "SAASignalsFound", SignalName: &name},
			{SystemAddress: 1, BodyID: &bodyID, Type: "SAASignalsFound", SignalName: &name},
		},
	}

	writes, err := rowWrites(store, bundle)
	require.NoError(t, err)
	assert.Len(t, writes, 2, "rowWrites must write every row, unlike Bundle.LockKeys which deduplicates")
	assert.Equal(t, writes[0].key, writes[1].key, "the two rows do share a lock key")
}

func TestSortRowWrites_OrdersByLockKey(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	store := storage.NewStore(nil, nil)
	bundle := galnet.Bundle{
		Systems: []galnet.System{{SystemAddress: 2}, {SystemAddress: 1}},
	}

	writes, err := rowWrites(store, bundle)
	require.NoError(t, err)
	sortRowWrites(writes)

	require.Len(t, writes, 2)
	assert.True(t, writes[0].key.Less(writes[1].key) || writes[0].key == writes[1].key)
}
