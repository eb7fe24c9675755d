package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galnet-relay/relay/internal/galnet"
)

func TestShipyard_JournalSourcedEventSkipped(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	journalVersion := "CAPI-Live-market" // not the shipyard feed
	bundle := Shipyard(galnet.Envelope{Header: galnet.Header{GameVersion: &journalVersion}}, galnet.EventShipyard{
		MarketID: 1, Ships: []string{"Sidewinder"},
	})
	assert.True(t, bundle.IsEmpty(), "only the companion-API shipyard feed is trustworthy")

	bundle = Shipyard(galnet.Envelope{}, galnet.EventShipyard{MarketID: 1, Ships: []string{"Sidewinder"}})
	assert.True(t, bundle.IsEmpty(), "a missing GameVersion must also be rejected")
}

func TestShipyard_CompanionAPIEventAccepted(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	capiVersion := "CAPI-Live-shipyard"
	bundle := Shipyard(galnet.Envelope{Header: galnet.Header{GameVersion: &capiVersion}}, galnet.EventShipyard{
		MarketID: 42, Ships: []string{"Sidewinder", "Cobra MkIII"},
	})

	require.Len(t, bundle.Shipyards, 1)
	assert.Equal(t, int64(42), bundle.Shipyards[0].MarketID)
	require.Len(t, bundle.Shipyards[0].Ships, 2)
	assert.Equal(t, "Sidewinder", bundle.Shipyards[0].Ships[0].Name)
	assert.Equal(t, int64(42), bundle.Shipyards[0].Ships[0].MarketID)
}
