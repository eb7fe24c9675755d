package normalize

import "github.com/galnet-relay/relay/internal/galnet"

const shipyardGameVersion = "CAPI-Live-shipyard"

// Shipyard builds the Shipyard record and its available Ships. Only
// messages produced by the companion-API shipyard feed carry a complete,
// trustworthy ship list; journal-sourced Shipyard events report stale data
// and are skipped.
func Shipyard(env galnet.Envelope, e galnet.EventShipyard) galnet.Bundle {
	if env.Header.GameVersion == nil || *env.Header.GameVersion != shipyardGameVersion {
		return galnet.Bundle{}
	}

	ships := make([]galnet.ShipyardShip, 0, len(e.Ships))
	for _, name := range e.Ships {
		ships = append(ships, galnet.ShipyardShip{MarketID: e.MarketID, Name: name})
	}

	shipyard := galnet.Shipyard{
		MarketID:  e.MarketID,
		Timestamp: e.Timestamp,
		Ships:     ships,
	}

	return galnet.Bundle{Shipyards: []galnet.Shipyard{shipyard}}
}
