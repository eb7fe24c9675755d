package normalize

import (
	"fmt"

	"github.com/galnet-relay/relay/internal/galnet"
)

// ApproachSettlement builds either a Station or a Landmark, depending on
// whether the settlement trades (has a MarketID). Settlements without a
// market have no stable identifier of their own, so they are keyed by an
// AuxiliaryID derived from their location and name; settlements on the
// same body sharing a name collapse into one Landmark row.
func ApproachSettlement(env galnet.Envelope, e galnet.EventApproachSettlement) galnet.Bundle {
	if e.MarketID != nil && *e.MarketID != 0 {
		var economies []galnet.StationEconomy
		for _, se := range e.StationEconomies {
			economies = append(economies, galnet.StationEconomy{
				MarketID: *e.MarketID, Name: se.Name, Proportion: se.Proportion,
			})
		}

		station := galnet.Station{
			SystemAddress:       e.SystemAddress,
			MarketID:            *e.MarketID,
			StationName:         e.Name,
			StationType:         "Settlement",
			BodyID:              intPtr(e.BodyID),
			Latitude:            floatPtr(e.Latitude),
			Longitude:           floatPtr(e.Longitude),
			StationGovernment:   strPtr(e.StationGovernment),
			StationAllegiance:   strPtr(e.StationAllegiance),
			StationFactionName:  strPtr(e.StationFaction.Name),
			StationFactionState: strPtr(e.StationFaction.FactionState),
			StationEconomy:      strPtr(e.StationEconomy),
			StationEconomies:    economies,
			StationServices:     e.StationServices,
		}
		return galnet.Bundle{Stations: []galnet.Station{station}}
	}

	auxID := fmt.Sprintf("%d-%d-%s", e.SystemAddress, e.BodyID, e.Name)
	landmark := galnet.Landmark{
		AuxiliaryID:   &auxID,
		SystemAddress: e.SystemAddress,
		BodyID:        e.BodyID,
		Latitude:      e.Latitude,
		Longitude:     e.Longitude,
		Name:          e.Name,
	}
	return galnet.Bundle{Landmarks: []galnet.Landmark{landmark}}
}
