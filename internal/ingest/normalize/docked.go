package normalize

import "github.com/galnet-relay/relay/internal/galnet"

// Docked builds the Station record for a dock event, including its
// StationEconomies and StationServices collections. Docked never carries a
// body or surface location for the station, so those fields stay unset.
func Docked(env galnet.Envelope, e galnet.EventDocked) galnet.Bundle {
	var economies []galnet.StationEconomy
	for _, se := range e.StationEconomies {
		economies = append(economies, galnet.StationEconomy{
			MarketID: e.MarketID, Name: se.Name, Proportion: se.Proportion,
		})
	}

	station := galnet.Station{
		SystemAddress:       e.SystemAddress,
		MarketID:            e.MarketID,
		StationName:         e.StationName,
		StationType:         e.StationType,
		DistFromStarLS:      floatPtr(e.DistFromStarLS),
		StationGovernment:   strPtr(e.StationGovernment),
		StationAllegiance:   strPtr(e.StationAllegiance),
		StationFactionName:  strPtr(e.StationFaction.Name),
		StationFactionState: strPtr(e.StationFaction.FactionState),
		StationEconomy:      strPtr(e.StationEconomy),
		StationState:        strPtr(e.StationState),
		LandingPadsLarge:    intPtr(e.LandingPads.Large),
		LandingPadsMedium:   intPtr(e.LandingPads.Medium),
		LandingPadsSmall:    intPtr(e.LandingPads.Small),
		StationEconomies:    economies,
		StationServices:     e.StationServices,
	}

	return galnet.Bundle{Stations: []galnet.Station{station}}
}
