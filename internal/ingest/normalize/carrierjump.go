package normalize

import "github.com/galnet-relay/relay/internal/galnet"

// CarrierJump builds a minimal Station record for a fleet carrier's
// current position. Unlike other minimal station events, the economy and
// service collections are reported as known-empty rather than unknown,
// since a carrier always starts with no economies or services until a
// Docked event at the carrier fills them in.
//
// A sizeable fraction of CarrierJump events carry no MarketID at all; since
// Station is keyed by MarketID, those events carry no usable identity and
// are skipped rather than risking collisions on a synthetic zero key.
func CarrierJump(env galnet.Envelope, e galnet.EventCarrierJump) galnet.Bundle {
	if e.MarketID == nil {
		return galnet.Bundle{}
	}

	station := galnet.Station{
		SystemAddress:    e.SystemAddress,
		MarketID:         *e.MarketID,
		StationName:      e.StationName,
		StationType:      e.StationType,
		StationEconomies: []galnet.StationEconomy{},
		StationServices:  []string{},
	}

	return galnet.Bundle{Stations: []galnet.Station{station}}
}
