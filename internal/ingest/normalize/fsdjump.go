package normalize

import "github.com/galnet-relay/relay/internal/galnet"

// FSDJump builds the System visited, its Powers/Factions/Conflicts, and a
// minimal Body record for the arrival star (most of its fields are filled
// in later by a Scan of the same body).
func FSDJump(env galnet.Envelope, e galnet.EventFSDJump) galnet.Bundle {
	var powers []galnet.SystemPower
	for _, p := range e.Powers {
		powers = append(powers, galnet.SystemPower{SystemAddress: e.SystemAddress, Power: p})
	}

	var factions []galnet.Faction
	for _, f := range e.Factions {
		squadron := false
		if f.SquadronFaction != nil {
			squadron = *f.SquadronFaction
		}

		var states []galnet.FactionState
		for _, s := range f.ActiveStates {
			states = append(states, galnet.FactionState{
				SystemAddress: e.SystemAddress, FactionName: f.Name,
				Type: "Active", State: s.State,
			})
		}
		for _, s := range f.PendingStates {
			states = append(states, galnet.FactionState{
				SystemAddress: e.SystemAddress, FactionName: f.Name,
				Type: "Pending", State: s.State, Trend: s.Trend,
			})
		}
		for _, s := range f.RecoveringStates {
			states = append(states, galnet.FactionState{
				SystemAddress: e.SystemAddress, FactionName: f.Name,
				Type: "Recovering", State: s.State, Trend: s.Trend,
			})
		}

		factions = append(factions, galnet.Faction{
			SystemAddress:   e.SystemAddress,
			Name:            f.Name,
			Influence:       f.Influence,
			Happiness:       f.Happiness,
			Allegiance:      f.Allegiance,
			SquadronFaction: squadron,
			FactionState:    f.FactionState,
			Government:      f.Government,
			States:          states,
		})
	}

	var conflicts []galnet.Conflict
	for _, c := range e.Conflicts {
		conflicts = append(conflicts, galnet.Conflict{
			SystemAddress:   e.SystemAddress,
			Status:          c.Status,
			WarType:         c.WarType,
			Faction1Name:    c.Faction1.Name,
			Faction1Stake:   c.Faction1.Stake,
			Faction1WonDays: c.Faction1.WonDays,
			Faction2Name:    c.Faction2.Name,
			Faction2Stake:   c.Faction2.Stake,
			Faction2WonDays: c.Faction2.WonDays,
		})
	}

	factionName := strPtr("")
	factionState := strPtr("")
	if e.SystemFaction != nil {
		factionName = strPtr(e.SystemFaction.Name)
		factionState = strPtr(strOr(e.SystemFaction.State, ""))
	}

	powerplayState := strPtr("")
	if e.PowerplayState != nil {
		powerplayState = e.PowerplayState
	}

	sys := galnet.System{
		SystemAddress:   e.SystemAddress,
		StarPos:         e.StarPos,
		StarSystem:      e.StarSystem,
		PrimaryBodyID:   e.BodyID,
		PrimaryBodyType: e.BodyType,
		PrimaryBodyName: e.Body,
		Population:      e.Population,
		Allegiance:      e.SystemAllegiance,
		Economy:         e.SystemEconomy,
		SecondEconomy:   e.SystemSecondEconomy,
		FactionName:     factionName,
		FactionState:    factionState,
		Security:        e.SystemSecurity,
		PowerplayState:  powerplayState,
		Government:      e.SystemGovernment,
		Powers:          powers,
		Factions:        factions,
		Conflicts:       conflicts,
	}

	var bodies []galnet.Body
	if e.BodyID != nil {
		bodyName := ""
		if e.Body != nil {
			bodyName = *e.Body
		}
		bodyType := ""
		if e.BodyType != nil {
			bodyType = *e.BodyType
		}
		bodies = append(bodies, galnet.Body{
			SystemAddress: e.SystemAddress,
			BodyID:        *e.BodyID,
			BodyName:      bodyName,
			BodyType:      bodyType,
		})
	}

	return galnet.Bundle{Systems: []galnet.System{sys}, Bodies: bodies}
}
