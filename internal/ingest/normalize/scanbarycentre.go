package normalize

import "github.com/galnet-relay/relay/internal/galnet"

// ScanBaryCentre builds a Body record for a barycentre, a fixed pseudo-body
// type with only orbital elements (no physical properties).
func ScanBaryCentre(env galnet.Envelope, e galnet.EventScanBaryCentre) galnet.Bundle {
	body := galnet.Body{
		SystemAddress:      e.SystemAddress,
		BodyID:             e.BodyID,
		BodyType:           "Barycentre",
		BodyName:           e.StarSystem + " Barycentre",
		MeanAnomaly:        floatPtr(e.MeanAnomaly),
		Eccentricity:       floatPtr(e.Eccentricity),
		AscendingNode:      floatPtr(e.AscendingNode),
		Periapsis:          floatPtr(e.Periapsis),
		SemiMajorAxis:      floatPtr(e.SemiMajorAxis),
		OrbitalPeriod:       floatPtr(e.OrbitalPeriod),
		OrbitalInclination: floatPtr(e.OrbitalInclination),
	}

	return galnet.Bundle{Bodies: []galnet.Body{body}}
}
