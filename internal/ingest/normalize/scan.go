package normalize

import "github.com/galnet-relay/relay/internal/galnet"

// Scan builds the Body record for a scanned star or planet, including its
// owned Materials, AtmosphereComposition, and Rings collections. A nil
// source list on the wire event means "not reported" (the stored
// collection is left untouched); an empty-but-present list means "reported
// as empty" (the stored collection is cleared).
func Scan(env galnet.Envelope, e galnet.EventScan) galnet.Bundle {
	bodyType := "Unknown"
	if e.StarType != nil && *e.StarType != "" {
		bodyType = "Star"
	} else if e.PlanetClass != nil && *e.PlanetClass != "" {
		bodyType = "Planet"
	}

	var parent *int64
	if e.Parents != nil {
		if len(e.Parents) > 0 {
			first := e.Parents[0]
			switch {
			case first.Star != nil:
				parent = first.Star
			case first.Planet != nil:
				parent = first.Planet
			case first.Ring != nil:
				parent = first.Ring
			case first.Null != nil:
				parent = first.Null
			}
		} else {
			parent = intPtr(-1)
		}
	}

	var materials []galnet.BodyMaterial
	if e.Materials != nil {
		materials = make([]galnet.BodyMaterial, 0, len(e.Materials))
		for _, m := range e.Materials {
			materials = append(materials, galnet.BodyMaterial{
				SystemAddress: e.SystemAddress, BodyID: e.BodyID,
				Name: m.Name, Percent: m.Percent,
			})
		}
	}

	var atmosphere []galnet.BodyAtmosphereComponent
	if e.AtmosphereComposition != nil {
		atmosphere = make([]galnet.BodyAtmosphereComponent, 0, len(e.AtmosphereComposition))
		for _, a := range e.AtmosphereComposition {
			atmosphere = append(atmosphere, galnet.BodyAtmosphereComponent{
				SystemAddress: e.SystemAddress, BodyID: e.BodyID,
				Name: a.Name, Percent: a.Percent,
			})
		}
	}

	var rings []galnet.BodyRing
	if e.Rings != nil {
		rings = make([]galnet.BodyRing, 0, len(e.Rings))
		for _, r := range e.Rings {
			rings = append(rings, galnet.BodyRing{
				SystemAddress: e.SystemAddress, BodyID: e.BodyID,
				Name: r.Name, OuterRad: r.OuterRad, InnerRad: r.InnerRad,
				RingClass: r.RingClass, MassMT: r.MassMT,
			})
		}
	}

	var compIce, compMetal, compRock *float64
	if e.Composition != nil {
		compIce = floatPtr(e.Composition.Ice)
		compMetal = floatPtr(e.Composition.Metal)
		compRock = floatPtr(e.Composition.Rock)
	}

	body := galnet.Body{
		SystemAddress:         e.SystemAddress,
		BodyID:                e.BodyID,
		BodyName:              e.BodyName,
		BodyType:              bodyType,
		DistanceFromArrivalLS: floatPtr(e.DistanceFromArrivalLS),
		MeanAnomaly:           e.MeanAnomaly,
		Eccentricity:          e.Eccentricity,
		AscendingNode:         e.AscendingNode,
		Periapsis:             e.Periapsis,
		SemiMajorAxis:         e.SemiMajorAxis,
		OrbitalPeriod:         e.OrbitalPeriod,
		OrbitalInclination:    e.OrbitalInclination,
		TidalLock:             e.TidalLock,
		RotationPeriod:        e.RotationPeriod,
		AxialTilt:             e.AxialTilt,
		Radius:                e.Radius,
		MassEM:                e.MassEM,
		StellarMass:           e.StellarMass,
		AgeMY:                 e.AgeMY,
		StarType:              e.StarType,
		PlanetClass:           e.PlanetClass,
		Subclass:              e.Subclass,
		Parent:                parent,
		AtmosphereType:        e.AtmosphereType,
		AbsoluteMagnitude:     e.AbsoluteMagnitude,
		Luminosity:            e.Luminosity,
		SurfaceTemperature:    e.SurfaceTemperature,
		SurfaceGravity:        e.SurfaceGravity,
		SurfacePressure:       e.SurfacePressure,
		Volcanism:             e.Volcanism,
		TerraformState:        e.TerraformState,
		Landable:              e.Landable,
		Atmosphere:            e.Atmosphere,
		ReserveLevel:          e.ReserveLevel,
		CompositionIce:        compIce,
		CompositionMetal:      compMetal,
		CompositionRock:       compRock,
		Materials:             materials,
		AtmosphereComposition: atmosphere,
		Rings:                 rings,
	}

	return galnet.Bundle{Bodies: []galnet.Body{body}}
}
