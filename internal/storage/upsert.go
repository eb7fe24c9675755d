package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/galnet-relay/relay/internal/galnet"
)

// ErrUpsertFailed wraps any failure writing an entity or its owned child
// collections.
var ErrUpsertFailed = errors.New("storage: upsert failed")

// Store is the upsert engine (C5): one parent-upsert-plus-child-replace
// pair per entity in the galnet domain model. Every method runs inside a
// caller-supplied transaction, so the freshness gate's row lock and this
// write land in the same transaction scope.
type Store struct {
	conn *Connection
	log  *slog.Logger
}

// NewStore builds a Store backed by conn.
func NewStore(conn *Connection, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{conn: conn, log: log}
}

func wrapUpsertErr(entity string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrUpsertFailed, entity, err)
}

// UpsertSystem writes a System and, for any non-nil child collection,
// replaces its Powers, Factions, and Conflicts.
func (s *Store) UpsertSystem(ctx context.Context, tx *sql.Tx, sys galnet.System) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO system (
			system_address, star_pos, star_system, primary_body_id, primary_body_type,
			primary_body_name, population, allegiance, economy, second_economy,
			faction_name, faction_state, security, powerplay_state, government,
			created_at, updated_at
		) VALUES (
			$1, $2::vector, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW()
		)
		ON CONFLICT (system_address) DO UPDATE SET
			star_pos = COALESCE(EXCLUDED.star_pos, system.star_pos),
			star_system = COALESCE(EXCLUDED.star_system, system.star_system),
			primary_body_id = COALESCE(EXCLUDED.primary_body_id, system.primary_body_id),
			primary_body_type = COALESCE(EXCLUDED.primary_body_type, system.primary_body_type),
			primary_body_name = COALESCE(EXCLUDED.primary_body_name, system.primary_body_name),
			population = COALESCE(EXCLUDED.population, system.population),
			allegiance = COALESCE(EXCLUDED.allegiance, system.allegiance),
			economy = COALESCE(EXCLUDED.economy, system.economy),
			second_economy = COALESCE(EXCLUDED.second_economy, system.second_economy),
			faction_name = COALESCE(EXCLUDED.faction_name, system.faction_name),
			faction_state = COALESCE(EXCLUDED.faction_state, system.faction_state),
			security = COALESCE(EXCLUDED.security, system.security),
			powerplay_state = COALESCE(EXCLUDED.powerplay_state, system.powerplay_state),
			government = COALESCE(EXCLUDED.government, system.government),
			updated_at = NOW()
	`, sys.SystemAddress, vectorLiteral(sys.StarPos), sys.StarSystem, sys.PrimaryBodyID, sys.PrimaryBodyType,
		sys.PrimaryBodyName, sys.Population, sys.Allegiance, sys.Economy, sys.SecondEconomy,
		sys.FactionName, sys.FactionState, sys.Security, sys.PowerplayState, sys.Government)
	if err != nil {
		return wrapUpsertErr("system", err)
	}

	if sys.Powers != nil {
		if err := replaceChildren(ctx, tx, "system_power", "system_address", sys.SystemAddress,
			len(sys.Powers), func(i int) []any { return []any{sys.SystemAddress, sys.Powers[i].Power} },
			`INSERT INTO system_power (system_address, power) VALUES ($1, $2) ON CONFLICT DO NOTHING`); err != nil {
			return wrapUpsertErr("system_power", err)
		}
	}

	if sys.Factions != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM system_faction WHERE system_address = $1`, sys.SystemAddress); err != nil {
			return wrapUpsertErr("system_faction", err)
		}
		for _, f := range sys.Factions {
			squadron := 0
			if f.SquadronFaction {
				squadron = 1
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO system_faction (system_address, name, influence, happiness, allegiance,
					squadron_faction, faction_state, government)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				ON CONFLICT DO NOTHING
			`, sys.SystemAddress, f.Name, f.Influence, f.Happiness, f.Allegiance, squadron, f.FactionState, f.Government); err != nil {
				return wrapUpsertErr("system_faction", err)
			}
			for _, st := range f.States {
				if _, err := tx.ExecContext(ctx, `
					INSERT INTO system_faction_state (system_address, faction_name, type, state, trend)
					VALUES ($1, $2, $3, $4, $5)
					ON CONFLICT DO NOTHING
				`, sys.SystemAddress, f.Name, st.Type, st.State, st.Trend); err != nil {
					return wrapUpsertErr("system_faction_state", err)
				}
			}
		}
	}

	if sys.Conflicts != nil {
		if err := replaceChildren(ctx, tx, "system_conflict", "system_address", sys.SystemAddress,
			len(sys.Conflicts), func(i int) []any {
				c := sys.Conflicts[i]
				return []any{sys.SystemAddress, c.Status, c.WarType, c.Faction1Name, c.Faction1Stake,
					c.Faction1WonDays, c.Faction2Name, c.Faction2Stake, c.Faction2WonDays}
			},
			`INSERT INTO system_conflict (system_address, status, war_type, faction1_name, faction1_stake,
				faction1_won_days, faction2_name, faction2_stake, faction2_won_days)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) ON CONFLICT DO NOTHING`); err != nil {
			return wrapUpsertErr("system_conflict", err)
		}
	}

	return nil
}

// UpsertBody writes a Body and, for any non-nil child collection, replaces
// its Materials, AtmosphereComposition, and Rings.
func (s *Store) UpsertBody(ctx context.Context, tx *sql.Tx, b galnet.Body) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO body (
			system_address, body_id, body_type, body_name, distance_from_arrival_ls,
			mean_anomaly, eccentricity, ascending_node, periapsis, semi_major_axis,
			orbital_period, orbital_inclination, tidal_lock, rotation_period, axial_tilt,
			radius, mass_em, stellar_mass, age_my, star_type, planet_class, subclass, parent,
			atmosphere_type, absolute_magnitude, luminosity, surface_temperature, surface_gravity,
			surface_pressure, volcanism, terraform_state, landable, atmosphere, reserve_level,
			composition_ice, composition_metal, composition_rock, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36, $37,
			NOW(), NOW()
		)
		ON CONFLICT (system_address, body_id) DO UPDATE SET
			body_type = COALESCE(NULLIF(EXCLUDED.body_type, ''), body.body_type),
			body_name = COALESCE(NULLIF(EXCLUDED.body_name, ''), body.body_name),
			distance_from_arrival_ls = COALESCE(EXCLUDED.distance_from_arrival_ls, body.distance_from_arrival_ls),
			mean_anomaly = COALESCE(EXCLUDED.mean_anomaly, body.mean_anomaly),
			eccentricity = COALESCE(EXCLUDED.eccentricity, body.eccentricity),
			ascending_node = COALESCE(EXCLUDED.ascending_node, body.ascending_node),
			periapsis = COALESCE(EXCLUDED.periapsis, body.periapsis),
			semi_major_axis = COALESCE(EXCLUDED.semi_major_axis, body.semi_major_axis),
			orbital_period = COALESCE(EXCLUDED.orbital_period, body.orbital_period),
			orbital_inclination = COALESCE(EXCLUDED.orbital_inclination, body.orbital_inclination),
			tidal_lock = COALESCE(EXCLUDED.tidal_lock, body.tidal_lock),
			rotation_period = COALESCE(EXCLUDED.rotation_period, body.rotation_period),
			axial_tilt = COALESCE(EXCLUDED.axial_tilt, body.axial_tilt),
			radius = COALESCE(EXCLUDED.radius, body.radius),
			mass_em = COALESCE(EXCLUDED.mass_em, body.mass_em),
			stellar_mass = COALESCE(EXCLUDED.stellar_mass, body.stellar_mass),
			age_my = COALESCE(EXCLUDED.age_my, body.age_my),
			star_type = COALESCE(EXCLUDED.star_type, body.star_type),
			planet_class = COALESCE(EXCLUDED.planet_class, body.planet_class),
			subclass = COALESCE(EXCLUDED.subclass, body.subclass),
			parent = COALESCE(EXCLUDED.parent, body.parent),
			atmosphere_type = COALESCE(EXCLUDED.atmosphere_type, body.atmosphere_type),
			absolute_magnitude = COALESCE(EXCLUDED.absolute_magnitude, body.absolute_magnitude),
			luminosity = COALESCE(EXCLUDED.luminosity, body.luminosity),
			surface_temperature = COALESCE(EXCLUDED.surface_temperature, body.surface_temperature),
			surface_gravity = COALESCE(EXCLUDED.surface_gravity, body.surface_gravity),
			surface_pressure = COALESCE(EXCLUDED.surface_pressure, body.surface_pressure),
			volcanism = COALESCE(EXCLUDED.volcanism, body.volcanism),
			terraform_state = COALESCE(EXCLUDED.terraform_state, body.terraform_state),
			landable = COALESCE(EXCLUDED.landable, body.landable),
			atmosphere = COALESCE(EXCLUDED.atmosphere, body.atmosphere),
			reserve_level = COALESCE(EXCLUDED.reserve_level, body.reserve_level),
			composition_ice = COALESCE(EXCLUDED.composition_ice, body.composition_ice),
			composition_metal = COALESCE(EXCLUDED.composition_metal, body.composition_metal),
			composition_rock = COALESCE(EXCLUDED.composition_rock, body.composition_rock),
			updated_at = NOW()
	`, b.SystemAddress, b.BodyID, b.BodyType, b.BodyName, b.DistanceFromArrivalLS,
		b.MeanAnomaly, b.Eccentricity, b.AscendingNode, b.Periapsis, b.SemiMajorAxis,
		b.OrbitalPeriod, b.OrbitalInclination, b.TidalLock, b.RotationPeriod, b.AxialTilt,
		b.Radius, b.MassEM, b.StellarMass, b.AgeMY, b.StarType, b.PlanetClass, b.Subclass, b.Parent,
		b.AtmosphereType, b.AbsoluteMagnitude, b.Luminosity, b.SurfaceTemperature, b.SurfaceGravity,
		b.SurfacePressure, b.Volcanism, b.TerraformState, b.Landable, b.Atmosphere, b.ReserveLevel,
		b.CompositionIce, b.CompositionMetal, b.CompositionRock)
	if err != nil {
		return wrapUpsertErr("body", err)
	}

	if b.Materials != nil {
		if err := replaceBodyChildren(ctx, tx, "body_material", b.SystemAddress, b.BodyID,
			len(b.Materials), func(i int) []any { return []any{b.SystemAddress, b.BodyID, b.Materials[i].Name, b.Materials[i].Percent} },
			`INSERT INTO body_material (system_address, body_id, name, percent) VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`); err != nil {
			return wrapUpsertErr("body_material", err)
		}
	}

	if b.AtmosphereComposition != nil {
		if err := replaceBodyChildren(ctx, tx, "body_atmosphere_composition", b.SystemAddress, b.BodyID,
			len(b.AtmosphereComposition), func(i int) []any {
				c := b.AtmosphereComposition[i]
				return []any{b.SystemAddress, b.BodyID, c.Name, c.Percent}
			},
			`INSERT INTO body_atmosphere_composition (system_address, body_id, name, percent) VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`); err != nil {
			return wrapUpsertErr("body_atmosphere_composition", err)
		}
	}

	if b.Rings != nil {
		if err := replaceBodyChildren(ctx, tx, "body_ring", b.SystemAddress, b.BodyID,
			len(b.Rings), func(i int) []any {
				r := b.Rings[i]
				return []any{b.SystemAddress, b.BodyID, r.Name, r.OuterRad, r.InnerRad, r.RingClass, r.MassMT}
			},
			`INSERT INTO body_ring (system_address, body_id, name, outer_rad, inner_rad, ring_class, mass_mt)
			VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`); err != nil {
			return wrapUpsertErr("body_ring", err)
		}
	}

	return nil
}

// UpsertStation writes a Station and, for any non-nil child collection,
// replaces its StationEconomies and StationServices.
func (s *Store) UpsertStation(ctx context.Context, tx *sql.Tx, st galnet.Station) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO station (
			market_id, system_address, station_name, station_type, body_id, latitude, longitude,
			dist_from_star_ls, station_government, station_allegiance, station_faction_name,
			station_faction_state, station_economy, station_state, landing_pads_large,
			landing_pads_medium, landing_pads_small, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17, NOW(), NOW())
		ON CONFLICT (market_id) DO UPDATE SET
			system_address = COALESCE(EXCLUDED.system_address, station.system_address),
			station_name = COALESCE(NULLIF(EXCLUDED.station_name, ''), station.station_name),
			station_type = COALESCE(NULLIF(EXCLUDED.station_type, ''), station.station_type),
			body_id = COALESCE(EXCLUDED.body_id, station.body_id),
			latitude = COALESCE(EXCLUDED.latitude, station.latitude),
			longitude = COALESCE(EXCLUDED.longitude, station.longitude),
			dist_from_star_ls = COALESCE(EXCLUDED.dist_from_star_ls, station.dist_from_star_ls),
			station_government = COALESCE(EXCLUDED.station_government, station.station_government),
			station_allegiance = COALESCE(EXCLUDED.station_allegiance, station.station_allegiance),
			station_faction_name = COALESCE(EXCLUDED.station_faction_name, station.station_faction_name),
			station_faction_state = COALESCE(EXCLUDED.station_faction_state, station.station_faction_state),
			station_economy = COALESCE(EXCLUDED.station_economy, station.station_economy),
			station_state = COALESCE(EXCLUDED.station_state, station.station_state),
			landing_pads_large = COALESCE(EXCLUDED.landing_pads_large, station.landing_pads_large),
			landing_pads_medium = COALESCE(EXCLUDED.landing_pads_medium, station.landing_pads_medium),
			landing_pads_small = COALESCE(EXCLUDED.landing_pads_small, station.landing_pads_small),
			updated_at = NOW()
	`, st.MarketID, st.SystemAddress, st.StationName, st.StationType, st.BodyID, st.Latitude, st.Longitude,
		st.DistFromStarLS, st.StationGovernment, st.StationAllegiance, st.StationFactionName,
		st.StationFactionState, st.StationEconomy, st.StationState, st.LandingPadsLarge,
		st.LandingPadsMedium, st.LandingPadsSmall)
	if err != nil {
		return wrapUpsertErr("station", err)
	}

	if st.StationEconomies != nil {
		if err := replaceChildren(ctx, tx, "station_economy", "market_id", st.MarketID,
			len(st.StationEconomies), func(i int) []any {
				e := st.StationEconomies[i]
				return []any{st.MarketID, e.Name, e.Proportion}
			},
			`INSERT INTO station_economy (market_id, name, proportion) VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`); err != nil {
			return wrapUpsertErr("station_economy", err)
		}
	}

	if st.StationServices != nil {
		if err := replaceChildren(ctx, tx, "station_service", "market_id", st.MarketID,
			len(st.StationServices), func(i int) []any { return []any{st.MarketID, st.StationServices[i]} },
			`INSERT INTO station_service (market_id, name) VALUES ($1,$2) ON CONFLICT DO NOTHING`); err != nil {
			return wrapUpsertErr("station_service", err)
		}
	}

	return nil
}

// UpsertLandmark writes a Landmark keyed by coalesce(EntryID,-1),
// coalesce(AuxiliaryID,''), replacing its Traits if supplied. The upsert
// targets the coalesce unique index rather than the synthetic id column,
// then uses RETURNING to learn the row's id for trait foreign keys.
func (s *Store) UpsertLandmark(ctx context.Context, tx *sql.Tx, lm galnet.Landmark) error {
	var id int64
	err := tx.QueryRowContext(ctx, `
		INSERT INTO landmark (
			entry_id, auxiliary_id, system_address, body_id, latitude, longitude, name,
			region, category, sub_category, nearest_destination, voucher_amount, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12, NOW(), NOW())
		ON CONFLICT (
			(COALESCE(entry_id, -1)),
			(COALESCE(auxiliary_id, ''))
		) DO UPDATE SET
			system_address = COALESCE(EXCLUDED.system_address, landmark.system_address),
			body_id = COALESCE(EXCLUDED.body_id, landmark.body_id),
			latitude = COALESCE(EXCLUDED.latitude, landmark.latitude),
			longitude = COALESCE(EXCLUDED.longitude, landmark.longitude),
			name = COALESCE(NULLIF(EXCLUDED.name, ''), landmark.name),
			region = COALESCE(EXCLUDED.region, landmark.region),
			category = COALESCE(EXCLUDED.category, landmark.category),
			sub_category = COALESCE(EXCLUDED.sub_category, landmark.sub_category),
			nearest_destination = COALESCE(EXCLUDED.nearest_destination, landmark.nearest_destination),
			voucher_amount = COALESCE(EXCLUDED.voucher_amount, landmark.voucher_amount),
			updated_at = NOW()
		RETURNING id
	`, lm.EntryID, lm.AuxiliaryID, lm.SystemAddress, lm.BodyID, lm.Latitude, lm.Longitude, lm.Name,
		lm.Region, lm.Category, lm.SubCategory, lm.NearestDestination, lm.VoucherAmount).Scan(&id)
	if err != nil {
		return wrapUpsertErr("landmark", err)
	}

	if lm.Traits != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM landmark_trait WHERE landmark_id = $1`, id); err != nil {
			return wrapUpsertErr("landmark_trait", err)
		}
		for _, trait := range lm.Traits {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO landmark_trait (landmark_id, trait) VALUES ($1, $2) ON CONFLICT DO NOTHING
			`, id, trait); err != nil {
				return wrapUpsertErr("landmark_trait", err)
			}
		}
	}

	return nil
}

// UpsertMarket writes a Market and replaces its Commodities.
func (s *Store) UpsertMarket(ctx context.Context, tx *sql.Tx, m galnet.Market) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO market (market_id, timestamp, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (market_id) DO UPDATE SET
			timestamp = CASE WHEN EXCLUDED.timestamp > market.timestamp THEN EXCLUDED.timestamp ELSE market.timestamp END,
			updated_at = NOW()
	`, m.MarketID, m.Timestamp)
	if err != nil {
		return wrapUpsertErr("market", err)
	}

	if err := replaceChildren(ctx, tx, "market_commodity", "market_id", m.MarketID,
		len(m.Commodities), func(i int) []any {
			c := m.Commodities[i]
			return []any{m.MarketID, c.Name, c.Category, c.Stock, c.Demand, c.Supply, c.BuyPrice, c.SellPrice}
		},
		`INSERT INTO market_commodity (market_id, name, category, stock, demand, supply, buy_price, sell_price)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT DO NOTHING`); err != nil {
		return wrapUpsertErr("market_commodity", err)
	}

	return nil
}

// UpsertShipyard writes a Shipyard and replaces its Ships.
func (s *Store) UpsertShipyard(ctx context.Context, tx *sql.Tx, sy galnet.Shipyard) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO shipyard (market_id, timestamp, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (market_id) DO UPDATE SET
			timestamp = CASE WHEN EXCLUDED.timestamp > shipyard.timestamp THEN EXCLUDED.timestamp ELSE shipyard.timestamp END,
			updated_at = NOW()
	`, sy.MarketID, sy.Timestamp)
	if err != nil {
		return wrapUpsertErr("shipyard", err)
	}

	if err := replaceChildren(ctx, tx, "shipyard_ship", "market_id", sy.MarketID,
		len(sy.Ships), func(i int) []any { return []any{sy.MarketID, sy.Ships[i].Name} },
		`INSERT INTO shipyard_ship (market_id, name) VALUES ($1,$2) ON CONFLICT DO NOTHING`); err != nil {
		return wrapUpsertErr("shipyard_ship", err)
	}

	return nil
}

// UpsertOutfitting writes an Outfitting and replaces its Items.
func (s *Store) UpsertOutfitting(ctx context.Context, tx *sql.Tx, o galnet.Outfitting) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO outfitting (market_id, timestamp, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (market_id) DO UPDATE SET
			timestamp = CASE WHEN EXCLUDED.timestamp > outfitting.timestamp THEN EXCLUDED.timestamp ELSE outfitting.timestamp END,
			updated_at = NOW()
	`, o.MarketID, o.Timestamp)
	if err != nil {
		return wrapUpsertErr("outfitting", err)
	}

	if err := replaceChildren(ctx, tx, "outfitting_item", "market_id", o.MarketID,
		len(o.Items), func(i int) []any { return []any{o.MarketID, o.Items[i].Name} },
		`INSERT INTO outfitting_item (market_id, name) VALUES ($1,$2) ON CONFLICT DO NOTHING`); err != nil {
		return wrapUpsertErr("outfitting_item", err)
	}

	return nil
}

// UpsertSignal writes a Signal row, keyed by (system_address,
// coalesce(body_id,-1), type, coalesce(signal_name,'')). Signals have no
// owned children.
func (s *Store) UpsertSignal(ctx context.Context, tx *sql.Tx, sig galnet.Signal) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO signal (system_address, body_id, type, count, signal_name, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5, NOW(), NOW())
		ON CONFLICT (
			system_address,
			(COALESCE(body_id, -1)),
			type,
			(COALESCE(signal_name, ''))
		) DO UPDATE SET
			count = EXCLUDED.count,
			updated_at = NOW()
	`, sig.SystemAddress, sig.BodyID, sig.Type, sig.Count, sig.SignalName)
	if err != nil {
		return wrapUpsertErr("signal", err)
	}
	return nil
}

// replaceChildren deletes all rows in table matching parentColumn =
// parentValue, then inserts n freshly-built rows, ignoring conflicts on
// the child's own unique key. Used for children keyed purely on the
// parent id (system_power, station_economy, ...).
func replaceChildren(ctx context.Context, tx *sql.Tx, table, parentColumn string, parentValue any,
	n int, rowArgs func(i int) []any, insertSQL string) error {
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, parentColumn), parentValue); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := tx.ExecContext(ctx, insertSQL, rowArgs(i)...); err != nil {
			return err
		}
	}
	return nil
}

// replaceBodyChildren is replaceChildren specialized for the body_* child
// tables, which are keyed on the (system_address, body_id) composite.
func replaceBodyChildren(ctx context.Context, tx *sql.Tx, table string, systemAddress, bodyID int64,
	n int, rowArgs func(i int) []any, insertSQL string) error {
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE system_address = $1 AND body_id = $2`, table),
		systemAddress, bodyID); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := tx.ExecContext(ctx, insertSQL, rowArgs(i)...); err != nil {
			return err
		}
	}
	return nil
}

// vectorLiteral renders a 3-vector as the pgvector text literal
// "[x,y,z]".
func vectorLiteral(pos [3]float64) string {
	return fmt.Sprintf("[%g,%g,%g]", pos[0], pos[1], pos[2])
}
