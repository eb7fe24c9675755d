package galnet

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
)

// Sentinel errors for lock key construction.
var (
	ErrLockKeyEmptyEntityKind = errors.New("lock key: empty entity kind")
	ErrLockKeyEmptyPK         = errors.New("lock key: empty primary key")
)

// LockKey canonically identifies one row an upsert is about to touch:
// an entity kind plus its primary key, serialized as JSON with keys in
// sorted order so the same row always produces the same string regardless
// of map iteration order.
type LockKey struct {
	EntityKind string
	PKJSON     string
}

// NewLockKey builds a LockKey from an entity kind and its primary key
// fields. pk values must be JSON-marshalable; field names are sorted
// before serialization so two callers supplying the same fields in a
// different order still produce an identical key.
func NewLockKey(entityKind string, pk map[string]any) (LockKey, error) {
	if entityKind == "" {
		return LockKey{}, ErrLockKeyEmptyEntityKind
	}
	if len(pk) == 0 {
		return LockKey{}, ErrLockKeyEmptyPK
	}

	names := make([]string, 0, len(pk))
	for name := range pk {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		keyJSON, err := json.Marshal(name)
		if err != nil {
			return LockKey{}, err
		}
		valJSON, err := json.Marshal(pk[name])
		if err != nil {
			return LockKey{}, err
		}
		b.Write(keyJSON)
		b.WriteByte(':')
		b.Write(valJSON)
	}
	b.WriteByte('}')

	return LockKey{EntityKind: entityKind, PKJSON: b.String()}, nil
}

// String renders the key as "<entityKind>|<pk-json>", used to deduplicate
// keys in SortLockKeys and in error messages. The ingestion_lock table stores
// EntityKind and PKJSON in separate columns.
func (k LockKey) String() string {
	return k.EntityKind + "|" + k.PKJSON
}

// Less orders two keys lexicographically by entity kind then PK JSON,
// the order in which the freshness gate acquires row locks to prevent
// deadlocks between concurrently running event handlers.
func (k LockKey) Less(other LockKey) bool {
	if k.EntityKind != other.EntityKind {
		return k.EntityKind < other.EntityKind
	}
	return k.PKJSON < other.PKJSON
}

// SortLockKeys returns a copy of keys sorted into canonical acquisition
// order, with duplicates removed.
func SortLockKeys(keys []LockKey) []LockKey {
	seen := make(map[string]struct{}, len(keys))
	out := make([]LockKey, 0, len(keys))
	for _, k := range keys {
		s := k.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Entity kind constants, used as the first element of a LockKey and as the
// model_name column in the ingestion_lock table.
const (
	EntityKindSystem     = "system"
	EntityKindBody       = "body"
	EntityKindStation    = "station"
	EntityKindLandmark   = "landmark"
	EntityKindMarket     = "market"
	EntityKindShipyard   = "shipyard"
	EntityKindOutfitting = "outfitting"
	EntityKindSignal     = "signal"
)

// SystemLockKey builds the lock key for a System row.
func SystemLockKey(systemAddress int64) (LockKey, error) {
	return NewLockKey(EntityKindSystem, map[string]any{"SystemAddress": systemAddress})
}

// BodyLockKey builds the lock key for a Body row.
func BodyLockKey(systemAddress, bodyID int64) (LockKey, error) {
	return NewLockKey(EntityKindBody, map[string]any{"SystemAddress": systemAddress, "BodyID": bodyID})
}

// StationLockKey builds the lock key for a Station row.
func StationLockKey(marketID int64) (LockKey, error) {
	return NewLockKey(EntityKindStation, map[string]any{"MarketID": marketID})
}

// LandmarkLockKey builds the lock key for a Landmark row from its nullable
// EntryID/AuxiliaryID pair, using the same coalesce convention as the
// table's unique index.
func LandmarkLockKey(entryID *int64, auxiliaryID *string) (LockKey, error) {
	pk := map[string]any{"EntryID": int64(-1), "AuxiliaryID": ""}
	if entryID != nil {
		pk["EntryID"] = *entryID
	}
	if auxiliaryID != nil {
		pk["AuxiliaryID"] = *auxiliaryID
	}
	return NewLockKey(EntityKindLandmark, pk)
}

// MarketLockKey builds the lock key for a Market row.
func MarketLockKey(marketID int64) (LockKey, error) {
	return NewLockKey(EntityKindMarket, map[string]any{"MarketID": marketID})
}

// ShipyardLockKey builds the lock key for a Shipyard row.
func ShipyardLockKey(marketID int64) (LockKey, error) {
	return NewLockKey(EntityKindShipyard, map[string]any{"MarketID": marketID})
}

// OutfittingLockKey builds the lock key for an Outfitting row.
func OutfittingLockKey(marketID int64) (LockKey, error) {
	return NewLockKey(EntityKindOutfitting, map[string]any{"MarketID": marketID})
}

// SignalLockKey builds the lock key for a Signal row from its nullable
// BodyID/SignalName, using the same coalesce convention as the table's
// unique index.
func SignalLockKey(systemAddress int64, bodyID *int64, signalType string, signalName *string) (LockKey, error) {
	pk := map[string]any{
		"SystemAddress": systemAddress,
		"BodyID":        int64(-1),
		"Type":          signalType,
		"SignalName":    "",
	}
	if bodyID != nil {
		pk["BodyID"] = *bodyID
	}
	if signalName != nil {
		pk["SignalName"] = *signalName
	}
	return NewLockKey(EntityKindSignal, pk)
}

// LockKeys derives the full, sorted set of lock keys a Bundle's rows
// require before any upsert runs.
func (b Bundle) LockKeys() ([]LockKey, error) {
	var keys []LockKey

	for _, s := range b.Systems {
		k, err := SystemLockKey(s.SystemAddress)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	for _, body := range b.Bodies {
		k, err := BodyLockKey(body.SystemAddress, body.BodyID)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	for _, st := range b.Stations {
		k, err := StationLockKey(st.MarketID)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	for _, lm := range b.Landmarks {
		k, err := LandmarkLockKey(lm.EntryID, lm.AuxiliaryID)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	for _, m := range b.Markets {
		k, err := MarketLockKey(m.MarketID)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	for _, sy := range b.Shipyards {
		k, err := ShipyardLockKey(sy.MarketID)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	for _, o := range b.Outfittings {
		k, err := OutfittingLockKey(o.MarketID)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	for _, sig := range b.Signals {
		k, err := SignalLockKey(sig.SystemAddress, sig.BodyID, sig.Type, sig.SignalName)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}

	return SortLockKeys(keys), nil
}
