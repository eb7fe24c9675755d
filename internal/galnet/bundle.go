package galnet

// Bundle is the normalized output of one event: zero or more rows across the
// entity collections, ready for the upsert engine. A freshly zero-valued
// Bundle (no slice populated) means the normalizer found nothing to write,
// and the pipeline counts the source event as skipped.
type Bundle struct {
	Systems     []System
	Bodies      []Body
	Stations    []Station
	Landmarks   []Landmark
	Markets     []Market
	Shipyards   []Shipyard
	Outfittings []Outfitting
	Signals     []Signal
}

// IsEmpty reports whether the bundle carries no rows at all.
func (b Bundle) IsEmpty() bool {
	return len(b.Systems) == 0 &&
		len(b.Bodies) == 0 &&
		len(b.Stations) == 0 &&
		len(b.Landmarks) == 0 &&
		len(b.Markets) == 0 &&
		len(b.Shipyards) == 0 &&
		len(b.Outfittings) == 0 &&
		len(b.Signals) == 0
}
