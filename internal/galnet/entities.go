// Package galnet holds the domain entities, wire events, and dataset
// vocabulary of the galnet-relay ingestion core.
package galnet

// System is the top-level entity for a star system. Nullable fields mean
// no event has yet reported that field.
type System struct {
	SystemAddress  int64
	StarPos        [3]float64
	StarSystem     string
	PrimaryBodyID  *int64
	PrimaryBodyType *string
	PrimaryBodyName *string
	Population     *int64
	Allegiance     *string
	Economy        *string
	SecondEconomy  *string
	FactionName    *string
	FactionState   *string
	Security       *string
	PowerplayState *string
	Government     *string

	// Owned child collections. A nil slice means "no information supplied";
	// a non-nil (possibly empty) slice replaces the stored set wholesale.
	Powers    []SystemPower
	Factions  []Faction
	Conflicts []Conflict
}

// SystemPower is a power controlling or contesting a System.
type SystemPower struct {
	SystemAddress int64
	Power         string
}

// Faction is a minor faction present in a System, together with its states.
type Faction struct {
	SystemAddress   int64
	Name            string
	Influence       float64
	Happiness       string
	Allegiance      string
	SquadronFaction bool
	FactionState    string
	Government      string
	States          []FactionState
}

// FactionState is one active/pending/recovering state entry for a Faction.
type FactionState struct {
	SystemAddress int64
	FactionName   string
	Type          string // "Active", "Recovering", "Pending"
	State         string
	Trend         int
}

// Conflict is a war or election between two factions in a System.
type Conflict struct {
	SystemAddress   int64
	Status          string
	WarType         string
	Faction1Name    string
	Faction1Stake   string
	Faction1WonDays int
	Faction2Name    string
	Faction2Stake   string
	Faction2WonDays int
}

// Body is a stellar body keyed by (SystemAddress, BodyID).
type Body struct {
	SystemAddress int64
	BodyID        int64
	BodyType      string
	BodyName      string

	DistanceFromArrivalLS *float64

	MeanAnomaly        *float64
	Eccentricity       *float64
	AscendingNode      *float64
	Periapsis          *float64
	SemiMajorAxis      *float64
	OrbitalPeriod      *float64
	OrbitalInclination *float64

	TidalLock     *bool
	RotationPeriod *float64
	AxialTilt      *float64
	Radius         *float64
	MassEM         *float64
	StellarMass    *float64
	AgeMY          *int64

	StarType    *string
	PlanetClass *string
	Subclass    *int64
	// Parent is the derived parent body id; -1 means "no parents reported",
	// nil means "unknown" (no Scan/ScanBaryCentre event has populated it).
	Parent *int64

	AtmosphereType     *string
	AbsoluteMagnitude  *float64
	Luminosity         *string
	SurfaceTemperature *float64
	SurfaceGravity     *float64
	SurfacePressure    *float64
	Volcanism          *string
	TerraformState     *string
	Landable           *bool
	Atmosphere         *string
	ReserveLevel       *string
	CompositionIce     *float64
	CompositionMetal   *float64
	CompositionRock    *float64

	Materials              []BodyMaterial
	AtmosphereComposition  []BodyAtmosphereComponent
	Rings                  []BodyRing
}

// BodyMaterial is a surface material percentage reported by Scan.
type BodyMaterial struct {
	SystemAddress int64
	BodyID        int64
	Name          string
	Percent       float64
}

// BodyAtmosphereComponent is an atmosphere gas percentage reported by Scan.
type BodyAtmosphereComponent struct {
	SystemAddress int64
	BodyID        int64
	Name          string
	Percent       float64
}

// BodyRing is a planetary or stellar ring reported by Scan.
type BodyRing struct {
	SystemAddress int64
	BodyID        int64
	Name          string
	OuterRad      float64
	InnerRad      float64
	RingClass     string
	MassMT        float64
}

// Station is a dockable outpost, starport, or settlement keyed by MarketID.
type Station struct {
	SystemAddress      int64
	MarketID           int64
	StationName        string
	StationType        string
	BodyID             *int64
	Latitude           *float64
	Longitude          *float64
	DistFromStarLS     *float64
	StationGovernment  *string
	StationAllegiance  *string
	StationFactionName *string
	StationFactionState *string
	StationEconomy     *string
	StationState       *string
	LandingPadsLarge   *int64
	LandingPadsMedium  *int64
	LandingPadsSmall   *int64

	StationEconomies []StationEconomy
	StationServices  []string
}

// StationEconomy is one economy type and its proportion at a Station.
type StationEconomy struct {
	MarketID   int64
	Name       string
	Proportion float64
}

// Landmark is a surface point of interest. Its business key is
// (coalesce(EntryID,-1), coalesce(AuxiliaryID,'')); EntryID and AuxiliaryID
// are mutually exclusive identity sources.
type Landmark struct {
	EntryID            *int64
	AuxiliaryID        *string
	SystemAddress      int64
	BodyID             int64
	Latitude           float64
	Longitude          float64
	Name               string
	Region             *string
	Category           *string
	SubCategory        *string
	NearestDestination *string
	VoucherAmount      *int64

	Traits []string
}

// Market is a commodity market keyed by MarketID.
type Market struct {
	MarketID    int64
	Timestamp   string
	Commodities []MarketCommodity
}

// MarketCommodity is one tradeable commodity's state at a Market.
type MarketCommodity struct {
	MarketID  int64
	Name      string
	Category  *string
	Stock     int64
	Demand    int64
	Supply    int64
	BuyPrice  int64
	SellPrice int64
}

// Shipyard is a ship dealership keyed by MarketID.
type Shipyard struct {
	MarketID int64
	Timestamp string
	Ships     []ShipyardShip
}

// ShipyardShip is one ship model available at a Shipyard.
type ShipyardShip struct {
	MarketID int64
	Name     string
}

// Outfitting is a module dealership keyed by MarketID.
type Outfitting struct {
	MarketID  int64
	Timestamp string
	Items     []OutfittingItem
}

// OutfittingItem is one module available at an Outfitting dealership.
type OutfittingItem struct {
	MarketID int64
	Name     string
}

// Signal is a detected signal source, keyed by
// (SystemAddress, coalesce(BodyID,-1), Type, coalesce(SignalName,'')).
type Signal struct {
	SystemAddress int64
	BodyID        *int64
	Type          string
	Count         int64
	SignalName    *string
}
