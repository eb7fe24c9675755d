package galnet

import "encoding/json"

// Header is the EDDN-style envelope header. Extra header fields beyond
// these are ignored.
type Header struct {
	UploaderID       string  `json:"uploaderID"`
	GameVersion      *string `json:"gameversion,omitempty"`
	GameBuild        *string `json:"gamebuild,omitempty"`
	SoftwareName     string  `json:"softwareName"`
	SoftwareVersion  string  `json:"softwareVersion"`
	GatewayTimestamp *string `json:"gatewayTimestamp,omitempty"`
}

// Envelope is the permissive outer decode: header plus a raw message body.
// The message is re-decoded strictly once the dataset's event tag is known.
type Envelope struct {
	Header  Header          `json:"header"`
	Message json.RawMessage `json:"message"`
}

// MessageMeta carries the fields common to every message body, used to
// read Horizons/Odyssey flags and the discriminating event tag before a
// strict per-dataset decode.
type MessageMeta struct {
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
	Horizons  bool   `json:"horizons"`
	Odyssey   bool   `json:"odyssey"`
}

// --- FSDJump ---

type FactionActiveState struct {
	State string `json:"State"`
}

type FactionPendingState struct {
	State string `json:"State"`
	Trend int    `json:"Trend"`
}

type FactionRecoveringState struct {
	State string `json:"State"`
	Trend int    `json:"Trend"`
}

type EventFaction struct {
	Name            string                   `json:"Name"`
	Influence       float64                  `json:"Influence"`
	Happiness       string                   `json:"Happiness"`
	Allegiance      string                   `json:"Allegiance"`
	SquadronFaction *bool                    `json:"SquadronFaction,omitempty"`
	FactionState    string                   `json:"FactionState"`
	Government      string                   `json:"Government"`
	ActiveStates    []FactionActiveState     `json:"ActiveStates,omitempty"`
	PendingStates   []FactionPendingState    `json:"PendingStates,omitempty"`
	RecoveringStates []FactionRecoveringState `json:"RecoveringStates,omitempty"`
}

type ConflictFaction struct {
	Name    string `json:"Name"`
	Stake   string `json:"Stake"`
	WonDays int    `json:"WonDays"`
}

type EventConflict struct {
	Status   string          `json:"Status"`
	WarType  string          `json:"WarType"`
	Faction1 ConflictFaction `json:"Faction1"`
	Faction2 ConflictFaction `json:"Faction2"`
}

type SystemFactionRef struct {
	Name  string  `json:"Name"`
	State *string `json:"State,omitempty"`
}

type EventFSDJump struct {
	Event              string            `json:"event"`
	Timestamp          string            `json:"timestamp"`
	SystemAddress      int64             `json:"SystemAddress"`
	BodyID             *int64            `json:"BodyID,omitempty"`
	BodyType           *string           `json:"BodyType,omitempty"`
	Body               *string           `json:"Body,omitempty"`
	SystemAllegiance   *string           `json:"SystemAllegiance,omitempty"`
	SystemFaction      *SystemFactionRef `json:"SystemFaction,omitempty"`
	SystemSecurity     *string           `json:"SystemSecurity,omitempty"`
	StarPos            [3]float64        `json:"StarPos"`
	PowerplayState     *string           `json:"PowerplayState,omitempty"`
	Factions           []EventFaction    `json:"Factions,omitempty"`
	SystemEconomy      *string           `json:"SystemEconomy,omitempty"`
	SystemSecondEconomy *string          `json:"SystemSecondEconomy,omitempty"`
	Population         *int64            `json:"Population,omitempty"`
	Powers             []string          `json:"Powers,omitempty"`
	StarSystem         string            `json:"StarSystem"`
	Conflicts          []EventConflict   `json:"Conflicts,omitempty"`
	SystemGovernment   *string           `json:"SystemGovernment,omitempty"`
}

// --- Scan ---

type ScanMaterial struct {
	Percent float64 `json:"Percent"`
	Name    string  `json:"Name"`
}

type ScanAtmosphereComponent struct {
	Percent float64 `json:"Percent"`
	Name    string  `json:"Name"`
}

type ScanParent struct {
	Star   *int64 `json:"Star,omitempty"`
	Null   *int64 `json:"Null,omitempty"`
	Ring   *int64 `json:"Ring,omitempty"`
	Planet *int64 `json:"Planet,omitempty"`
}

type ScanComposition struct {
	Ice   float64 `json:"Ice"`
	Metal float64 `json:"Metal"`
	Rock  float64 `json:"Rock"`
}

type ScanRing struct {
	OuterRad  float64 `json:"OuterRad"`
	InnerRad  float64 `json:"InnerRad"`
	RingClass string  `json:"RingClass"`
	Name      string  `json:"Name"`
	MassMT    float64 `json:"MassMT"`
}

type EventScan struct {
	Event                 string                    `json:"event"`
	Timestamp             string                    `json:"timestamp"`
	SystemAddress         int64                     `json:"SystemAddress"`
	StarSystem            string                    `json:"StarSystem"`
	BodyID                int64                     `json:"BodyID"`
	BodyName              string                    `json:"BodyName"`
	DistanceFromArrivalLS float64                   `json:"DistanceFromArrivalLS"`
	MeanAnomaly           *float64                  `json:"MeanAnomaly,omitempty"`
	Eccentricity          *float64                  `json:"Eccentricity,omitempty"`
	AscendingNode         *float64                  `json:"AscendingNode,omitempty"`
	Periapsis             *float64                  `json:"Periapsis,omitempty"`
	SemiMajorAxis         *float64                  `json:"SemiMajorAxis,omitempty"`
	OrbitalPeriod         *float64                  `json:"OrbitalPeriod,omitempty"`
	OrbitalInclination    *float64                  `json:"OrbitalInclination,omitempty"`
	TidalLock             *bool                     `json:"TidalLock,omitempty"`
	RotationPeriod        *float64                  `json:"RotationPeriod,omitempty"`
	AxialTilt             *float64                  `json:"AxialTilt,omitempty"`
	Radius                *float64                  `json:"Radius,omitempty"`
	MassEM                *float64                  `json:"MassEM,omitempty"`
	StellarMass           *float64                  `json:"StellarMass,omitempty"`
	AgeMY                 *int64                    `json:"Age_MY,omitempty"`
	StarType              *string                   `json:"StarType,omitempty"`
	PlanetClass           *string                   `json:"PlanetClass,omitempty"`
	Subclass              *int64                    `json:"Subclass,omitempty"`
	Parents               []ScanParent              `json:"Parents,omitempty"`
	AtmosphereType        *string                   `json:"AtmosphereType,omitempty"`
	AbsoluteMagnitude     *float64                  `json:"AbsoluteMagnitude,omitempty"`
	Luminosity            *string                   `json:"Luminosity,omitempty"`
	SurfaceTemperature    *float64                  `json:"SurfaceTemperature,omitempty"`
	SurfaceGravity        *float64                  `json:"SurfaceGravity,omitempty"`
	SurfacePressure       *float64                  `json:"SurfacePressure,omitempty"`
	Volcanism             *string                   `json:"Volcanism,omitempty"`
	TerraformState        *string                   `json:"TerraformState,omitempty"`
	Landable              *bool                     `json:"Landable,omitempty"`
	Atmosphere            *string                   `json:"Atmosphere,omitempty"`
	ReserveLevel          *string                   `json:"ReserveLevel,omitempty"`
	Composition           *ScanComposition          `json:"Composition,omitempty"`
	Materials             []ScanMaterial            `json:"Materials,omitempty"`
	AtmosphereComposition []ScanAtmosphereComponent `json:"AtmosphereComposition,omitempty"`
	Rings                 []ScanRing                `json:"Rings,omitempty"`
}

// --- ScanBaryCentre ---

type EventScanBaryCentre struct {
	Event              string  `json:"event"`
	Timestamp          string  `json:"timestamp"`
	SystemAddress      int64   `json:"SystemAddress"`
	StarSystem         string  `json:"StarSystem"`
	BodyID             int64   `json:"BodyID"`
	MeanAnomaly        float64 `json:"MeanAnomaly"`
	Eccentricity       float64 `json:"Eccentricity"`
	AscendingNode      float64 `json:"AscendingNode"`
	Periapsis          float64 `json:"Periapsis"`
	SemiMajorAxis      float64 `json:"SemiMajorAxis"`
	OrbitalPeriod      float64 `json:"OrbitalPeriod"`
	OrbitalInclination float64 `json:"OrbitalInclination"`
}

// --- Docked ---

type EventStationEconomy struct {
	Name       string  `json:"Name"`
	Proportion float64 `json:"Proportion"`
}

type EventStationFaction struct {
	Name         string `json:"Name"`
	FactionState string `json:"FactionState"`
}

type EventLandingPads struct {
	Small  int64 `json:"Small"`
	Medium int64 `json:"Medium"`
	Large  int64 `json:"Large"`
}

type EventDocked struct {
	Event             string                `json:"event"`
	Timestamp         string                `json:"timestamp"`
	SystemAddress     int64                 `json:"SystemAddress"`
	MarketID          int64                 `json:"MarketID"`
	StationName       string                `json:"StationName"`
	StationType       string                `json:"StationType"`
	DistFromStarLS    float64               `json:"DistFromStarLS"`
	StationGovernment string                `json:"StationGovernment"`
	StationAllegiance string                `json:"StationAllegiance"`
	StationEconomies  []EventStationEconomy `json:"StationEconomies"`
	StationFaction    EventStationFaction   `json:"StationFaction"`
	StationServices   []string              `json:"StationServices"`
	StationEconomy    string                `json:"StationEconomy"`
	StationState      string                `json:"StationState"`
	LandingPads       EventLandingPads      `json:"LandingPads"`
}

// --- ApproachSettlement ---

type EventApproachSettlement struct {
	Event             string                `json:"event"`
	Timestamp         string                `json:"timestamp"`
	SystemAddress     int64                 `json:"SystemAddress"`
	MarketID          *int64                `json:"MarketID,omitempty"`
	Name              string                `json:"Name"`
	BodyID            int64                 `json:"BodyID"`
	BodyName          string                `json:"BodyName"`
	Latitude          float64               `json:"Latitude"`
	Longitude         float64               `json:"Longitude"`
	StationGovernment string                `json:"StationGovernment"`
	StationAllegiance string                `json:"StationAllegiance"`
	StationEconomies  []EventStationEconomy `json:"StationEconomies"`
	StationFaction    EventStationFaction   `json:"StationFaction"`
	StationServices   []string              `json:"StationServices"`
	StationEconomy    string                `json:"StationEconomy"`
}

// --- CarrierJump ---

type EventCarrierJump struct {
	Event         string `json:"event"`
	Timestamp     string `json:"timestamp"`
	SystemAddress int64  `json:"SystemAddress"`
	MarketID      *int64 `json:"MarketID,omitempty"`
	StationName   string `json:"StationName"`
	StationType   string `json:"StationType"`
}

// --- Market ---

type EventMarketCommodity struct {
	Name       string  `json:"name"`
	Category   *string `json:"category,omitempty"`
	Stock      int64   `json:"stock"`
	Demand     int64   `json:"demand"`
	Supply     int64   `json:"supply"`
	BuyPrice   int64   `json:"buyPrice"`
	SellPrice  int64   `json:"sellPrice"`
}

type EventMarket struct {
	Event       string                  `json:"event"`
	Timestamp   string                  `json:"timestamp"`
	MarketID    int64                   `json:"marketId"`
	Commodities []EventMarketCommodity  `json:"commodities"`
	Prohibited  []string                `json:"prohibited,omitempty"`
}

// --- Outfitting ---

type EventOutfitting struct {
	Event     string   `json:"event"`
	Timestamp string   `json:"timestamp"`
	MarketID  int64    `json:"marketId"`
	Modules   []string `json:"modules"`
}

// --- Shipyard ---

type EventShipyard struct {
	Event     string   `json:"event"`
	Timestamp string   `json:"timestamp"`
	MarketID  int64    `json:"marketId"`
	Ships     []string `json:"ships"`
}

// --- SAASignalsFound ---

type SAASignalEntry struct {
	Type  string `json:"Type"`
	Count int64  `json:"Count"`
}

type SAAGenusEntry struct {
	Genus string `json:"Genus"`
}

type EventSAASignalsFound struct {
	Event         string           `json:"event"`
	Timestamp     string           `json:"timestamp"`
	BodyID        int64            `json:"BodyID"`
	BodyName      string           `json:"BodyName"`
	SystemAddress int64            `json:"SystemAddress"`
	Signals       []SAASignalEntry `json:"Signals"`
	Genuses       []SAAGenusEntry  `json:"Genuses,omitempty"`
}

// --- FSSBodySignals ---

type FSSBodySignalEntry struct {
	Type  string `json:"Type"`
	Count int64  `json:"Count"`
}

type EventFSSBodySignals struct {
	Event         string               `json:"event"`
	Timestamp     string               `json:"timestamp"`
	SystemAddress int64                `json:"SystemAddress"`
	BodyID        int64                `json:"BodyID"`
	BodyName      string               `json:"BodyName"`
	Signals       []FSSBodySignalEntry `json:"Signals"`
}

// --- FSSSignalDiscovered ---

type FSSSignalEntry struct {
	Event         string  `json:"event"`
	Timestamp     string  `json:"timestamp"`
	SystemAddress *int64  `json:"SystemAddress,omitempty"`
	SignalType    *string `json:"SignalType,omitempty"`
	IsStation     bool    `json:"IsStation"`
	SignalName    string  `json:"SignalName"`
}

type EventFSSSignalDiscovered struct {
	Event         string           `json:"event"`
	Timestamp     string           `json:"timestamp"`
	SystemAddress int64            `json:"SystemAddress"`
	Signals       []FSSSignalEntry `json:"signals"`
}
