package galnet

// Dataset describes one EDDN-style archive stream: its file-name base and
// the wire event tag carried in each message body's "event" field.
type Dataset struct {
	Name     string
	FileBase string
	Event    string
}

// Known datasets, per the archive naming convention
// "<FileBase>-<YYYY-MM-DD>.jsonl.bz2".
var (
	DatasetFSDJump             = Dataset{Name: "fsdjump", FileBase: "Journal.FSDJump", Event: "FSDJump"}
	DatasetScan                = Dataset{Name: "scan", FileBase: "Journal.Scan", Event: "Scan"}
	DatasetScanBaryCentre      = Dataset{Name: "scanbarycentre", FileBase: "Journal.ScanBaryCentre", Event: "ScanBaryCentre"}
	DatasetDocked              = Dataset{Name: "docked", FileBase: "Journal.Docked", Event: "Docked"}
	DatasetApproachSettlement  = Dataset{Name: "approachsettlement", FileBase: "Journal.ApproachSettlement", Event: "ApproachSettlement"}
	DatasetCarrierJump         = Dataset{Name: "carrierjump", FileBase: "Journal.CarrierJump", Event: "CarrierJump"}
	DatasetMarket              = Dataset{Name: "market", FileBase: "Commodity", Event: "Market"}
	DatasetOutfitting          = Dataset{Name: "outfitting", FileBase: "Outfitting", Event: "Outfitting"}
	DatasetShipyard            = Dataset{Name: "shipyard", FileBase: "Shipyard", Event: "Shipyard"}
	DatasetSAASignalsFound     = Dataset{Name: "saasignalsfound", FileBase: "Journal.SAASignalsFound", Event: "SAASignalsFound"}
	DatasetFSSBodySignals      = Dataset{Name: "fssbodysignals", FileBase: "Journal.FSSBodySignals", Event: "FSSBodySignals"}
	DatasetFSSSignalDiscovered = Dataset{Name: "fsssignaldiscovered", FileBase: "Journal.FSSSignalDiscovered", Event: "FSSSignalDiscovered"}
)

// AllDatasets lists every dataset the relay knows how to ingest, in the
// order the run dispatcher reports them.
var AllDatasets = []Dataset{
	DatasetFSDJump,
	DatasetScan,
	DatasetScanBaryCentre,
	DatasetDocked,
	DatasetApproachSettlement,
	DatasetCarrierJump,
	DatasetMarket,
	DatasetOutfitting,
	DatasetShipyard,
	DatasetSAASignalsFound,
	DatasetFSSBodySignals,
	DatasetFSSSignalDiscovered,
}

// ByName looks up a dataset by its URL-path name (e.g. "scan"). ok is false
// if no dataset matches.
func ByName(name string) (Dataset, bool) {
	for _, d := range AllDatasets {
		if d.Name == name {
			return d, true
		}
	}
	return Dataset{}, false
}
