package normalize

import "github.com/galnet-relay/relay/internal/galnet"

// SAASignalsFound builds one Signal row per detected signal and one
// additional Signal row per detected biological genus (Count fixed at 1,
// since a genus entry only reports presence, not a quantity).
func SAASignalsFound(env galnet.Envelope, e galnet.EventSAASignalsFound) galnet.Bundle {
	signals := make([]galnet.Signal, 0, len(e.Signals)+len(e.Genuses))
	for _, s := range e.Signals {
		signals = append(signals, galnet.Signal{
			SystemAddress: e.SystemAddress,
			BodyID:        intPtr(e.BodyID),
			Type:          s.Type,
			Count:         s.Count,
		})
	}
	for _, g := range e.Genuses {
		signals = append(signals, galnet.Signal{
			SystemAddress: e.SystemAddress,
			BodyID:        intPtr(e.BodyID),
			Type:          g.Genus,
			Count:         1,
		})
	}

	return galnet.Bundle{Signals: signals}
}
