package normalize

import "github.com/galnet-relay/relay/internal/galnet"

// FSSBodySignals builds one Signal row per detected signal on a body.
func FSSBodySignals(env galnet.Envelope, e galnet.EventFSSBodySignals) galnet.Bundle {
	signals := make([]galnet.Signal, 0, len(e.Signals))
	for _, s := range e.Signals {
		signals = append(signals, galnet.Signal{
			SystemAddress: e.SystemAddress,
			BodyID:        intPtr(e.BodyID),
			Type:          s.Type,
			Count:         s.Count,
		})
	}

	return galnet.Bundle{Signals: signals}
}
