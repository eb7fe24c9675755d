package normalize

import "github.com/galnet-relay/relay/internal/galnet"

// FSSSignalDiscovered builds one Signal row per discovered signal that
// reports a type. Fleet carriers are excluded: they are a player-owned,
// transient object, not a fixture worth tracking as a galactic signal
// source. Each signal's own SystemAddress takes precedence over the
// event's when both are present, since a scan picked up from a
// neighboring system reports the signal's true location.
func FSSSignalDiscovered(env galnet.Envelope, e galnet.EventFSSSignalDiscovered) galnet.Bundle {
	var signals []galnet.Signal
	for _, s := range e.Signals {
		if s.SignalType == nil || *s.SignalType == "" || *s.SignalType == "FleetCarrier" {
			continue
		}

		systemAddress := e.SystemAddress
		if s.SystemAddress != nil {
			systemAddress = *s.SystemAddress
		}

		signalName := s.SignalName
		signals = append(signals, galnet.Signal{
			SystemAddress: systemAddress,
			Type:          *s.SignalType,
			Count:         1,
			SignalName:    &signalName,
		})
	}

	return galnet.Bundle{Signals: signals}
}
