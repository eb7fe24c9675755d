// Package decode turns one raw archive line into a normalized entity
// bundle, or classifies it as skipped or failed. Decoding is two-step:
// first a permissive unmarshal of the envelope (header plus a raw message
// body), then a strict unmarshal of the message into the event struct its
// "event" tag names.
package decode

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/galnet-relay/relay/internal/galnet"
	"github.com/galnet-relay/relay/internal/ingest/normalize"
)

// Verdict classifies the outcome of decoding one line.
type Verdict int

const (
	// Processed means the line produced at least one entity row.
	Processed Verdict = iota
	// Skipped means the line was well-formed but carried nothing to store:
	// an unrecognized dataset, or a recognized one whose normalizer found
	// no rows to write.
	Skipped
	// Failed means the line could not be parsed as a valid envelope or a
	// valid instance of the dataset its event tag names.
	Failed
)

func (v Verdict) String() string {
	switch v {
	case Processed:
		return "processed"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrParse wraps any failure to decode a line's envelope or its typed
// message body.
var ErrParse = errors.New("decode: parse error")

// Result is the outcome of decoding one line.
type Result struct {
	Verdict   Verdict
	Dataset   galnet.Dataset
	Bundle    galnet.Bundle
	Timestamp string
	Err       error
}

// Line decodes one archive line into a Result. It never returns a non-nil
// error itself; parse failures are reported via Result.Verdict == Failed
// and Result.Err, so callers can count failures without a type switch.
func Line(line []byte) Result {
	var env galnet.Envelope
	if err := json.Unmarshal(line, &env); err != nil {
		return Result{Verdict: Failed, Err: fmt.Errorf("%w: envelope: %w", ErrParse, err)}
	}

	var meta galnet.MessageMeta
	if err := json.Unmarshal(env.Message, &meta); err != nil {
		return Result{Verdict: Failed, Err: fmt.Errorf("%w: message tag: %w", ErrParse, err)}
	}

	entry, ok := registry[meta.Event]
	if !ok {
		return Result{Verdict: Skipped}
	}

	bundle, err := entry.decode(env)
	if err != nil {
		return Result{Verdict: Failed, Dataset: entry.dataset, Err: fmt.Errorf("%w: %s: %w", ErrParse, entry.dataset.Name, err)}
	}

	if bundle.IsEmpty() {
		return Result{Verdict: Skipped, Dataset: entry.dataset, Timestamp: meta.Timestamp}
	}

	return Result{Verdict: Processed, Dataset: entry.dataset, Bundle: bundle, Timestamp: meta.Timestamp}
}

type registryEntry struct {
	dataset galnet.Dataset
	decode  func(galnet.Envelope) (galnet.Bundle, error)
}

var registry = map[string]registryEntry{
	galnet.DatasetFSDJump.Event: {galnet.DatasetFSDJump, func(env galnet.Envelope) (galnet.Bundle, error) {
		var e galnet.EventFSDJump
		if err := json.Unmarshal(env.Message, &e); err != nil {
			return galnet.Bundle{}, err
		}
		return normalize.FSDJump(env, e), nil
	}},
	galnet.DatasetScan.Event: {galnet.DatasetScan, func(env galnet.Envelope) (galnet.Bundle, error) {
		var e galnet.EventScan
		if err := json.Unmarshal(env.Message, &e); err != nil {
			return galnet.Bundle{}, err
		}
		return normalize.Scan(env, e), nil
	}},
	galnet.DatasetScanBaryCentre.Event: {galnet.DatasetScanBaryCentre, func(env galnet.Envelope) (galnet.Bundle, error) {
		var e galnet.EventScanBaryCentre
		if err := json.Unmarshal(env.Message, &e); err != nil {
			return galnet.Bundle{}, err
		}
		return normalize.ScanBaryCentre(env, e), nil
	}},
	galnet.DatasetDocked.Event: {galnet.DatasetDocked, func(env galnet.Envelope) (galnet.Bundle, error) {
		var e galnet.EventDocked
		if err := json.Unmarshal(env.Message, &e); err != nil {
			return galnet.Bundle{}, err
		}
		return normalize.Docked(env, e), nil
	}},
	galnet.DatasetApproachSettlement.Event: {galnet.DatasetApproachSettlement, func(env galnet.Envelope) (galnet.Bundle, error) {
		var e galnet.EventApproachSettlement
		if err := json.Unmarshal(env.Message, &e); err != nil {
			return galnet.Bundle{}, err
		}
		return normalize.ApproachSettlement(env, e), nil
	}},
	galnet.DatasetCarrierJump.Event: {galnet.DatasetCarrierJump, func(env galnet.Envelope) (galnet.Bundle, error) {
		var e galnet.EventCarrierJump
		if err := json.Unmarshal(env.Message, &e); err != nil {
			return galnet.Bundle{}, err
		}
		return normalize.CarrierJump(env, e), nil
	}},
	galnet.DatasetMarket.Event: {galnet.DatasetMarket, func(env galnet.Envelope) (galnet.Bundle, error) {
		var e galnet.EventMarket
		if err := json.Unmarshal(env.Message, &e); err != nil {
			return galnet.Bundle{}, err
		}
		return normalize.Market(env, e), nil
	}},
	galnet.DatasetOutfitting.Event: {galnet.DatasetOutfitting, func(env galnet.Envelope) (galnet.Bundle, error) {
		var e galnet.EventOutfitting
		if err := json.Unmarshal(env.Message, &e); err != nil {
			return galnet.Bundle{}, err
		}
		return normalize.Outfitting(env, e), nil
	}},
	galnet.DatasetShipyard.Event: {galnet.DatasetShipyard, func(env galnet.Envelope) (galnet.Bundle, error) {
		var e galnet.EventShipyard
		if err := json.Unmarshal(env.Message, &e); err != nil {
			return galnet.Bundle{}, err
		}
		return normalize.Shipyard(env, e), nil
	}},
	galnet.DatasetSAASignalsFound.Event: {galnet.DatasetSAASignalsFound, func(env galnet.Envelope) (galnet.Bundle, error) {
		var e galnet.EventSAASignalsFound
		if err := json.Unmarshal(env.Message, &e); err != nil {
			return galnet.Bundle{}, err
		}
		return normalize.SAASignalsFound(env, e), nil
	}},
	galnet.DatasetFSSBodySignals.Event: {galnet.DatasetFSSBodySignals, func(env galnet.Envelope) (galnet.Bundle, error) {
		var e galnet.EventFSSBodySignals
		if err := json.Unmarshal(env.Message, &e); err != nil {
			return galnet.Bundle{}, err
		}
		return normalize.FSSBodySignals(env, e), nil
	}},
	galnet.DatasetFSSSignalDiscovered.Event: {galnet.DatasetFSSSignalDiscovered, func(env galnet.Envelope) (galnet.Bundle, error) {
		var e galnet.EventFSSSignalDiscovered
		if err := json.Unmarshal(env.Message, &e); err != nil {
			return galnet.Bundle{}, err
		}
		return normalize.FSSSignalDiscovered(env, e), nil
	}},
}
