// Package pipeline drives one dataset/day archive file from fetch through
// decode, freshness gating, and upsert (C6). It is the only package that
// ties the other ingest packages together into a single run.
package pipeline

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/galnet-relay/relay/internal/galnet"
	"github.com/galnet-relay/relay/internal/ingest/archive"
	"github.com/galnet-relay/relay/internal/ingest/decode"
	"github.com/galnet-relay/relay/internal/ingest/freshness"
	"github.com/galnet-relay/relay/internal/storage"
)

// DefaultLockTimeout bounds how long a per-line transaction waits to
// acquire a row lock before giving up, so one contended entity cannot
// stall an entire run.
const DefaultLockTimeout = 3 * time.Second

// progressInterval is how often a running total is logged.
const progressInterval = 1000

// ErrRunFailed wraps a failure that aborted a run before it could finish
// reading its input (an archive fetch or stream error, or a cancelled
// context). It is distinct from per-line failures (decode, upsert, or a
// transaction that could not begin), which are counted in Report.Failure and
// never abort the run.
var ErrRunFailed = errors.New("pipeline: run failed")

// Report summarizes one dataset/day run, matching the shape returned to
// callers of the ingest trigger endpoints.
type Report struct {
	Dataset string `json:"dataset"`
	Day     string `json:"day"`
	Total   int    `json:"total"`
	Success int    `json:"success"`
	Skipped int    `json:"skipped"`
	Failure int    `json:"failure"`
}

// Status reports "ok" when nothing failed, "degraded" when some lines
// failed but the run completed, matching spec.md's run-report contract.
func (r Report) Status() string {
	if r.Failure > 0 {
		return "degraded"
	}
	return "ok"
}

// Driver wires together the archive reader, decoder, freshness gate, and
// upsert engine into one runnable pipeline.
type Driver struct {
	reader      *archive.Reader
	store       *storage.Store
	gate        *freshness.Gate
	conn        *storage.Connection
	log         *slog.Logger
	lockTimeout time.Duration
}

// NewDriver builds a Driver. A non-positive lockTimeout falls back to
// DefaultLockTimeout.
func NewDriver(reader *archive.Reader, store *storage.Store, gate *freshness.Gate, conn *storage.Connection, lockTimeout time.Duration, log *slog.Logger) *Driver {
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &Driver{reader: reader, store: store, gate: gate, conn: conn, lockTimeout: lockTimeout, log: log}
}

// Run fetches one dataset/day archive file and ingests every line it
// contains, returning a Report regardless of how many individual lines
// failed. It returns a non-nil error only when the run itself could not
// complete, e.g. the archive file could not be fetched at all.
func (d *Driver) Run(ctx context.Context, ds galnet.Dataset, day string) (Report, error) {
	report := Report{Dataset: ds.Name, Day: day}

	err := d.reader.Lines(ctx, ds, day, func(line []byte) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		report.Total++
		d.ingestLine(ctx, ds, line, &report)

		if report.Total%progressInterval == 0 {
			d.log.Info("pipeline: progress",
				slog.String("dataset", ds.Name),
				slog.String("day", day),
				slog.Int("total", report.Total),
				slog.Int("success", report.Success),
				slog.Int("skipped", report.Skipped),
				slog.Int("failure", report.Failure),
			)
		}
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("%w: %s %s: %w", ErrRunFailed, ds.Name, day, err)
	}

	d.log.Info("pipeline: run complete",
		slog.String("dataset", ds.Name),
		slog.String("day", day),
		slog.String("status", report.Status()),
		slog.Int("total", report.Total),
		slog.Int("success", report.Success),
		slog.Int("skipped", report.Skipped),
		slog.Int("failure", report.Failure),
	)
	return report, nil
}

// ingestLine decodes and stores one line, updating report's counters. It
// never returns an error: every failure is a counted outcome, not a
// reason to abort the run.
func (d *Driver) ingestLine(ctx context.Context, ds galnet.Dataset, line []byte, report *Report) {
	result := decode.Line(line)

	switch result.Verdict {
	case decode.Skipped:
		report.Skipped++
		return
	case decode.Failed:
		report.Failure++
		d.log.Warn("pipeline: decode failed", slog.String("dataset", ds.Name), slog.Any("err", result.Err))
		return
	}

	writes, err := rowWrites(d.store, result.Bundle)
	if err != nil {
		report.Failure++
		d.log.Warn("pipeline: lock key derivation failed", slog.String("dataset", ds.Name), slog.Any("err", err))
		return
	}

	applied, err := d.applyBundle(ctx, ds, writes, result.Timestamp)
	if err != nil {
		report.Failure++
		d.log.Warn("pipeline: bundle write failed", slog.String("dataset", ds.Name), slog.Any("err", err))
		return
	}
	if !applied {
		report.Skipped++
		return
	}

	report.Success++
}

// applyBundle opens one transaction for the whole bundle and applies it in
// two phases, per the transaction shape: first every row's freshness guard
// is acquired, in sorted lock-acquisition order; if any guard rejects its
// row, the whole transaction is rolled back and the bundle counts as
// skipped rather than partially written. Only once every guard has passed
// does the second phase run the Upsert Engine for every row and commit.
// Bundle atomicity is therefore all-rows-or-nothing, not per-row.
func (d *Driver) applyBundle(ctx context.Context, ds galnet.Dataset, writes []rowWrite, timestamp string) (bool, error) {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%s'", d.lockTimeout.String())); err != nil {
		return false, fmt.Errorf("set lock_timeout: %w", err)
	}

	for _, w := range writes {
		ok, err := d.gate.Acquire(ctx, tx, w.key.EntityKind, w.key.PKJSON, ds.Event, timestamp)
		if err != nil {
			return false, fmt.Errorf("freshness gate: %s: %w", w.key, err)
		}
		if !ok {
			// A rollback via the deferred tx.Rollback() discards every guard
			// acquired so far in this loop along with it.
			return false, nil
		}
	}

	for _, w := range writes {
		if err := w.upsert(ctx, tx); err != nil {
			return false, fmt.Errorf("upsert: %s: %w", w.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return true, nil
}

// rowWrite pairs a lock key with the upsert call that writes the row it
// identifies.
type rowWrite struct {
	key    galnet.LockKey
	upsert func(ctx context.Context, tx *sql.Tx) error
}

// rowWrites flattens a Bundle into one rowWrite per row, sorted into the
// same canonical lock-acquisition order as Bundle.LockKeys.
func rowWrites(store *storage.Store, b galnet.Bundle) ([]rowWrite, error) {
	var writes []rowWrite

	for _, row := range b.Systems {
		row := row
		key, err := galnet.SystemLockKey(row.SystemAddress)
		if err != nil {
			return nil, err
		}
		writes = append(writes, rowWrite{key, func(ctx context.Context, tx *sql.Tx) error {
			return store.UpsertSystem(ctx, tx, row)
		}})
	}
	for _, row := range b.Bodies {
		row := row
		key, err := galnet.BodyLockKey(row.SystemAddress, row.BodyID)
		if err != nil {
			return nil, err
		}
		writes = append(writes, rowWrite{key, func(ctx context.Context, tx *sql.Tx) error {
			return store.UpsertBody(ctx, tx, row)
		}})
	}
	for _, row := range b.Stations {
		row := row
		key, err := galnet.StationLockKey(row.MarketID)
		if err != nil {
			return nil, err
		}
		writes = append(writes, rowWrite{key, func(ctx context.Context, tx *sql.Tx) error {
			return store.UpsertStation(ctx, tx, row)
		}})
	}
	for _, row := range b.Landmarks {
		row := row
		key, err := galnet.LandmarkLockKey(row.EntryID, row.AuxiliaryID)
		if err != nil {
			return nil, err
		}
		writes = append(writes, rowWrite{key, func(ctx context.Context, tx *sql.Tx) error {
			return store.UpsertLandmark(ctx, tx, row)
		}})
	}
	for _, row := range b.Markets {
		row := row
		key, err := galnet.MarketLockKey(row.MarketID)
		if err != nil {
			return nil, err
		}
		writes = append(writes, rowWrite{key, func(ctx context.Context, tx *sql.Tx) error {
			return store.UpsertMarket(ctx, tx, row)
		}})
	}
	for _, row := range b.Shipyards {
		row := row
		key, err := galnet.ShipyardLockKey(row.MarketID)
		if err != nil {
			return nil, err
		}
		writes = append(writes, rowWrite{key, func(ctx context.Context, tx *sql.Tx) error {
			return store.UpsertShipyard(ctx, tx, row)
		}})
	}
	for _, row := range b.Outfittings {
		row := row
		key, err := galnet.OutfittingLockKey(row.MarketID)
		if err != nil {
			return nil, err
		}
		writes = append(writes, rowWrite{key, func(ctx context.Context, tx *sql.Tx) error {
			return store.UpsertOutfitting(ctx, tx, row)
		}})
	}
	for _, row := range b.Signals {
		row := row
		key, err := galnet.SignalLockKey(row.SystemAddress, row.BodyID, row.Type, row.SignalName)
		if err != nil {
			return nil, err
		}
		writes = append(writes, rowWrite{key, func(ctx context.Context, tx *sql.Tx) error {
			return store.UpsertSignal(ctx, tx, row)
		}})
	}

	sortRowWrites(writes)
	return writes, nil
}

// sortRowWrites orders writes by lock key, matching galnet.SortLockKeys'
// acquisition order, without deduplicating: unlike Bundle.LockKeys, two
// distinct rows that happen to share a key (which should not occur in a
// well-formed bundle) must both still be written.
func sortRowWrites(writes []rowWrite) {
	for i := 1; i < len(writes); i++ {
		for j := i; j > 0 && writes[j].key.Less(writes[j-1].key); j-- {
			writes[j], writes[j-1] = writes[j-1], writes[j]
		}
	}
}
