package freshness

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultGuard is the slack added to the persisted lock timestamp before a
// newer event is allowed to proceed. It absorbs clock skew and
// near-simultaneous writers racing on the same entity without forcing a
// strict total order between them.
const DefaultGuard = 10 * time.Second

// sentinelEvent is the fixed "event" value of the row each (entityKind,
// primaryKey) pair uses purely to serialize access via a row lock; its own
// timestamp column is unused.
const sentinelEvent = "__lock__"
const sentinelTimestamp = "1970-01-01T00:00:00Z"

// ErrLockQueryFailed wraps a failure acquiring or reading the ingestion
// lock table itself (not a staleness rejection, a genuine database error).
var ErrLockQueryFailed = errors.New("freshness: lock query failed")

// Gate combines the in-memory Cache with the persistent ingestion_lock
// table to decide whether one (entity, event) update may proceed.
type Gate struct {
	cache *Cache
	guard time.Duration
	log   *slog.Logger
}

// NewGate builds a Gate backed by cache, rejecting updates that do not
// clear the lock timestamp by at least guard. A non-positive guard falls
// back to DefaultGuard.
func NewGate(cache *Cache, guard time.Duration, log *slog.Logger) *Gate {
	if guard <= 0 {
		guard = DefaultGuard
	}
	if log == nil {
		log = slog.Default()
	}
	return &Gate{cache: cache, guard: guard, log: log}
}

// Acquire decides whether the event identified by (entityKind, primaryKey,
// event, timestamp) may proceed within tx. It first consults the in-memory
// cache; a clearly stale event returns false without touching the
// database. Otherwise it locks the entity's sentinel row (serializing all
// events for that entity kind and primary key across event kinds) and
// conditionally advances the persisted timestamp, returning false if a
// concurrent writer already advanced it past this event within the guard
// window. The caller must roll back tx when Acquire returns false.
func (g *Gate) Acquire(ctx context.Context, tx *sql.Tx, entityKind, primaryKey, event, timestamp string) (bool, error) {
	cacheKey := entityKind + "|" + primaryKey + "|" + event
	if !g.cache.IsNewerAndUpdate(cacheKey, timestamp) {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO ingestion_lock (model_name, primary_key, event, timestamp)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (model_name, primary_key, event) DO NOTHING
	`, entityKind, primaryKey, sentinelEvent, sentinelTimestamp); err != nil {
		g.log.Warn("freshness: sentinel row insert failed", slog.String("entity_kind", entityKind), slog.Any("err", err))
	}

	if _, err := tx.ExecContext(ctx, `
		SELECT 1 FROM ingestion_lock
		WHERE model_name = $1 AND primary_key = $2 AND event = $3
		FOR UPDATE
	`, entityKind, primaryKey, sentinelEvent); err != nil {
		return false, fmt.Errorf("%w: locking sentinel row: %w", ErrLockQueryFailed, err)
	}

	var applied bool
	err := tx.QueryRowContext(ctx, `
		WITH upsert AS (
			INSERT INTO ingestion_lock (model_name, primary_key, event, timestamp)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (model_name, primary_key, event) DO UPDATE
				SET timestamp = EXCLUDED.timestamp
				WHERE EXCLUDED.timestamp::timestamptz > ingestion_lock.timestamp::timestamptz + $5::interval
			RETURNING (xmax = 0) AS inserted, (xmax <> 0) AS updated
		)
		SELECT COALESCE((SELECT TRUE FROM upsert), FALSE) AS applied
	`, entityKind, primaryKey, event, timestamp, g.guard.String()).Scan(&applied)
	if err != nil {
		return false, fmt.Errorf("%w: conditional upsert: %w", ErrLockQueryFailed, err)
	}

	if !applied {
		return false, nil
	}

	return true, nil
}
