package storage

import (
	"context"

	"github.com/achieversos/achievers/internal/habit"
)

// stateKey names the single persisted record. A schema change means a
// new key and a fresh start; the old record is abandoned, not
// migrated.
const stateKey = "achievers_state_v2"

// Store mirrors the in-memory event log. Load degrades to the empty
// state on anything unreadable; Save is best-effort and the caller
// keeps the in-memory copy authoritative either way.
type Store interface {
	Load(ctx context.Context) habit.State
	Save(ctx context.Context, state habit.State) error
	Close() error
}
