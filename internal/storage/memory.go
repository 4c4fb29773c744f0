package storage

import (
	"context"

	"github.com/achieversos/achievers/internal/habit"
)

// MemoryStore keeps the state in memory. It backs controller tests and
// doubles as the fallback when no database can be opened.
type MemoryStore struct {
	state  habit.State
	loaded bool
	// SaveErr, when set, is returned from every Save. Test seam for
	// the best-effort persistence path.
	SaveErr error
	Saves   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) habit.State {
	if !m.loaded {
		return habit.NewState()
	}
	return m.state.Clone()
}

func (m *MemoryStore) Save(ctx context.Context, state habit.State) error {
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.state = state.Clone()
	m.loaded = true
	return nil
}

func (m *MemoryStore) Close() error { return nil }
