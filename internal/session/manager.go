package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/jobboard"
)

// JobProvider supplies the current postings a session is seeded from.
type JobProvider interface {
	Jobs() []jobboard.JobPosting
}

// Manager rebuilds a board State per request from the current postings and
// the stored snapshot. Calls for the same key are serialized.
type Manager struct {
	store  Store
	jobs   JobProvider
	logger *zap.Logger

	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// NewManager creates a Manager that seeds every board from jobs. A nil
// logger discards output.
func NewManager(store Store, jobs JobProvider, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		store:  store,
		jobs:   jobs,
		logger: logger,
		locks:  make(map[string]*keyLock),
	}
}

// With runs fn on the board for key and saves the result when fn succeeds.
// An empty key gets a throwaway board that is never stored.
func (m *Manager) With(ctx context.Context, key string, fn func(*jobboard.State) error) error {
	state := jobboard.NewState(m.jobs.Jobs())
	if key == "" {
		return fn(state)
	}

	unlock := m.lock(key)
	defer unlock()

	snap, err := m.store.Load(ctx, key)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		m.logger.Warn("session load failed", zap.String("session", key), zap.Error(err))
		return err
	default:
		state.Restore(*snap)
	}

	if err := fn(state); err != nil {
		return err
	}
	if err := m.store.Save(ctx, key, state.Snapshot()); err != nil {
		m.logger.Warn("session save failed", zap.String("session", key), zap.Error(err))
		return err
	}
	return nil
}

// Reset forgets the stored board for key.
func (m *Manager) Reset(ctx context.Context, key string) error {
	return m.store.Delete(ctx, key)
}

func (m *Manager) lock(key string) func() {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &keyLock{}
		m.locks[key] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, key)
		}
		m.mu.Unlock()
	}
}
