package session

import (
	"context"
	"sync"
	"time"

	"github.com/postpilot/postpilot/internal/jobboard"
)

type memoryEntry struct {
	snap      jobboard.Snapshot
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. A background ticker evicts
// sessions idle for longer than the TTL; Load also treats them as missing.
type MemoryStore struct {
	opts Options
	now  func() time.Time

	mu      sync.Mutex
	entries map[string]memoryEntry
	closed  bool
	stop    chan struct{}
	done    chan struct{}
}

// NewMemoryStore starts a store with its cleanup loop.
func NewMemoryStore(opts Options) *MemoryStore {
	s := &MemoryStore{
		opts:    opts.withDefaults(),
		now:     time.Now,
		entries: make(map[string]memoryEntry),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

func (s *MemoryStore) Load(_ context.Context, key string) (*jobboard.Snapshot, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	e, ok := s.entries[key]
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, ErrNotFound
	}
	snap := cloneSnapshot(e.snap)
	return &snap, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, snap jobboard.Snapshot) error {
	if key == "" {
		return ErrInvalidKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	s.entries[key] = memoryEntry{
		snap:      cloneSnapshot(snap),
		expiresAt: s.now().Add(s.opts.TTL),
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	delete(s.entries, key)
	return nil
}

// Close stops the cleanup loop and drops all sessions.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.entries = nil
	s.mu.Unlock()

	close(s.stop)
	<-s.done
	return nil
}

// Len returns the number of stored sessions, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) cleanupLoop() {
	defer close(s.done)
	ticker := time.NewTicker(s.opts.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *MemoryStore) evictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	evicted := 0
	for key, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, key)
			evicted++
		}
	}
	return evicted
}

func cloneSnapshot(snap jobboard.Snapshot) jobboard.Snapshot {
	snap.Bookmarks = append([]string(nil), snap.Bookmarks...)
	snap.Expanded = append([]string(nil), snap.Expanded...)
	return snap
}
