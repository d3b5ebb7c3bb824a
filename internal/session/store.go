// Package session persists per-visitor job board state (filter, bookmarks,
// expanded panels) between requests.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/postpilot/postpilot/internal/jobboard"
)

var (
	ErrNotFound   = errors.New("session not found")
	ErrClosed     = errors.New("session store is closed")
	ErrInvalidKey = errors.New("invalid session key")
)

// Store saves board snapshots by session key.
type Store interface {
	Load(ctx context.Context, key string) (*jobboard.Snapshot, error)

	Save(ctx context.Context, key string, snap jobboard.Snapshot) error

	Delete(ctx context.Context, key string) error

	Close() error
}

type Options struct {
	// TTL is how long an idle session is kept.
	TTL time.Duration

	// CleanupInterval is how often MemoryStore evicts idle sessions.
	CleanupInterval time.Duration

	// KeyPrefix namespaces keys in Redis.
	KeyPrefix string
}

func DefaultOptions() Options {
	return Options{
		TTL:             2 * time.Hour,
		CleanupInterval: 5 * time.Minute,
		KeyPrefix:       "postpilot:session:",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TTL <= 0 {
		o.TTL = d.TTL
	}
	if o.CleanupInterval <= 0 {
		o.CleanupInterval = d.CleanupInterval
	}
	if o.KeyPrefix == "" {
		o.KeyPrefix = d.KeyPrefix
	}
	return o
}
