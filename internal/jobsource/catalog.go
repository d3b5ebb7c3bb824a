package jobsource

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/jobboard"
)

// Catalog holds the current postings and enrichment. It is safe for
// concurrent use; Refresh swaps the whole feed at once.
type Catalog struct {
	source Source
	logger *zap.Logger

	mu        sync.RWMutex
	feed      *Feed
	index     map[string]int
	updatedAt time.Time
}

// NewCatalog returns an empty catalog that loads from source on Refresh.
func NewCatalog(source Source, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{
		source: source,
		logger: logger,
		feed:   &Feed{Details: jobboard.DetailCatalog{}},
		index:  map[string]int{},
	}
}

// Refresh reloads from the source. On failure the previous feed is kept.
func (c *Catalog) Refresh(ctx context.Context) error {
	start := time.Now()
	feed, err := loadFeed(ctx, c.source)
	if err != nil {
		c.logger.Error("job catalog refresh failed", zap.Error(err))
		return fmt.Errorf("failed to refresh job catalog: %w", err)
	}
	if feed.Details == nil {
		feed.Details = jobboard.DetailCatalog{}
	}

	index := make(map[string]int, len(feed.Jobs))
	for i, j := range feed.Jobs {
		index[j.ID] = i
	}

	c.mu.Lock()
	c.feed = feed
	c.index = index
	c.updatedAt = time.Now()
	c.mu.Unlock()

	c.logger.Info("job catalog refreshed",
		zap.Int("jobs", len(feed.Jobs)),
		zap.Int("details", len(feed.Details)),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// Jobs returns the current postings. Callers must not modify the result;
// jobboard.NewState copies it.
func (c *Catalog) Jobs() []jobboard.JobPosting {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.feed.Jobs
}

// Job returns the posting with id.
func (c *Catalog) Job(id string) (jobboard.JobPosting, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		return jobboard.JobPosting{}, false
	}
	return c.feed.Jobs[i], true
}

// Detail returns the detail projection for id.
func (c *Catalog) Detail(id string) jobboard.Detail {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.feed.Details.Lookup(id)
}

// UpdatedAt is the time of the last successful refresh.
func (c *Catalog) UpdatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updatedAt
}
