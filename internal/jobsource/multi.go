package jobsource

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/postpilot/postpilot/internal/jobboard"
)

// Multi loads several sources concurrently and merges them in order. When two
// sources carry the same job id, the earlier source wins, and so does its
// description.
type Multi struct {
	Sources []Source
}

// NewMulti returns a source that merges sources.
func NewMulti(sources ...Source) *Multi {
	return &Multi{Sources: sources}
}

// ListJobs implements Source.
func (m *Multi) ListJobs(ctx context.Context) ([]jobboard.JobPosting, error) {
	feed, err := m.LoadFeed(ctx)
	if err != nil {
		return nil, err
	}
	return feed.Jobs, nil
}

// LoadFeed implements FeedSource. Any source failing fails the whole load.
func (m *Multi) LoadFeed(ctx context.Context) (*Feed, error) {
	feeds := make([]*Feed, len(m.Sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range m.Sources {
		g.Go(func() error {
			feed, err := loadFeed(gctx, src)
			if err != nil {
				return err
			}
			feeds[i] = feed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &Feed{Details: make(jobboard.DetailCatalog)}
	seen := make(map[string]struct{})
	for _, feed := range feeds {
		for _, j := range feed.Jobs {
			if _, dup := seen[j.ID]; dup {
				continue
			}
			seen[j.ID] = struct{}{}
			merged.Jobs = append(merged.Jobs, j)
			if d, ok := feed.Details[j.ID]; ok {
				merged.Details[j.ID] = d
			}
		}
	}
	return merged, nil
}
