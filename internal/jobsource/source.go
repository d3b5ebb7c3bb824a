// Package jobsource loads job postings and their enrichment from the fixture,
// a remote JSON feed or Postgres, and holds the current catalog.
package jobsource

import (
	"context"
	"time"

	"github.com/postpilot/postpilot/internal/jobboard"
)

// Source is the job-listing API: it returns records matching JobPosting.
type Source interface {
	ListJobs(ctx context.Context) ([]jobboard.JobPosting, error)
}

// FeedSource is a Source that also carries per-job enrichment.
type FeedSource interface {
	Source
	LoadFeed(ctx context.Context) (*Feed, error)
}

// Feed is one load of a source: postings plus their descriptions.
type Feed struct {
	Jobs    []jobboard.JobPosting
	Details jobboard.DetailCatalog
}

// Fixture returns the sample board with postings dated relative to now.
func Fixture(now time.Time) *Feed {
	return &Feed{
		Jobs:    jobboard.SampleJobs(now),
		Details: jobboard.SampleDetails(),
	}
}

// StaticSource serves a fixed feed.
type StaticSource struct {
	feed *Feed
}

// NewStaticSource returns a source that always serves feed.
func NewStaticSource(feed *Feed) *StaticSource {
	return &StaticSource{feed: feed}
}

// ListJobs implements Source.
func (s *StaticSource) ListJobs(ctx context.Context) ([]jobboard.JobPosting, error) {
	feed, err := s.LoadFeed(ctx)
	if err != nil {
		return nil, err
	}
	return feed.Jobs, nil
}

// LoadFeed implements FeedSource. The returned feed is a copy.
func (s *StaticSource) LoadFeed(ctx context.Context) (*Feed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := &Feed{
		Jobs:    make([]jobboard.JobPosting, len(s.feed.Jobs)),
		Details: make(jobboard.DetailCatalog, len(s.feed.Details)),
	}
	copy(out.Jobs, s.feed.Jobs)
	for id, d := range s.feed.Details {
		out.Details[id] = d
	}
	return out, nil
}

// loadFeed uses LoadFeed when src has one and falls back to ListJobs with no
// enrichment.
func loadFeed(ctx context.Context, src Source) (*Feed, error) {
	if fs, ok := src.(FeedSource); ok {
		return fs.LoadFeed(ctx)
	}
	jobs, err := src.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	return &Feed{Jobs: jobs, Details: jobboard.DetailCatalog{}}, nil
}
