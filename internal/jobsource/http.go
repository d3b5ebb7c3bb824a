package jobsource

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/postpilot/postpilot/internal/fetch"
	"github.com/postpilot/postpilot/internal/jobboard"
	"github.com/postpilot/postpilot/internal/schemas"
)

// HTTPSource loads a JSON job feed from a URL.
type HTTPSource struct {
	URL     string
	Options *fetch.Options
}

// NewHTTPSource returns a source for the feed at url.
func NewHTTPSource(url string, opts *fetch.Options) *HTTPSource {
	return &HTTPSource{URL: url, Options: opts}
}

// ListJobs implements Source.
func (s *HTTPSource) ListJobs(ctx context.Context) ([]jobboard.JobPosting, error) {
	feed, err := s.LoadFeed(ctx)
	if err != nil {
		return nil, err
	}
	return feed.Jobs, nil
}

// LoadFeed fetches, validates and converts the remote feed.
func (s *HTTPSource) LoadFeed(ctx context.Context) (*Feed, error) {
	opts := fetch.DefaultOptions()
	if s.Options != nil {
		o := *s.Options
		opts = &o
	}
	if opts.Headers == nil {
		opts.Headers = map[string]string{"Accept": "application/json"}
	}

	res, err := fetch.Get(ctx, s.URL, opts)
	if err != nil {
		return nil, err
	}
	return ParseFeed(res.Body)
}

type feedDocument struct {
	Jobs []feedJob `json:"jobs"`
}

type feedJob struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Company         string           `json:"company"`
	Location        string           `json:"location"`
	Salary          string           `json:"salary"`
	PostedAt        time.Time        `json:"posted_at"`
	MatchScore      int              `json:"match_score"`
	MatchLevel      string           `json:"match_level"`
	Type            string           `json:"type"`
	Remote          bool             `json:"remote"`
	ExperienceLevel string           `json:"experience_level"`
	IsPremium       bool             `json:"is_premium"`
	WhyLowScore     []string         `json:"why_low_score"`
	Description     *feedDescription `json:"description"`
}

type feedDescription struct {
	jobboard.JobDescription
	OverviewHTML string `json:"overview_html"`
}

// ParseFeed validates data against the job feed schema and converts it.
// A missing match_level is derived from the score; an HTML overview is
// reduced to text when no plain overview is given.
func ParseFeed(data []byte) (*Feed, error) {
	if err := schemas.Validate(schemas.JobFeed, data); err != nil {
		return nil, fmt.Errorf("invalid job feed: %w", err)
	}

	var doc feedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode job feed: %w", err)
	}

	feed := &Feed{
		Jobs:    make([]jobboard.JobPosting, 0, len(doc.Jobs)),
		Details: make(jobboard.DetailCatalog),
	}
	seen := make(map[string]struct{}, len(doc.Jobs))

	for _, fj := range doc.Jobs {
		if _, dup := seen[fj.ID]; dup {
			return nil, fmt.Errorf("invalid job feed: duplicate id %q", fj.ID)
		}
		seen[fj.ID] = struct{}{}

		job, err := fj.posting()
		if err != nil {
			return nil, fmt.Errorf("invalid job feed: job %s: %w", fj.ID, err)
		}
		feed.Jobs = append(feed.Jobs, job)

		if fj.Description == nil {
			continue
		}
		desc, err := fj.Description.toDescription()
		if err != nil {
			return nil, fmt.Errorf("job %s: %w", fj.ID, err)
		}
		feed.Details[fj.ID] = desc
	}
	return feed, nil
}

func (fj feedJob) posting() (jobboard.JobPosting, error) {
	jobType, err := jobboard.ParseJobType(fj.Type)
	if err != nil {
		return jobboard.JobPosting{}, err
	}
	level, err := jobboard.ParseExperienceLevel(fj.ExperienceLevel)
	if err != nil {
		return jobboard.JobPosting{}, err
	}

	match := jobboard.MatchLevelForScore(fj.MatchScore)
	if fj.MatchLevel != "" {
		if match, err = jobboard.ParseMatchLevel(fj.MatchLevel); err != nil {
			return jobboard.JobPosting{}, err
		}
	}

	return jobboard.JobPosting{
		ID:              fj.ID,
		Title:           fj.Title,
		Company:         fj.Company,
		Location:        fj.Location,
		Salary:          fj.Salary,
		PostedAt:        fj.PostedAt,
		MatchScore:      fj.MatchScore,
		MatchLevel:      match,
		Type:            jobType,
		Remote:          fj.Remote,
		ExperienceLevel: level,
		IsPremium:       fj.IsPremium,
		WhyLowScore:     fj.WhyLowScore,
	}, nil
}

func (fd feedDescription) toDescription() (jobboard.JobDescription, error) {
	desc := fd.JobDescription
	if desc.Overview == "" && fd.OverviewHTML != "" {
		text, err := fetch.ExtractMainText(fd.OverviewHTML, fetch.JobPostingSelectors())
		if err != nil {
			return jobboard.JobDescription{}, err
		}
		desc.Overview = text
	}
	return desc, nil
}
