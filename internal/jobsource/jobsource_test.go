package jobsource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postpilot/postpilot/internal/db"
	"github.com/postpilot/postpilot/internal/jobboard"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

const sampleFeed = `{
  "jobs": [
    {
      "id": "a1",
      "title": "Backend Engineer",
      "company": "Acme",
      "location": "Remote",
      "posted_at": "2026-03-10T08:00:00Z",
      "match_score": 82,
      "type": "Full-time",
      "remote": true,
      "experience_level": "Mid",
      "description": {
        "overview_html": "<div class=\"job-description\"><p>Build APIs.</p><p>Ship often.</p></div>",
        "requirements": ["Go"]
      }
    },
    {
      "id": "a2",
      "title": "Support Analyst",
      "company": "Acme",
      "posted_at": "2026-03-09T08:00:00Z",
      "match_score": 90,
      "match_level": "low",
      "type": "Contract",
      "experience_level": "Entry",
      "why_low_score": ["Different field"]
    }
  ]
}`

func ids(jobs []jobboard.JobPosting) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestParseFeed(t *testing.T) {
	feed, err := ParseFeed([]byte(sampleFeed))
	require.NoError(t, err)
	require.Len(t, feed.Jobs, 2)

	a1 := feed.Jobs[0]
	assert.Equal(t, jobboard.MatchStrong, a1.MatchLevel, "missing level is derived from the score")
	assert.Equal(t, jobboard.FullTime, a1.Type)
	assert.True(t, a1.PostedAt.Equal(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)))

	a2 := feed.Jobs[1]
	assert.Equal(t, jobboard.MatchLow, a2.MatchLevel, "authored level is kept as is")
	assert.Equal(t, []string{"Different field"}, a2.WhyLowScore)

	d := feed.Details.Lookup("a1")
	require.True(t, d.Available)
	assert.Equal(t, "Build APIs.\nShip often.", d.Description.Overview)
	assert.Equal(t, []string{"Go"}, d.Description.Requirements)

	assert.False(t, feed.Details.Lookup("a2").Available)
}

func TestParseFeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `nope`},
		{"missing jobs", `{}`},
		{"bad enum", `{"jobs":[{"id":"x","title":"t","company":"c","posted_at":"2026-03-10T08:00:00Z","match_score":1,"type":"Internship","experience_level":"Mid"}]}`},
		{"score out of range", `{"jobs":[{"id":"x","title":"t","company":"c","posted_at":"2026-03-10T08:00:00Z","match_score":101,"type":"Contract","experience_level":"Mid"}]}`},
		{"duplicate id", `{"jobs":[
			{"id":"x","title":"t","company":"c","posted_at":"2026-03-10T08:00:00Z","match_score":1,"type":"Contract","experience_level":"Mid"},
			{"id":"x","title":"t","company":"c","posted_at":"2026-03-10T08:00:00Z","match_score":1,"type":"Contract","experience_level":"Mid"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFeed([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	jobs, err := NewHTTPSource(srv.URL, nil).ListJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, ids(jobs))
}

func TestHTTPSource_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, nil).LoadFeed(context.Background())
	assert.Error(t, err)
}

func TestStaticSource_ReturnsCopies(t *testing.T) {
	src := NewStaticSource(Fixture(testNow))

	first, err := src.LoadFeed(context.Background())
	require.NoError(t, err)
	first.Jobs[0].Title = "mutated"
	delete(first.Details, "1")

	second, err := src.LoadFeed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Senior Frontend Developer", second.Jobs[0].Title)
	assert.True(t, second.Details.Lookup("1").Available)
}

type listOnlySource struct {
	jobs []jobboard.JobPosting
	err  error
}

func (s listOnlySource) ListJobs(context.Context) ([]jobboard.JobPosting, error) {
	return s.jobs, s.err
}

func TestMulti_FirstSourceWins(t *testing.T) {
	primary := NewStaticSource(&Feed{
		Jobs:    []jobboard.JobPosting{{ID: "1", Title: "primary"}, {ID: "2", Title: "two"}},
		Details: jobboard.DetailCatalog{"1": {Overview: "primary detail"}},
	})
	secondary := listOnlySource{jobs: []jobboard.JobPosting{{ID: "1", Title: "secondary"}, {ID: "3", Title: "three"}}}

	feed, err := NewMulti(primary, secondary).LoadFeed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3"}, ids(feed.Jobs))
	assert.Equal(t, "primary", feed.Jobs[0].Title)
	assert.Equal(t, "primary detail", feed.Details["1"].Overview)
	assert.False(t, feed.Details.Lookup("3").Available)
}

func TestMulti_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewMulti(NewStaticSource(Fixture(testNow)), listOnlySource{err: boom}).ListJobs(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestCatalog_Refresh(t *testing.T) {
	c := NewCatalog(NewStaticSource(Fixture(testNow)), nil)
	assert.Empty(t, c.Jobs())
	assert.True(t, c.UpdatedAt().IsZero())

	require.NoError(t, c.Refresh(context.Background()))
	assert.Len(t, c.Jobs(), 6)
	assert.False(t, c.UpdatedAt().IsZero())

	j, ok := c.Job("6")
	require.True(t, ok)
	assert.True(t, j.IsPremium)

	assert.True(t, c.Detail("1").Available)
	assert.Equal(t, jobboard.DescriptionUnavailable, c.Detail("4").Message)

	_, ok = c.Job("missing")
	assert.False(t, ok)
}

func TestCatalog_RefreshFailureKeepsPrevious(t *testing.T) {
	src := &switchSource{feed: Fixture(testNow)}
	c := NewCatalog(src, nil)
	require.NoError(t, c.Refresh(context.Background()))

	src.err = errors.New("feed down")
	assert.Error(t, c.Refresh(context.Background()))
	assert.Len(t, c.Jobs(), 6)
}

type switchSource struct {
	feed *Feed
	err  error
}

func (s *switchSource) ListJobs(ctx context.Context) ([]jobboard.JobPosting, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.feed.Jobs, nil
}

type fakeStore struct {
	postings     map[string]db.JobPosting
	descriptions map[string]db.JobDescription
}

func newFakeStore() *fakeStore {
	return &fakeStore{postings: map[string]db.JobPosting{}, descriptions: map[string]db.JobDescription{}}
}

func (f *fakeStore) UpsertJobPosting(_ context.Context, p *db.JobPosting) error {
	f.postings[p.ID] = *p
	return nil
}

func (f *fakeStore) UpsertJobDescription(_ context.Context, d *db.JobDescription) error {
	f.descriptions[d.JobID] = *d
	return nil
}

func (f *fakeStore) ListJobPostings(_ context.Context, _ db.JobPostingFilters) ([]db.JobPosting, error) {
	out := make([]db.JobPosting, 0, len(f.postings))
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "bad"} {
		if p, ok := f.postings[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) ListJobDescriptions(context.Context) (map[string]db.JobDescription, error) {
	return f.descriptions, nil
}

func TestSeedAndPostgresSource_RoundTrip(t *testing.T) {
	store := newFakeStore()
	fixture := Fixture(testNow)
	require.NoError(t, Seed(context.Background(), store, fixture))
	assert.Len(t, store.postings, 6)
	assert.Len(t, store.descriptions, 4)

	store.postings["bad"] = db.JobPosting{ID: "bad", JobType: "Internship", ExperienceLevel: "Mid"}

	feed, err := NewPostgresSource(store, nil).LoadFeed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(feed.Jobs), "invalid rows are skipped")

	want := fixture.Jobs[3]
	got := feed.Jobs[3]
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.WhyLowScore, got.WhyLowScore)
	assert.Equal(t, want.MatchLevel, got.MatchLevel)

	assert.Equal(t, fixture.Details["1"], feed.Details["1"])
}
