package jobboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func ids(jobs []JobPosting) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func TestNewState_Defaults(t *testing.T) {
	s := NewState(SampleJobs(testNow))

	assert.Equal(t, DefaultFilter(), s.Filter())
	assert.Empty(t, s.Expanded())
	assert.Len(t, s.Jobs(), 6)
}

func TestNewState_CopiesInput(t *testing.T) {
	jobs := SampleJobs(testNow)
	s := NewState(jobs)

	jobs[0].Title = "mutated"
	jobs[3].WhyLowScore[0] = "mutated"

	j, ok := s.Job("1")
	require.True(t, ok)
	assert.Equal(t, "Senior Frontend Developer", j.Title)

	j, ok = s.Job("4")
	require.True(t, ok)
	assert.NotEqual(t, "mutated", j.WhyLowScore[0])
}

func TestDerivedView_FullTimeExcludesNone(t *testing.T) {
	s := NewState(SampleJobs(testNow))
	s.SetFilter(FilterPatch{JobType: ptr(FullTime)})

	assert.ElementsMatch(t, []string{"1", "2", "3", "4", "5"}, ids(s.DerivedView()))
}

func TestDerivedView_RemoteOnly(t *testing.T) {
	s := NewState(SampleJobs(testNow))
	s.SetFilter(FilterPatch{RemoteOnly: ptr(true)})

	assert.ElementsMatch(t, []string{"1", "2", "5"}, ids(s.DerivedView()))
	for _, j := range s.DerivedView() {
		assert.True(t, j.Remote)
	}
}

func TestDerivedView_FilterCombinations(t *testing.T) {
	jobs := []JobPosting{
		{ID: "a", Type: FullTime, ExperienceLevel: Senior, Remote: true, MatchScore: 10},
		{ID: "b", Type: PartTime, ExperienceLevel: Entry, Remote: false, MatchScore: 20},
		{ID: "c", Type: Contract, ExperienceLevel: Mid, Remote: true, MatchScore: 30},
		{ID: "d", Type: Contract, ExperienceLevel: Senior, Remote: false, MatchScore: 40},
	}

	jobTypes := []JobType{JobTypeAll, FullTime, PartTime, Contract}
	levels := []ExperienceLevel{ExperienceAll, Entry, Mid, Senior}

	for _, jt := range jobTypes {
		for _, lvl := range levels {
			for _, remote := range []bool{false, true} {
				s := NewState(jobs)
				s.SetFilter(FilterPatch{JobType: ptr(jt), ExperienceLevel: ptr(lvl), RemoteOnly: ptr(remote)})

				var want []string
				for _, j := range jobs {
					if (jt == JobTypeAll || j.Type == jt) &&
						(lvl == ExperienceAll || j.ExperienceLevel == lvl) &&
						(!remote || j.Remote) {
						want = append(want, j.ID)
					}
				}

				assert.ElementsMatch(t, want, ids(s.DerivedView()),
					"job_type=%s experience=%s remote_only=%v", jt, lvl, remote)
			}
		}
	}
}

func TestDerivedView_SortByMatchScore(t *testing.T) {
	s := NewState([]JobPosting{
		{ID: "4", MatchScore: 45, Type: FullTime, ExperienceLevel: Entry},
		{ID: "1", MatchScore: 95, Type: FullTime, ExperienceLevel: Senior},
		{ID: "2", MatchScore: 88, Type: FullTime, ExperienceLevel: Mid},
	})
	s.SetFilter(FilterPatch{SortTab: ptr(SortMatchScore)})

	assert.Equal(t, []string{"1", "2", "4"}, ids(s.DerivedView()))
}

func TestDerivedView_RecommendedSortsByScore(t *testing.T) {
	s := NewState(SampleJobs(testNow))

	assert.Equal(t, []string{"1", "2", "3", "5", "4"}, ids(s.DerivedView()))
}

func TestDerivedView_SortIsStable(t *testing.T) {
	s := NewState([]JobPosting{
		{ID: "x", MatchScore: 70},
		{ID: "y", MatchScore: 90},
		{ID: "z", MatchScore: 70},
		{ID: "w", MatchScore: 70},
	})

	assert.Equal(t, []string{"y", "x", "z", "w"}, ids(s.DerivedView()))
}

func TestDerivedView_SortByPostedDate(t *testing.T) {
	s := NewState(SampleJobs(testNow))
	s.SetFilter(FilterPatch{SortTab: ptr(SortPostedDate)})

	// 2h, 5h, 1d, 3d, 1w
	assert.Equal(t, []string{"1", "5", "2", "3", "4"}, ids(s.DerivedView()))
}

func TestToggleBookmark_TwiceRestores(t *testing.T) {
	s := NewState(SampleJobs(testNow))

	for _, id := range []string{"1", "2"} {
		before, _ := s.Job(id)
		s.ToggleBookmark(id)
		mid, _ := s.Job(id)
		assert.NotEqual(t, before.IsBookmarked, mid.IsBookmarked)
		s.ToggleBookmark(id)
		after, _ := s.Job(id)
		assert.Equal(t, before.IsBookmarked, after.IsBookmarked)
	}
}

func TestToggleBookmark_UnknownIDIsNoop(t *testing.T) {
	s := NewState(SampleJobs(testNow))
	before := s.Jobs()

	assert.NotPanics(t, func() { s.ToggleBookmark("nonexistent") })
	assert.Equal(t, before, s.Jobs())
}

func TestPremiumPartition(t *testing.T) {
	s := NewState(SampleJobs(testNow))

	patches := []FilterPatch{
		{},
		{JobType: ptr(FullTime)},
		{ExperienceLevel: ptr(Senior)},
		{SortTab: ptr(SortPostedDate)},
		{RemoteOnly: ptr(true)},
		{ExperienceLevel: ptr(Entry)},
	}
	for _, p := range patches {
		s.SetFilter(p)
		for _, j := range s.DerivedView() {
			assert.False(t, j.IsPremium, "premium posting %s leaked into derived view", j.ID)
		}
	}

	s = NewState(SampleJobs(testNow))
	s.SetFilter(FilterPatch{ExperienceLevel: ptr(Senior)})
	assert.Equal(t, []string{"6"}, ids(s.PremiumView()))

	s.SetFilter(FilterPatch{RemoteOnly: ptr(true)})
	assert.Empty(t, s.PremiumView(), "premium view keeps the same filter")
}

func TestToggleExpanded(t *testing.T) {
	s := NewState(SampleJobs(testNow))

	s.ToggleExpanded("4")
	assert.True(t, s.IsExpanded("4"))
	assert.Equal(t, []string{"4"}, s.Expanded())

	s.ToggleExpanded("4")
	assert.False(t, s.IsExpanded("4"))
	assert.Empty(t, s.Expanded())
}

func TestSetFilter_MergesPartial(t *testing.T) {
	s := NewState(SampleJobs(testNow))

	s.SetFilter(FilterPatch{JobType: ptr(Contract)})
	s.SetFilter(FilterPatch{RemoteOnly: ptr(true)})

	f := s.Filter()
	assert.Equal(t, Contract, f.JobType)
	assert.True(t, f.RemoteOnly)
	assert.Equal(t, ExperienceAll, f.ExperienceLevel)
	assert.Equal(t, SortRecommended, f.SortTab)
}

func TestSetFilter_PanicsOnOutOfEnum(t *testing.T) {
	s := NewState(nil)

	assert.Panics(t, func() { s.SetFilter(FilterPatch{JobType: ptr(JobType("Internship"))}) })
	assert.Panics(t, func() { s.SetFilter(FilterPatch{SortTab: ptr(SortTab("alphabetical"))}) })
	assert.Equal(t, DefaultFilter(), s.Filter())
}

func TestViews_ReturnCopies(t *testing.T) {
	s := NewState(SampleJobs(testNow))

	view := s.DerivedView()
	view[0].IsBookmarked = !view[0].IsBookmarked

	j, _ := s.Job(view[0].ID)
	assert.NotEqual(t, view[0].IsBookmarked, j.IsBookmarked)
}
