package jobboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{time.Minute, "1 minute ago"},
		{45 * time.Minute, "45 minutes ago"},
		{2 * time.Hour, "2 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{3 * 24 * time.Hour, "3 days ago"},
		{7 * 24 * time.Hour, "1 week ago"},
		{60 * 24 * time.Hour, "2 months ago"},
		{800 * 24 * time.Hour, "2 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(testNow.Add(-tt.ago), testNow))
		})
	}
}

func TestRelativeTime_FutureIsJustNow(t *testing.T) {
	assert.Equal(t, "just now", RelativeTime(testNow.Add(time.Hour), testNow))
}

func TestMatchLevelForScore(t *testing.T) {
	assert.Equal(t, MatchStrong, MatchLevelForScore(95))
	assert.Equal(t, MatchStrong, MatchLevelForScore(80))
	assert.Equal(t, MatchFair, MatchLevelForScore(79))
	assert.Equal(t, MatchFair, MatchLevelForScore(60))
	assert.Equal(t, MatchLow, MatchLevelForScore(59))
	assert.Equal(t, MatchLow, MatchLevelForScore(0))
}

func TestParseEnums(t *testing.T) {
	jt, err := ParseJobType("Part-time")
	require.NoError(t, err)
	assert.Equal(t, PartTime, jt)

	_, err = ParseJobType("part-time")
	assert.Error(t, err)

	lvl, err := ParseExperienceLevel("all")
	require.NoError(t, err)
	assert.Equal(t, ExperienceAll, lvl)

	_, err = ParseExperienceLevel("Principal")
	assert.Error(t, err)

	tab, err := ParseSortTab("posted-date")
	require.NoError(t, err)
	assert.Equal(t, SortPostedDate, tab)

	_, err = ParseSortTab("")
	assert.Error(t, err)

	ml, err := ParseMatchLevel("fair")
	require.NoError(t, err)
	assert.Equal(t, MatchFair, ml)
}

func TestDetailCatalog_Lookup(t *testing.T) {
	catalog := SampleDetails()

	d := catalog.Lookup("1")
	assert.True(t, d.Available)
	require.NotNil(t, d.Description)
	assert.Contains(t, d.Description.Overview, "TechCorp")

	other := catalog.Lookup("2")
	assert.NotEqual(t, d.Description.Overview, other.Description.Overview, "each job has its own description")

	missing := catalog.Lookup("4")
	assert.False(t, missing.Available)
	assert.Nil(t, missing.Description)
	assert.Equal(t, DescriptionUnavailable, missing.Message)
	assert.Equal(t, "4", missing.JobID)
}

func TestSnapshotRestore(t *testing.T) {
	s := NewState(SampleJobs(testNow))
	s.SetFilter(FilterPatch{RemoteOnly: ptr(true), SortTab: ptr(SortPostedDate)})
	s.ToggleBookmark("1")
	s.ToggleExpanded("5")

	snap := s.Snapshot()
	assert.Equal(t, []string{"1", "2"}, snap.Bookmarks)
	assert.Equal(t, []string{"5"}, snap.Expanded)

	restored := NewState(SampleJobs(testNow))
	restored.Restore(snap)

	assert.Equal(t, s.Filter(), restored.Filter())
	assert.Equal(t, ids(s.DerivedView()), ids(restored.DerivedView()))
	assert.True(t, restored.IsExpanded("5"))
	j, _ := restored.Job("1")
	assert.True(t, j.IsBookmarked)
}

func TestRestore_DropsUnknownIDsAndInvalidFilter(t *testing.T) {
	s := NewState(SampleJobs(testNow))
	s.Restore(Snapshot{
		Filter:    FilterSelection{JobType: "Internship", ExperienceLevel: ExperienceAll, SortTab: SortRecommended},
		Bookmarks: []string{"gone"},
		Expanded:  []string{"gone", "4"},
	})

	assert.Equal(t, DefaultFilter(), s.Filter())
	assert.Empty(t, s.Snapshot().Bookmarks)
	assert.Equal(t, []string{"4"}, s.Expanded())
}
