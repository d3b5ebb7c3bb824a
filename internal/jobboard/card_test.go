package jobboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchColor(t *testing.T) {
	tests := []struct {
		level MatchLevel
		want  string
	}{
		{MatchStrong, ColorGreen},
		{MatchFair, ColorYellow},
		{MatchLow, ColorRed},
		{MatchLevel("excellent"), ColorGray},
		{MatchLevel(""), ColorGray},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, MatchColor(tt.level))
		})
	}
}

func TestShowWhyLowScore(t *testing.T) {
	assert.True(t, ShowWhyLowScore(JobPosting{MatchLevel: MatchLow, WhyLowScore: []string{"reason"}}))
	assert.False(t, ShowWhyLowScore(JobPosting{MatchLevel: MatchLow}))
	assert.False(t, ShowWhyLowScore(JobPosting{MatchLevel: MatchFair, WhyLowScore: []string{"reason"}}))
}

func TestPresent_WhyLowScoreTracksExpandedSet(t *testing.T) {
	s := NewState(SampleJobs(testNow))

	card := cardFor(t, s, "4", false)
	assert.True(t, card.ShowWhyLowScore)
	assert.False(t, card.WhyLowScoreOpen)
	assert.Empty(t, card.WhyLowScore)

	s.ToggleExpanded("4")
	card = cardFor(t, s, "4", false)
	assert.True(t, card.WhyLowScoreOpen)
	assert.Len(t, card.WhyLowScore, 3)

	s.ToggleExpanded("4")
	card = cardFor(t, s, "4", false)
	assert.False(t, card.WhyLowScoreOpen)

	// Expanding a card without reasons never opens a panel.
	s.ToggleExpanded("1")
	card = cardFor(t, s, "1", false)
	assert.False(t, card.ShowWhyLowScore)
	assert.False(t, card.WhyLowScoreOpen)
}

func TestPresent_PremiumLocking(t *testing.T) {
	s := NewState(SampleJobs(testNow))

	locked := cardFor(t, s, "6", false)
	assert.True(t, locked.Locked)
	assert.Equal(t, UpgradePrompt, locked.UpgradePrompt)
	assert.Empty(t, locked.Title)
	assert.Empty(t, locked.Company)
	assert.Empty(t, locked.Salary)

	unlocked := cardFor(t, s, "6", true)
	assert.False(t, unlocked.Locked)
	assert.Equal(t, "Principal Platform Engineer", unlocked.Title)

	regular := cardFor(t, s, "1", false)
	assert.False(t, regular.Locked)
}

func TestPresent_Fields(t *testing.T) {
	s := NewState(SampleJobs(testNow))

	card := cardFor(t, s, "2", false)
	assert.Equal(t, "Full Stack Engineer", card.Title)
	assert.Equal(t, ColorGreen, card.MatchColor)
	assert.Equal(t, "1 day ago", card.PostedLabel)
	assert.True(t, card.Bookmarked)
}

func cardFor(t *testing.T, s *State, id string, unlocked bool) Card {
	t.Helper()
	j, ok := s.Job(id)
	if !ok {
		t.Fatalf("job %s not found", id)
	}
	return Present(j, j.IsBookmarked, s.IsExpanded(id), unlocked, testNow)
}
