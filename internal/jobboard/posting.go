// Package jobboard provides the job-matching board: the canonical list of job
// postings, the user's filter/sort/bookmark selections, and the derived views
// rendered by the dashboard.
package jobboard

import (
	"fmt"
	"time"
)

// JobType is the employment type of a posting.
type JobType string

// JobType values. JobTypeAll is only meaningful as a filter value.
const (
	JobTypeAll JobType = "all"
	FullTime   JobType = "Full-time"
	PartTime   JobType = "Part-time"
	Contract   JobType = "Contract"
)

// ExperienceLevel is the seniority a posting targets.
type ExperienceLevel string

// ExperienceLevel values. ExperienceAll is only meaningful as a filter value.
const (
	ExperienceAll ExperienceLevel = "all"
	Entry         ExperienceLevel = "Entry"
	Mid           ExperienceLevel = "Mid"
	Senior        ExperienceLevel = "Senior"
)

// MatchLevel is the coarse band associated with a match score.
type MatchLevel string

// MatchLevel values
const (
	MatchStrong MatchLevel = "strong"
	MatchFair   MatchLevel = "fair"
	MatchLow    MatchLevel = "low"
)

// Match score band thresholds used by MatchLevelForScore
const (
	StrongMatchThreshold = 80
	FairMatchThreshold   = 60
)

// JobPosting is a single job listing as shown on the board.
type JobPosting struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	Salary          string          `json:"salary"`
	PostedAt        time.Time       `json:"posted_at"`
	MatchScore      int             `json:"match_score"`
	MatchLevel      MatchLevel      `json:"match_level"`
	Type            JobType         `json:"type"`
	Remote          bool            `json:"remote"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	IsBookmarked    bool            `json:"is_bookmarked"`
	IsPremium       bool            `json:"is_premium,omitempty"`
	WhyLowScore     []string        `json:"why_low_score,omitempty"`
}

// clone returns a copy that shares no slices with p.
func (p JobPosting) clone() JobPosting {
	if p.WhyLowScore != nil {
		p.WhyLowScore = append([]string(nil), p.WhyLowScore...)
	}
	return p
}

// PostedLabel renders PostedAt relative to now, e.g. "2 hours ago".
func (p JobPosting) PostedLabel(now time.Time) string {
	return RelativeTime(p.PostedAt, now)
}

// MatchLevelForScore returns the band a score falls into. Feeds that omit a
// match level get one from here; authored levels are kept as-is.
func MatchLevelForScore(score int) MatchLevel {
	switch {
	case score >= StrongMatchThreshold:
		return MatchStrong
	case score >= FairMatchThreshold:
		return MatchFair
	default:
		return MatchLow
	}
}

// RelativeTime formats the distance between t and now in the board's style.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	if d < time.Minute {
		return "just now"
	}

	switch {
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	case d < 7*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day")
	case d < 30*24*time.Hour:
		return plural(int(d/(7*24*time.Hour)), "week")
	case d < 365*24*time.Hour:
		return plural(int(d/(30*24*time.Hour)), "month")
	default:
		return plural(int(d/(365*24*time.Hour)), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// ParseJobType converts user input into a JobType filter value.
func ParseJobType(s string) (JobType, error) {
	jt := JobType(s)
	switch jt {
	case JobTypeAll, FullTime, PartTime, Contract:
		return jt, nil
	}
	return "", fmt.Errorf("unknown job type %q", s)
}

// ParseExperienceLevel converts user input into an ExperienceLevel filter value.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	lvl := ExperienceLevel(s)
	switch lvl {
	case ExperienceAll, Entry, Mid, Senior:
		return lvl, nil
	}
	return "", fmt.Errorf("unknown experience level %q", s)
}

// ParseSortTab converts user input into a SortTab.
func ParseSortTab(s string) (SortTab, error) {
	tab := SortTab(s)
	switch tab {
	case SortRecommended, SortMatchScore, SortPostedDate:
		return tab, nil
	}
	return "", fmt.Errorf("unknown sort tab %q", s)
}

// ParseMatchLevel converts feed input into a MatchLevel.
func ParseMatchLevel(s string) (MatchLevel, error) {
	lvl := MatchLevel(s)
	switch lvl {
	case MatchStrong, MatchFair, MatchLow:
		return lvl, nil
	}
	return "", fmt.Errorf("unknown match level %q", s)
}
