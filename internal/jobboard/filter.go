package jobboard

import "fmt"

// SortTab selects the ordering of the derived view.
type SortTab string

// SortTab values
const (
	SortRecommended SortTab = "recommended"
	SortMatchScore  SortTab = "match-score"
	SortPostedDate  SortTab = "posted-date"
)

// FilterSelection is the user's current filter and sort selection.
type FilterSelection struct {
	JobType         JobType         `json:"job_type"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	RemoteOnly      bool            `json:"remote_only"`
	SortTab         SortTab         `json:"sort"`
}

// DefaultFilter is the selection a fresh board starts with.
func DefaultFilter() FilterSelection {
	return FilterSelection{
		JobType:         JobTypeAll,
		ExperienceLevel: ExperienceAll,
		RemoteOnly:      false,
		SortTab:         SortRecommended,
	}
}

// FilterPatch is a partial FilterSelection. Nil fields are left unchanged.
type FilterPatch struct {
	JobType         *JobType
	ExperienceLevel *ExperienceLevel
	RemoteOnly      *bool
	SortTab         *SortTab
}

// IsEmpty reports whether the patch changes nothing.
func (p FilterPatch) IsEmpty() bool {
	return p.JobType == nil && p.ExperienceLevel == nil && p.RemoteOnly == nil && p.SortTab == nil
}

// Matches reports whether a posting passes every active predicate.
func (f FilterSelection) Matches(p JobPosting) bool {
	if f.JobType != JobTypeAll && p.Type != f.JobType {
		return false
	}
	if f.ExperienceLevel != ExperienceAll && p.ExperienceLevel != f.ExperienceLevel {
		return false
	}
	if f.RemoteOnly && !p.Remote {
		return false
	}
	return true
}

// apply merges the patch into f. Values outside the enumerations are a
// programming error.
func (f FilterSelection) apply(p FilterPatch) FilterSelection {
	if p.JobType != nil {
		if _, err := ParseJobType(string(*p.JobType)); err != nil {
			panic(fmt.Sprintf("jobboard: %v", err))
		}
		f.JobType = *p.JobType
	}
	if p.ExperienceLevel != nil {
		if _, err := ParseExperienceLevel(string(*p.ExperienceLevel)); err != nil {
			panic(fmt.Sprintf("jobboard: %v", err))
		}
		f.ExperienceLevel = *p.ExperienceLevel
	}
	if p.RemoteOnly != nil {
		f.RemoteOnly = *p.RemoteOnly
	}
	if p.SortTab != nil {
		if _, err := ParseSortTab(string(*p.SortTab)); err != nil {
			panic(fmt.Sprintf("jobboard: %v", err))
		}
		f.SortTab = *p.SortTab
	}
	return f
}

// valid reports whether every field holds an enumerated value.
func (f FilterSelection) valid() bool {
	if _, err := ParseJobType(string(f.JobType)); err != nil {
		return false
	}
	if _, err := ParseExperienceLevel(string(f.ExperienceLevel)); err != nil {
		return false
	}
	if _, err := ParseSortTab(string(f.SortTab)); err != nil {
		return false
	}
	return true
}
