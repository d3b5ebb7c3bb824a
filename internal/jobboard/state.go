package jobboard

import (
	"sort"
)

// State owns the list of postings for one board session together with the
// current filter selection and the set of expanded cards.
//
// State is not safe for concurrent use.
type State struct {
	jobs     []JobPosting
	index    map[string]int
	filter   FilterSelection
	expanded map[string]struct{}
}

// NewState seeds a board from jobs. The slice is copied.
func NewState(jobs []JobPosting) *State {
	s := &State{
		jobs:     make([]JobPosting, len(jobs)),
		index:    make(map[string]int, len(jobs)),
		filter:   DefaultFilter(),
		expanded: make(map[string]struct{}),
	}
	for i, j := range jobs {
		s.jobs[i] = j.clone()
		s.index[j.ID] = i
	}
	return s
}

// Filter returns the current selection.
func (s *State) Filter() FilterSelection {
	return s.filter
}

// SetFilter merges patch into the current selection.
// It panics if a field holds a value outside its enumeration.
func (s *State) SetFilter(patch FilterPatch) {
	s.filter = s.filter.apply(patch)
}

// ToggleBookmark flips the bookmark on the posting with the given id.
// Unknown ids are ignored.
func (s *State) ToggleBookmark(id string) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	s.jobs[i].IsBookmarked = !s.jobs[i].IsBookmarked
}

// ToggleExpanded opens or closes the "why low score" panel of a card.
func (s *State) ToggleExpanded(id string) {
	if _, ok := s.expanded[id]; ok {
		delete(s.expanded, id)
		return
	}
	s.expanded[id] = struct{}{}
}

// IsExpanded reports whether id is in the expanded set.
func (s *State) IsExpanded(id string) bool {
	_, ok := s.expanded[id]
	return ok
}

// Expanded returns the expanded ids in sorted order.
func (s *State) Expanded() []string {
	ids := make([]string, 0, len(s.expanded))
	for id := range s.expanded {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Job returns a copy of the posting with the given id.
func (s *State) Job(id string) (JobPosting, bool) {
	i, ok := s.index[id]
	if !ok {
		return JobPosting{}, false
	}
	return s.jobs[i].clone(), true
}

// Jobs returns a copy of every posting in seed order.
func (s *State) Jobs() []JobPosting {
	out := make([]JobPosting, len(s.jobs))
	for i, j := range s.jobs {
		out[i] = j.clone()
	}
	return out
}

// DerivedView returns the non-premium postings that pass the current filter,
// ordered by the active sort tab. It is recomputed on every call.
func (s *State) DerivedView() []JobPosting {
	return s.view(false)
}

// PremiumView returns the premium postings that pass the current filter,
// ordered with the same comparator as DerivedView.
func (s *State) PremiumView() []JobPosting {
	return s.view(true)
}

func (s *State) view(premium bool) []JobPosting {
	out := make([]JobPosting, 0, len(s.jobs))
	for _, j := range s.jobs {
		if j.IsPremium != premium || !s.filter.Matches(j) {
			continue
		}
		out = append(out, j.clone())
	}
	sortPostings(out, s.filter.SortTab)
	return out
}

// sortPostings orders jobs in place. Ties keep their seed order.
func sortPostings(jobs []JobPosting, tab SortTab) {
	switch tab {
	case SortPostedDate:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].PostedAt.After(jobs[j].PostedAt)
		})
	default:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].MatchScore > jobs[j].MatchScore
		})
	}
}
