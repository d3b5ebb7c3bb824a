package jobboard

import "sort"

// Snapshot is the serializable part of a board session: everything except
// the postings themselves, which come from the catalog.
type Snapshot struct {
	Filter    FilterSelection `json:"filter"`
	Bookmarks []string        `json:"bookmarks,omitempty"`
	Expanded  []string        `json:"expanded,omitempty"`
}

// Snapshot captures the session state of the board.
func (s *State) Snapshot() Snapshot {
	var bookmarks []string
	for _, j := range s.jobs {
		if j.IsBookmarked {
			bookmarks = append(bookmarks, j.ID)
		}
	}
	sort.Strings(bookmarks)

	return Snapshot{
		Filter:    s.filter,
		Bookmarks: bookmarks,
		Expanded:  s.Expanded(),
	}
}

// Restore applies a snapshot on top of the seeded postings. Bookmarks in the
// snapshot replace the seeded bookmark flags; ids that no longer exist in the
// catalog are dropped. An invalid filter is ignored.
func (s *State) Restore(snap Snapshot) {
	if snap.Filter.valid() {
		s.filter = snap.Filter
	}

	for i := range s.jobs {
		s.jobs[i].IsBookmarked = false
	}
	for _, id := range snap.Bookmarks {
		if i, ok := s.index[id]; ok {
			s.jobs[i].IsBookmarked = true
		}
	}

	s.expanded = make(map[string]struct{}, len(snap.Expanded))
	for _, id := range snap.Expanded {
		if _, ok := s.index[id]; ok {
			s.expanded[id] = struct{}{}
		}
	}
}
