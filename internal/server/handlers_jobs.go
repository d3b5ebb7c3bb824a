package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/postpilot/postpilot/internal/apperrors"
	"github.com/postpilot/postpilot/internal/auth"
	"github.com/postpilot/postpilot/internal/jobboard"
	"github.com/postpilot/postpilot/internal/session"
)

// sessionHeader carries the board id of anonymous visitors.
const sessionHeader = "X-Session-ID"

const maxSessionIDLength = 128

// MsgPremiumRequired is returned when a free session opens a premium job.
const MsgPremiumRequired = "premium membership required to view this job"

type boardResponse struct {
	Jobs       []jobboard.Card          `json:"jobs"`
	Premium    []jobboard.Card          `json:"premium"`
	Filter     jobboard.FilterSelection `json:"filter"`
	NextUpdate string                   `json:"next_update"`
}

type cardResponse struct {
	Card jobboard.Card `json:"card"`
}

type detailResponse struct {
	Card   jobboard.Card   `json:"card"`
	Detail jobboard.Detail `json:"detail"`
}

type countdownResponse struct {
	NextUpdateIn string    `json:"next_update_in"`
	NextUpdateAt time.Time `json:"next_update_at"`
}

// boardKey is the session store key for a request. Signed-in users keep
// one board across devices; anonymous visitors are keyed by X-Session-ID.
// An empty key means a throwaway board.
func boardKey(r *http.Request) (string, error) {
	if sess := auth.SessionFrom(r.Context()); !sess.Anonymous() {
		return "user:" + sess.UserID.String(), nil
	}
	id := strings.TrimSpace(r.Header.Get(sessionHeader))
	if id == "" {
		return "", nil
	}
	if len(id) > maxSessionIDLength {
		return "", session.ErrInvalidKey
	}
	return "anon:" + id, nil
}

// filterPatch reads job_type, experience_level, remote_only and sort from
// the query string. Absent parameters leave the stored filter unchanged.
func filterPatch(r *http.Request) (jobboard.FilterPatch, error) {
	var patch jobboard.FilterPatch

	if v := trimmed(r, "job_type"); v != "" {
		jt, err := jobboard.ParseJobType(v)
		if err != nil {
			return patch, apperrors.InvalidInput(err.Error(), err)
		}
		patch.JobType = &jt
	}
	if v := trimmed(r, "experience_level"); v != "" {
		lvl, err := jobboard.ParseExperienceLevel(v)
		if err != nil {
			return patch, apperrors.InvalidInput(err.Error(), err)
		}
		patch.ExperienceLevel = &lvl
	}
	if v := trimmed(r, "remote_only"); v != "" {
		remote, err := strconv.ParseBool(v)
		if err != nil {
			return patch, apperrors.InvalidInput("remote_only must be true or false", err)
		}
		patch.RemoteOnly = &remote
	}
	if v := trimmed(r, "sort"); v != "" {
		tab, err := jobboard.ParseSortTab(v)
		if err != nil {
			return patch, apperrors.InvalidInput(err.Error(), err)
		}
		patch.SortTab = &tab
	}
	return patch, nil
}

// handleListJobs merges the query filters into the caller's board and
// returns both views.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	patch, err := filterPatch(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	key, err := boardKey(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	unlocked := auth.SessionFrom(r.Context()).CanViewPremium()
	now := s.now()

	var resp boardResponse
	err = s.boards.With(r.Context(), key, func(state *jobboard.State) error {
		state.SetFilter(patch)
		resp = boardResponse{
			Jobs:       state.Cards(state.DerivedView(), unlocked, now),
			Premium:    state.Cards(state.PremiumView(), unlocked, now),
			Filter:     state.Filter(),
			NextUpdate: s.countdown.Label(now),
		}
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleToggleBookmark flips the bookmark flag of one job.
func (s *Server) handleToggleBookmark(w http.ResponseWriter, r *http.Request) {
	s.toggle(w, r, (*jobboard.State).ToggleBookmark)
}

// handleToggleExpanded opens or closes the "why low score" panel of one job.
func (s *Server) handleToggleExpanded(w http.ResponseWriter, r *http.Request) {
	s.toggle(w, r, (*jobboard.State).ToggleExpanded)
}

func (s *Server) toggle(w http.ResponseWriter, r *http.Request, flip func(*jobboard.State, string)) {
	id := r.PathValue("id")
	key, err := boardKey(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	unlocked := auth.SessionFrom(r.Context()).CanViewPremium()
	now := s.now()

	var card jobboard.Card
	err = s.boards.With(r.Context(), key, func(state *jobboard.State) error {
		if _, ok := state.Job(id); !ok {
			return apperrors.NotFound("job not found", nil)
		}
		flip(state, id)
		j, _ := state.Job(id)
		card = jobboard.Present(j, j.IsBookmarked, state.IsExpanded(id), unlocked, now)
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, cardResponse{Card: card})
}

// handleResetBoard drops the caller's stored filter, bookmarks and open
// panels. The next read starts from the seeded board.
func (s *Server) handleResetBoard(w http.ResponseWriter, r *http.Request) {
	key, err := boardKey(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if key != "" {
		if err := s.boards.Reset(r.Context(), key); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleJobDetail returns the card and enrichment of one job. Premium jobs
// require the premium tier; a job without enrichment gets the
// "description unavailable" placeholder.
func (s *Server) handleJobDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.catalog.Job(id); !ok {
		s.writeError(w, r, apperrors.NotFound("job not found", nil))
		return
	}

	sess := auth.SessionFrom(r.Context())
	key, err := boardKey(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	now := s.now()
	var resp detailResponse
	err = s.boards.With(r.Context(), key, func(state *jobboard.State) error {
		j, ok := state.Job(id)
		if !ok {
			return apperrors.NotFound("job not found", nil)
		}
		if j.IsPremium && !sess.CanViewPremium() {
			return apperrors.Forbidden(MsgPremiumRequired, nil)
		}
		resp = detailResponse{
			Card:   jobboard.Present(j, j.IsBookmarked, state.IsExpanded(id), true, now),
			Detail: s.catalog.Detail(id),
		}
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleCountdown reports the time until the next job list refresh.
func (s *Server) handleCountdown(w http.ResponseWriter, _ *http.Request) {
	now := s.now()
	s.jsonResponse(w, http.StatusOK, countdownResponse{
		NextUpdateIn: s.countdown.Label(now),
		NextUpdateAt: s.countdown.Next(now),
	})
}
