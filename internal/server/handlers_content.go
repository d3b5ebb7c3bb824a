package server

import (
	"net/http"

	"github.com/postpilot/postpilot/internal/adcopy"
	"github.com/postpilot/postpilot/internal/apperrors"
	"github.com/postpilot/postpilot/internal/blog"
	"github.com/postpilot/postpilot/internal/content"
)

type postsResponse struct {
	Posts      []blog.Post `json:"posts"`
	Categories []string    `json:"categories"`
}

// handleGenerateAd renders ad copy for the platform in the path.
func (s *Server) handleGenerateAd(w http.ResponseWriter, r *http.Request) {
	platform, err := adcopy.ParsePlatform(r.PathValue("platform"))
	if err != nil {
		s.writeError(w, r, apperrors.NotFound(err.Error(), err))
		return
	}

	req, err := adcopy.NewRequest(platform)
	if err != nil {
		s.writeError(w, r, apperrors.NotFound(err.Error(), err))
		return
	}
	if err := decodeJSON(w, r, req); err != nil {
		s.writeError(w, r, err)
		return
	}

	ad, err := adcopy.Generate(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ad)
}

// handleGeneratePost generates a LinkedIn post. Generator failures surface
// as 502 and are not retried.
func (s *Server) handleGeneratePost(w http.ResponseWriter, r *http.Request) {
	if s.posts == nil {
		s.writeError(w, r, apperrors.Unavailable("post generation is not configured", nil))
		return
	}

	var params content.Params
	if err := decodeJSON(w, r, &params); err != nil {
		s.writeError(w, r, err)
		return
	}

	post, err := s.posts.GenerateLinkedInPost(r.Context(), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, post)
}

// handleListPosts lists blog posts newest first, optionally by category.
func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, postsResponse{
		Posts:      s.blog.List(trimmed(r, "category")),
		Categories: s.blog.Categories(),
	})
}

// handleGetPost returns one blog post.
func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.blog.Get(r.PathValue("slug"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, post)
}
