package server

import (
	"net/http"

	"github.com/postpilot/postpilot/internal/auth"
	"github.com/postpilot/postpilot/internal/server/middleware"
	"github.com/postpilot/postpilot/internal/types"
)

// handleRegister handles user registration requests.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req auth.Registration
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.resultResponse(w, s.auth.Register(r.Context(), req))
}

// handleLogin handles user login requests.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.Credentials
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.resultResponse(w, s.auth.Login(r.Context(), req))
}

// handleUpdatePassword changes the signed-in user's password.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.BearerToken(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req types.UpdatePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.resultResponse(w, s.auth.UpdatePassword(r.Context(), token, req.CurrentPassword, req.NewPassword))
}

// resultResponse writes an auth Result. The body is the Result itself; the
// status code follows the Result's underlying error.
func (s *Server) resultResponse(w http.ResponseWriter, res auth.Result) {
	status := http.StatusOK
	switch res.Status {
	case auth.StatusRegistered:
		status = http.StatusCreated
	case auth.StatusError:
		status = HTTPStatus(res.Err)
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
	}
	s.jsonResponse(w, status, res)
}
