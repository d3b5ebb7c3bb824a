// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/postpilot/postpilot/internal/auth"
)

// SessionValidator turns a bearer token into the session it carries.
type SessionValidator interface {
	SessionFromToken(tokenString string) (auth.Session, error)
}

var errMalformedHeader = errors.New("malformed authorization header")

// Authenticate attaches the caller's auth.Session to the request context.
// Requests without an Authorization header continue as anonymous; a header
// that is malformed or carries an invalid token is rejected with 401.
func Authenticate(validator SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, err := bearerToken(header)
			if err != nil {
				unauthorized(w, "invalid authorization header")
				return
			}

			session, err := validator.SessionFromToken(token)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
		})
	}
}

// RequireAuth rejects anonymous requests. It must run after Authenticate.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.SessionFrom(r.Context()).Anonymous() {
			unauthorized(w, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// BearerToken extracts the token from a request's Authorization header.
func BearerToken(r *http.Request) (string, error) {
	return bearerToken(r.Header.Get("Authorization"))
}

// bearerToken accepts "Bearer <token>" with a case-insensitive scheme.
func bearerToken(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errMalformedHeader
	}
	return parts[1], nil
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
