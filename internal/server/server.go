// Package server provides the HTTP API for the PostPilot dashboard.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/apperrors"
	"github.com/postpilot/postpilot/internal/auth"
	"github.com/postpilot/postpilot/internal/blog"
	"github.com/postpilot/postpilot/internal/content"
	"github.com/postpilot/postpilot/internal/countdown"
	"github.com/postpilot/postpilot/internal/jobboard"
	"github.com/postpilot/postpilot/internal/server/middleware"
	"github.com/postpilot/postpilot/internal/server/ratelimit"
	"github.com/postpilot/postpilot/internal/session"
)

// DefaultShutdownTimeout bounds graceful shutdown.
const DefaultShutdownTimeout = 30 * time.Second

// JobCatalog is the current set of postings and their enrichment.
type JobCatalog interface {
	Jobs() []jobboard.JobPosting
	Job(id string) (jobboard.JobPosting, bool)
	Detail(id string) jobboard.Detail
}

// Config holds the server settings and its collaborators. Auth, Tokens and
// Posts may be nil; the matching routes then answer 503.
type Config struct {
	Addr            string
	CORSOrigins     []string
	ShutdownTimeout time.Duration

	Catalog   JobCatalog
	Boards    *session.Manager
	Auth      *auth.Service
	Tokens    middleware.SessionValidator
	Posts     content.LinkedInPostService
	Blog      *blog.Catalog
	Countdown *countdown.Countdown
	Limiter   *ratelimit.Limiter
	Logger    *zap.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Server is the HTTP API server.
type Server struct {
	httpServer      *http.Server
	handler         http.Handler
	shutdownTimeout time.Duration
	corsOrigins     []string

	catalog   JobCatalog
	boards    *session.Manager
	auth      *auth.Service
	tokens    middleware.SessionValidator
	posts     content.LinkedInPostService
	blog      *blog.Catalog
	countdown *countdown.Countdown
	limiter   *ratelimit.Limiter
	logger    *zap.Logger
	now       func() time.Time
}

// New creates the server and its route table.
func New(cfg Config) (*Server, error) {
	if cfg.Catalog == nil || cfg.Boards == nil {
		return nil, errors.New("server requires a job catalog and a board manager")
	}
	if cfg.Blog == nil || cfg.Countdown == nil {
		return nil, errors.New("server requires a blog catalog and a countdown")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Limiter == nil {
		cfg.Limiter = ratelimit.NewLimiter(&ratelimit.Config{Enabled: false})
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Auth == nil {
		cfg.Auth = auth.NewService(nil, nil, cfg.Logger)
	}

	s := &Server{
		shutdownTimeout: cfg.ShutdownTimeout,
		corsOrigins:     cfg.CORSOrigins,
		catalog:         cfg.Catalog,
		boards:          cfg.Boards,
		auth:            cfg.Auth,
		tokens:          cfg.Tokens,
		posts:           cfg.Posts,
		blog:            cfg.Blog,
		countdown:       cfg.Countdown,
		limiter:         cfg.Limiter,
		logger:          cfg.Logger,
		now:             cfg.Now,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Accounts
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.Handle("PUT /auth/password", middleware.RequireAuth(http.HandlerFunc(s.handleUpdatePassword)))

	// Job board
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleJobDetail)
	mux.HandleFunc("POST /jobs/{id}/bookmark", s.handleToggleBookmark)
	mux.HandleFunc("POST /jobs/{id}/expand", s.handleToggleExpanded)
	mux.HandleFunc("DELETE /jobs/board", s.handleResetBoard)
	mux.HandleFunc("GET /dashboard/countdown", s.handleCountdown)

	// Marketing tools
	mux.HandleFunc("POST /ads/{platform}", s.handleGenerateAd)
	mux.HandleFunc("POST /linkedin/posts", s.handleGeneratePost)
	mux.HandleFunc("GET /blog", s.handleListPosts)
	mux.HandleFunc("GET /blog/{slug}", s.handleGetPost)

	var h http.Handler = mux
	if s.tokens != nil {
		h = middleware.Authenticate(s.tokens)(h)
	}
	s.handler = s.withRateLimit(s.withLogging(s.withCORS(h)))

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler returns the fully wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.limiter.Stop()
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.limiter.Stop()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers. With no configured origins every origin is
// allowed.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case len(s.corsOrigins) == 0 || slices.Contains(s.corsOrigins, "*"):
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(s.corsOrigins, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+sessionHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients over their per-route budget.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.limiter.Allow(extractClientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging logs one line per request.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, errorBody{Error: message})
}

// writeError maps err to a status and a public payload. Server-side
// failures are logged with their full chain.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	s.jsonResponse(w, status, publicError(err, status))
}

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return apperrors.InvalidInput("invalid request body", err)
	}
	return nil
}

// extractClientID identifies the caller by IP address. X-Forwarded-For is
// not trusted.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		secs := int((info.RetryAfter + time.Second - 1) / time.Second)
		response["retry_after"] = secs
		w.Header().Set("Retry-After", strconv.Itoa(secs))
	}

	s.logger.Warn("rate limit exceeded",
		zap.String("client", extractClientID(r)),
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit),
	)
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

// trimmed returns the query value for key with surrounding space removed.
func trimmed(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
