package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postpilot/postpilot/internal/auth"
)

// testValidator accepts only the tokens registered on it.
type testValidator struct {
	sessions map[string]auth.Session
}

func newTestValidator() *testValidator {
	return &testValidator{sessions: make(map[string]auth.Session)}
}

func (v *testValidator) add(token string, s auth.Session) {
	v.sessions[token] = s
}

func (v *testValidator) SessionFromToken(token string) (auth.Session, error) {
	s, ok := v.sessions[token]
	if !ok {
		return auth.Session{}, errors.New("invalid token")
	}
	return s, nil
}

// captureSession returns a handler that records the session it was called with.
func captureSession(called *bool, got *auth.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		*got = auth.SessionFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_ValidToken(t *testing.T) {
	v := newTestValidator()
	want := auth.Session{UserID: uuid.New(), Tier: "premium"}
	v.add("valid-token", want)

	var (
		called bool
		got    auth.Session
	)
	h := Authenticate(v)(captureSession(&called, &got))

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, want, got)
}

func TestAuthenticate_NoHeaderIsAnonymous(t *testing.T) {
	var (
		called bool
		got    auth.Session
	)
	h := Authenticate(newTestValidator())(captureSession(&called, &got))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs", nil))

	assert.True(t, called)
	assert.True(t, got.Anonymous())
}

func TestAuthenticate_RejectsBadHeaders(t *testing.T) {
	v := newTestValidator()
	v.add("token123", auth.Session{UserID: uuid.New()})

	tests := []struct {
		name   string
		header string
	}{
		{"missing scheme", "token123"},
		{"empty token", "Bearer "},
		{"only scheme", "Bearer"},
		{"wrong scheme", "Basic token123"},
		{"extra parts", "Bearer token123 extra"},
		{"unknown token", "Bearer nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				called bool
				got    auth.Session
			)
			h := Authenticate(v)(captureSession(&called, &got))

			req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
			req.Header.Set("Authorization", tt.header)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestAuthenticate_SchemeIsCaseInsensitive(t *testing.T) {
	v := newTestValidator()
	id := uuid.New()
	v.add("tok", auth.Session{UserID: id})

	var (
		called bool
		got    auth.Session
	)
	h := Authenticate(v)(captureSession(&called, &got))

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Authorization", "bearer   tok")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, called)
	assert.Equal(t, id, got.UserID)
}

func TestRequireAuth(t *testing.T) {
	called := false
	h := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/auth/password", nil))
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPut, "/auth/password", nil)
	req = req.WithContext(auth.WithSession(req.Context(), auth.Session{UserID: uuid.New()}))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := BearerToken(req)
	assert.Error(t, err)

	req.Header.Set("Authorization", "Bearer abc.def")
	tok, err := BearerToken(req)
	require.NoError(t, err)
	assert.Equal(t, "abc.def", tok)
}
