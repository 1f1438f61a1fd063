package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/cvortex/ats-ui-api/internal/domain/auth"
	"github.com/cvortex/ats-ui-api/internal/ports"
)

type stubResolver struct {
	session *domainauth.Session
	err     error

	gotSessionID string
}

func (s *stubResolver) Resolve(_ context.Context, sessionID string) (*domainauth.Session, error) {
	s.gotSessionID = sessionID
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func okHandler(t *testing.T, sawSession **domainauth.Session) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*sawSession = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func guardRequest(t *testing.T, resolver SessionResolver, mutate func(*http.Request)) (*httptest.ResponseRecorder, *domainauth.Session) {
	t.Helper()
	var saw *domainauth.Session
	handler := RequireRoles(resolver, domainauth.RoleCandidate)(okHandler(t, &saw))

	req := httptest.NewRequest(http.MethodGet, "/api/candidate/dashboard", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, saw
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequireRoles_AllowsMatchingRole(t *testing.T) {
	resolver := &stubResolver{session: &domainauth.Session{
		ID: "sess-1", Token: "tok", Role: domainauth.RoleCandidate, Email: "a@b.c",
	}}

	rec, saw := guardRequest(t, resolver, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sess-1", resolver.gotSessionID)
	require.NotNil(t, saw)
	assert.Equal(t, domainauth.RoleCandidate, saw.Role)
}

func TestRequireRoles_NoCookieJSON(t *testing.T) {
	rec, saw := guardRequest(t, &stubResolver{err: ports.ErrNoCredential}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, saw)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, "unauthorized", body["error"])
	assert.Equal(t, "/login", body["redirect_to"])
	assert.EqualValues(t, 2000, body["redirect_after_ms"])
}

func TestRequireRoles_NoCookieBrowserRedirects(t *testing.T) {
	rec, _ := guardRequest(t, &stubResolver{err: ports.ErrNoCredential}, func(r *http.Request) {
		r.Header.Set("Accept", "text/html,application/xhtml+xml")
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/login?redirect_uri=")
}

func TestRequireRoles_InvalidTokenMessage(t *testing.T) {
	rec, _ := guardRequest(t, &stubResolver{err: domainauth.ErrInvalidToken}, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "Unauthorized. Please login again.", body["message"])
	assert.Equal(t, "/login", body["redirect_to"])
}

func TestRequireRoles_WrongRoleBouncesToLogin(t *testing.T) {
	resolver := &stubResolver{session: &domainauth.Session{
		ID: "sess-1", Token: "tok", Role: domainauth.RoleRecruiter,
	}}

	// API callers get a JSON bounce, never a partial allow.
	rec, saw := guardRequest(t, resolver, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, saw)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "/login", body["redirect_to"])

	// Browser navigations are redirected the same way.
	rec, _ = guardRequest(t, resolver, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
		r.Header.Set("Accept", "text/html")
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/login")
}

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/candidate/jobs", "/candidate/jobs"},
		{"/candidate/jobs?q=go", "/candidate/jobs?q=go"},
		{"", "/"},
		{"relative", "/"},
		{"//evil.example.com", "/"},
		{"https://evil.example.com/x", "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, safeRedirectPath(tt.in), "input %q", tt.in)
	}
}

func TestIsBrowserRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/candidate/jobs", nil)
	assert.False(t, IsBrowserRequest(req))

	req.Header.Set("Accept", "application/json, text/plain, */*")
	assert.False(t, IsBrowserRequest(req))

	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	assert.True(t, IsBrowserRequest(req))
}
