package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/cvortex/ats-ui-api/internal/domain/auth"
	apperrors "github.com/cvortex/ats-ui-api/internal/errors"
	"github.com/cvortex/ats-ui-api/internal/ports"
)

// SessionResolver resolves a session cookie value into a live session.
// Resolution fails with ports.ErrNoCredential when nothing is stored and
// with domainauth.ErrInvalidToken when the stored credential cannot be
// decoded (in which case the resolver has already discarded it).
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*domainauth.Session, error)
}

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRoles returns a middleware guarding a route group to the given
// roles. Resolution has three outcomes:
//
//   - resolved and the role is allowed: the session is attached to the
//     request context and the handler runs
//   - no credential, or one that no longer decodes: the caller is sent to
//     login (the unusable credential is already gone by then)
//   - resolved but the role is not allowed: the caller is sent to login as
//     well, though the credential stays stored so their own area keeps
//     working in other tabs
func RequireRoles(resolver SessionResolver, roles ...domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := resolveSession(r, resolver)
			if err != nil {
				denyUnauthenticated(w, r, err)
				return
			}

			if !roleAllowed(session.Role, roles) {
				denyWrongRole(w, r)
				return
			}

			ctx := SetSessionInContext(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolveSession reads the session cookie and resolves it through the auth
// service. A missing cookie maps onto ports.ErrNoCredential so callers see
// one error for "not logged in".
func resolveSession(r *http.Request, resolver SessionResolver) (*domainauth.Session, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, ports.ErrNoCredential
	}
	return resolver.Resolve(r.Context(), cookie.Value)
}

func roleAllowed(role domainauth.Role, allowed []domainauth.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

func denyUnauthenticated(w http.ResponseWriter, r *http.Request, err error) {
	if IsBrowserRequest(r) {
		redirectToLogin(w, r)
		return
	}
	if errors.Is(err, domainauth.ErrInvalidToken) {
		WriteAppError(w, apperrors.Unauthorized(msgSessionExpired))
		return
	}
	WriteAppError(w, apperrors.Unauthorized(msgLoginRequired))
}

// denyWrongRole answers a valid session asking for another role's routes.
// It deliberately mirrors the unauthenticated path: there is no access
// denied page, only a trip back through login.
func denyWrongRole(w http.ResponseWriter, r *http.Request) {
	if IsBrowserRequest(r) {
		redirectToLogin(w, r)
		return
	}
	WriteAppError(w, apperrors.Unauthorized(msgLoginRequired))
}

// browserRequestKey is an unexported context key type for browser request detection.
type browserRequestKey struct{}

// BrowserDetection returns a middleware that detects browser navigations vs
// API requests. It sets a context value used by the auth guard to decide
// between an HTTP redirect and a JSON error payload.
func BrowserDetection() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isBrowser := isBrowserRequest(r)
			ctx := context.WithValue(r.Context(), browserRequestKey{}, isBrowser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsBrowserRequest returns true if the current request is from a browser navigation.
func IsBrowserRequest(r *http.Request) bool {
	if val := r.Context().Value(browserRequestKey{}); val != nil {
		if isBrowser, ok := val.(bool); ok {
			return isBrowser
		}
	}
	// Fallback to direct detection if middleware wasn't used
	return isBrowserRequest(r)
}

// isBrowserRequest reports whether the request is a browser navigation.
// Browsers advertise text/html on address-bar navigations; fetch() calls
// and non-browser clients do not, and get JSON errors instead of redirects.
func isBrowserRequest(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// redirectToLogin redirects browser requests to the login page with the current URL as redirect_uri.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirectPath := safeRedirectPath(r.URL.RequestURI())
	if redirectPath == "" {
		redirectPath = "/"
	}
	loginURL := loginPath + "?redirect_uri=" + url.QueryEscape(redirectPath)
	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

// safeRedirectPath accepts only same-app relative paths: must start with a
// single "/" and parse without a scheme or host. Anything else collapses to "/".
func safeRedirectPath(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	return raw
}
