package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/cvortex/ats-ui-api/internal/errors"
)

// SessionInvalidator discards a session's stored credential. Page handlers
// call it when the upstream declares the credential dead so the next
// navigation starts clean at login.
type SessionInvalidator interface {
	Invalidate(ctx context.Context, sessionID string) error
}

// failRequest renders an upstream or service error. Unauthorized results
// additionally tear the session down: once the remote API rejects the
// bearer token there is nothing left worth keeping.
func failRequest(w http.ResponseWriter, r *http.Request, inv SessionInvalidator, err error) {
	if apperrors.IsUnauthorized(err) || apperrors.IsInvalidToken(err) {
		invalidateSession(r, inv)
	}
	WriteAppError(w, err)
}

func invalidateSession(r *http.Request, inv SessionInvalidator) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok || inv == nil {
		return
	}
	if err := inv.Invalidate(r.Context(), session.ID); err != nil {
		slog.Default().WarnContext(r.Context(), "session invalidation failed",
			"session_id", session.ID, "error", err)
	}
}

// pathID parses a numeric path segment registered with the given wildcard name.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Validation("Invalid " + name)
	}
	return id, nil
}

// queryStatus reads the required ?status= parameter, uppercased as the
// upstream expects. The validity of the value is checked by the caller
// against its own status set.
func queryStatus(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("status")))
}
