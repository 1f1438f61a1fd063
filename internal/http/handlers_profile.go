package httpx

import (
	"net/http"
	"strings"

	"github.com/cvortex/ats-ui-api/internal/domain/model"
	apperrors "github.com/cvortex/ats-ui-api/internal/errors"
	"github.com/cvortex/ats-ui-api/internal/ports"
)

// ProfileHandlers serves the profile page for every role; the session's own
// role picks the upstream endpoint, so the same handler mounts under each
// role prefix.
type ProfileHandlers struct {
	Upstream ports.Upstream
	Auth     SessionInvalidator
}

// Get returns the signed-in user's profile, fetched fresh from upstream.
// GET /api/{role}/profile.
func (h *ProfileHandlers) Get(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	profile, err := h.Upstream.GetProfile(r.Context(), session.Token, session.Role)
	if err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}

	WriteJSON(w, http.StatusOK, profile)
}

// Update renames the signed-in user.
// PUT /api/{role}/profile.
func (h *ProfileHandlers) Update(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req model.UpdateProfileRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		WriteAppError(w, apperrors.ValidationFields("Validation failed", map[string]string{
			"name": "Name is required",
		}))
		return
	}

	profile, err := h.Upstream.UpdateProfile(r.Context(), session.Token, session.Role, req)
	if err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}

	WriteJSON(w, http.StatusOK, profile)
}
