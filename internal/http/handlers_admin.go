package httpx

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/cvortex/ats-ui-api/internal/domain/auth"
	"github.com/cvortex/ats-ui-api/internal/domain/model"
	"github.com/cvortex/ats-ui-api/internal/ports"
)

// AdminHandlers serves the read-only admin pages.
type AdminHandlers struct {
	Upstream ports.Upstream
	Auth     SessionInvalidator
}

// Dashboard serves the admin landing page: profile plus platform counters.
// GET /api/admin/dashboard.
func (h *AdminHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var (
		profile model.Profile
		stats   model.AdminStats
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		profile, err = h.Upstream.GetProfile(ctx, session.Token, domainauth.RoleAdmin)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = h.Upstream.AdminStats(ctx, session.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"profile": profile,
		"stats":   stats,
	})
}

// Users lists every account on the platform.
// GET /api/admin/users.
func (h *AdminHandlers) Users(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	users, err := h.Upstream.AdminUsers(r.Context(), session.Token)
	if err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}
	if users == nil {
		users = []model.AdminUser{}
	}

	WriteJSON(w, http.StatusOK, map[string]any{"users": users})
}

// Jobs lists every posting on the platform.
// GET /api/admin/jobs.
func (h *AdminHandlers) Jobs(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	jobs, err := h.Upstream.AdminJobs(r.Context(), session.Token)
	if err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}
	if jobs == nil {
		jobs = []model.AdminJob{}
	}

	WriteJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}
