package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/cvortex/ats-ui-api/internal/domain/auth"
	"github.com/cvortex/ats-ui-api/internal/ports"
	"github.com/cvortex/ats-ui-api/internal/service"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Auth          *service.AuthService
	Upstream      ports.Upstream
	CookieDomain  string
	CookieSecure  bool
	MaxResumeSize int64
	Logger        *slog.Logger
}

// NewRouter builds the gateway's route table. Pages group under role
// prefixes, each guarded to exactly that role; a valid session of the
// wrong role is bounced to login, not granted partial access.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		CookieSecure: services.CookieSecure,
		Logger:       services.Logger,
	}
	candidateHandlers := &CandidateHandlers{
		Upstream:      services.Upstream,
		Auth:          services.Auth,
		MaxResumeSize: services.MaxResumeSize,
		Logger:        services.Logger,
	}
	recruiterHandlers := &RecruiterHandlers{
		Upstream: services.Upstream,
		Auth:     services.Auth,
		Logger:   services.Logger,
	}
	adminHandlers := &AdminHandlers{Upstream: services.Upstream, Auth: services.Auth}
	profileHandlers := &ProfileHandlers{Upstream: services.Upstream, Auth: services.Auth}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	registerAuthRoutes(mux, authHandlers)
	registerCandidateRoutes(mux, candidateHandlers, profileHandlers, services.Auth)
	registerRecruiterRoutes(mux, recruiterHandlers, profileHandlers, services.Auth)
	registerAdminRoutes(mux, adminHandlers, profileHandlers, services.Auth)

	return BrowserDetection()(mux)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/status", h.Status)
}

func registerCandidateRoutes(mux *http.ServeMux, h *CandidateHandlers, p *ProfileHandlers, auth SessionResolver) {
	guard := RequireRoles(auth, domainauth.RoleCandidate)
	mux.Handle("GET /api/candidate/dashboard", guard(http.HandlerFunc(h.Dashboard)))
	mux.Handle("GET /api/candidate/jobs", guard(http.HandlerFunc(h.Jobs)))
	mux.Handle("GET /api/candidate/jobs/{id}", guard(http.HandlerFunc(h.Job)))
	mux.Handle("POST /api/candidate/jobs/{id}/apply", guard(http.HandlerFunc(h.Apply)))
	mux.Handle("GET /api/candidate/applications", guard(http.HandlerFunc(h.Applications)))
	mux.Handle("GET /api/candidate/profile", guard(http.HandlerFunc(p.Get)))
	mux.Handle("PUT /api/candidate/profile", guard(http.HandlerFunc(p.Update)))
}

func registerRecruiterRoutes(mux *http.ServeMux, h *RecruiterHandlers, p *ProfileHandlers, auth SessionResolver) {
	guard := RequireRoles(auth, domainauth.RoleRecruiter)
	mux.Handle("GET /api/recruiter/dashboard", guard(http.HandlerFunc(h.Dashboard)))
	mux.Handle("GET /api/recruiter/jobs", guard(http.HandlerFunc(h.Jobs)))
	mux.Handle("POST /api/recruiter/jobs", guard(http.HandlerFunc(h.CreateJob)))
	mux.Handle("PATCH /api/recruiter/jobs/{id}/status", guard(http.HandlerFunc(h.UpdateJobStatus)))
	mux.Handle("GET /api/recruiter/applicants", guard(http.HandlerFunc(h.Applicants)))
	mux.Handle("GET /api/recruiter/jobs/{id}/applicants", guard(http.HandlerFunc(h.JobApplicants)))
	mux.Handle("PATCH /api/recruiter/applications/{id}/status", guard(http.HandlerFunc(h.UpdateApplicationStatus)))
	mux.Handle("GET /api/recruiter/resumes/{id}", guard(http.HandlerFunc(h.Resume)))
	mux.Handle("GET /api/recruiter/profile", guard(http.HandlerFunc(p.Get)))
	mux.Handle("PUT /api/recruiter/profile", guard(http.HandlerFunc(p.Update)))
}

func registerAdminRoutes(mux *http.ServeMux, h *AdminHandlers, p *ProfileHandlers, auth SessionResolver) {
	guard := RequireRoles(auth, domainauth.RoleAdmin)
	mux.Handle("GET /api/admin/dashboard", guard(http.HandlerFunc(h.Dashboard)))
	mux.Handle("GET /api/admin/users", guard(http.HandlerFunc(h.Users)))
	mux.Handle("GET /api/admin/jobs", guard(http.HandlerFunc(h.Jobs)))
	mux.Handle("GET /api/admin/profile", guard(http.HandlerFunc(p.Get)))
	mux.Handle("PUT /api/admin/profile", guard(http.HandlerFunc(p.Update)))
}
