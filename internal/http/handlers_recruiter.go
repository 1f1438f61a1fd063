package httpx

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/cvortex/ats-ui-api/internal/domain/auth"
	"github.com/cvortex/ats-ui-api/internal/domain/model"
	apperrors "github.com/cvortex/ats-ui-api/internal/errors"
	"github.com/cvortex/ats-ui-api/internal/ports"
)

// applicantFetchLimit bounds concurrent applicant fetches during the
// all-jobs aggregation so a recruiter with many postings doesn't stampede
// the upstream.
const applicantFetchLimit = 4

// RecruiterHandlers serves the recruiter pages: dashboard, job management,
// and applicant review.
type RecruiterHandlers struct {
	Upstream ports.Upstream
	Auth     SessionInvalidator
	Logger   *slog.Logger
}

func (h *RecruiterHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Dashboard serves the recruiter landing page data.
// GET /api/recruiter/dashboard.
func (h *RecruiterHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var (
		profile model.Profile
		jobs    []model.Job
		jobsErr error
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		profile, err = h.Upstream.GetProfile(ctx, session.Token, domainauth.RoleRecruiter)
		return err
	})
	g.Go(func() error {
		jobs, jobsErr = h.Upstream.ListRecruiterJobs(ctx, session.Token)
		if apperrors.IsUnauthorized(jobsErr) {
			return jobsErr
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}

	open, closed := 0, 0
	for _, job := range jobs {
		if job.Status == model.JobStatusClosed {
			closed++
		} else {
			open++
		}
	}

	resp := map[string]any{
		"profile": profile,
		"jobs":    jobs,
		"stats": map[string]int{
			"totalJobs":  len(jobs),
			"openJobs":   open,
			"closedJobs": closed,
		},
	}
	if jobsErr != nil {
		h.logger().WarnContext(r.Context(), "recruiter jobs fetch failed", "error", jobsErr)
		resp["jobs"] = []model.Job{}
		resp["jobs_error"] = jobsErr.Error()
	}
	WriteJSON(w, http.StatusOK, resp)
}

// Jobs lists the recruiter's own postings.
// GET /api/recruiter/jobs.
func (h *RecruiterHandlers) Jobs(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	jobs, err := h.Upstream.ListRecruiterJobs(r.Context(), session.Token)
	if err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}
	if jobs == nil {
		jobs = []model.Job{}
	}

	WriteJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// CreateJob posts a new opening.
// POST /api/recruiter/jobs.
func (h *RecruiterHandlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if fields := validateCreateJob(req); len(fields) > 0 {
		WriteAppError(w, apperrors.ValidationFields("Validation failed", fields))
		return
	}

	job, err := h.Upstream.CreateJob(r.Context(), session.Token, req)
	if err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}

	WriteJSON(w, http.StatusCreated, job)
}

// UpdateJobStatus flips a posting between OPEN and CLOSED.
// PATCH /api/recruiter/jobs/{id}/status?status=OPEN|CLOSED.
func (h *RecruiterHandlers) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	jobID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	status := model.JobStatus(queryStatus(r))
	if !status.Valid() {
		WriteAppError(w, apperrors.Validation("Status must be OPEN or CLOSED"))
		return
	}

	job, err := h.Upstream.UpdateJobStatus(r.Context(), session.Token, jobID, status)
	if err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}

	WriteJSON(w, http.StatusOK, job)
}

// Applicants aggregates applicants across all of the recruiter's jobs.
// GET /api/recruiter/applicants.
//
// One job's failed applicant fetch degrades that job to an empty list; the
// rest of the page still renders. A credential rejection anywhere aborts
// the whole aggregation.
func (h *RecruiterHandlers) Applicants(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	jobs, err := h.Upstream.ListRecruiterJobs(r.Context(), session.Token)
	if err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}

	result := make([]model.JobApplicants, len(jobs))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(applicantFetchLimit)
	for i, job := range jobs {
		g.Go(func() error {
			apps, err := h.Upstream.ListApplicants(ctx, session.Token, job.ID)
			if apperrors.IsUnauthorized(err) {
				return err
			}
			if err != nil {
				h.logger().WarnContext(ctx, "applicant fetch failed",
					"job_id", job.ID, "error", err)
				apps = nil
			}
			if apps == nil {
				apps = []model.Applicant{}
			}
			result[i] = model.JobApplicants{Job: job, Applications: apps}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"jobs": result})
}

// JobApplicants lists applicants for one posting.
// GET /api/recruiter/jobs/{id}/applicants.
func (h *RecruiterHandlers) JobApplicants(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	jobID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	apps, err := h.Upstream.ListApplicants(r.Context(), session.Token, jobID)
	if err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}
	if apps == nil {
		apps = []model.Applicant{}
	}

	WriteJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

// UpdateApplicationStatus moves an application along the pipeline.
// PATCH /api/recruiter/applications/{id}/status?status=<status>.
func (h *RecruiterHandlers) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	appID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	status := model.ApplicationStatus(queryStatus(r))
	if !status.Valid() {
		WriteAppError(w, apperrors.Validation("Status must be APPLIED, SHORTLISTED, REJECTED, or HIRED"))
		return
	}

	if err := h.Upstream.UpdateApplicationStatus(r.Context(), session.Token, appID, status); err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": string(status)})
}

// Resume streams a candidate's resume through to the recruiter.
// GET /api/recruiter/resumes/{id}.
func (h *RecruiterHandlers) Resume(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	resumeID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	file, err := h.Upstream.DownloadResume(r.Context(), session.Token, resumeID)
	if err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}
	defer file.Body.Close()

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{
		"filename": file.FileName,
	}))
	if _, err := io.Copy(w, file.Body); err != nil {
		// Headers are out; all we can do is note the broken stream.
		h.logger().WarnContext(r.Context(), "resume stream interrupted",
			"resume_id", resumeID, "error", err)
	}
}

func validateCreateJob(req model.CreateJobRequest) map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(req.Title) == "" {
		fields["title"] = "Title is required"
	}
	if strings.TrimSpace(req.Description) == "" {
		fields["description"] = "Description is required"
	}
	if strings.TrimSpace(req.Location) == "" {
		fields["location"] = "Location is required"
	}
	return fields
}
