package httpx

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/cvortex/ats-ui-api/internal/domain/auth"
	"github.com/cvortex/ats-ui-api/internal/domain/model"
	apperrors "github.com/cvortex/ats-ui-api/internal/errors"
	"github.com/cvortex/ats-ui-api/internal/ports"
)

// CandidateHandlers serves the candidate pages: dashboard, job browsing,
// applying, and the applications list.
type CandidateHandlers struct {
	Upstream      ports.Upstream
	Auth          SessionInvalidator
	MaxResumeSize int64
	Logger        *slog.Logger
}

func (h *CandidateHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Dashboard serves the candidate landing page data.
// GET /api/candidate/dashboard.
//
// Profile and open jobs are fetched concurrently. Only a failed profile
// fetch fails the whole page; a jobs failure degrades to an inline error,
// unless the upstream rejected the credential, which always wins.
func (h *CandidateHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var (
		profile model.Profile
		jobs    []model.Job
		jobsErr error
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		profile, err = h.Upstream.GetProfile(ctx, session.Token, domainauth.RoleCandidate)
		return err
	})
	g.Go(func() error {
		jobs, jobsErr = h.Upstream.ListCandidateJobs(ctx, session.Token)
		if apperrors.IsUnauthorized(jobsErr) {
			return jobsErr
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}

	resp := map[string]any{
		"profile": profile,
		"jobs":    openJobs(jobs),
	}
	if jobsErr != nil {
		h.logger().WarnContext(r.Context(), "jobs fetch failed", "error", jobsErr)
		resp["jobs"] = []model.Job{}
		resp["jobs_error"] = jobsErr.Error()
	}
	WriteJSON(w, http.StatusOK, resp)
}

// Jobs lists open postings, optionally filtered by a free-text query.
// GET /api/candidate/jobs?q=<text>.
func (h *CandidateHandlers) Jobs(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	jobs, err := h.Upstream.ListCandidateJobs(r.Context(), session.Token)
	if err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	filtered := make([]model.Job, 0, len(jobs))
	for _, job := range openJobs(jobs) {
		if job.MatchesQuery(q) {
			filtered = append(filtered, job)
		}
	}

	WriteJSON(w, http.StatusOK, map[string]any{"jobs": filtered})
}

// Job serves one posting's detail.
// GET /api/candidate/jobs/{id}.
func (h *CandidateHandlers) Job(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	jobID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	job, err := h.Upstream.GetCandidateJob(r.Context(), session.Token, jobID)
	if err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}

	WriteJSON(w, http.StatusOK, job)
}

// Applications lists the candidate's own applications.
// GET /api/candidate/applications.
func (h *CandidateHandlers) Applications(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	apps, err := h.Upstream.ListApplications(r.Context(), session.Token)
	if err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}
	if apps == nil {
		apps = []model.Application{}
	}

	WriteJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

// Apply submits an application with a resume.
// POST /api/candidate/jobs/{id}/apply, multipart form with a "file" part.
//
// The file is pre-flighted here (PDF only, size cap) before a byte is sent
// upstream, then streamed through without buffering the whole resume.
func (h *CandidateHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	jobID, err := pathID(r, "id")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	// Multipart framing overhead on top of the resume itself.
	const multipartSlack = 64 << 10
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxResumeSize+multipartSlack)

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteAppError(w, apperrors.Validation("Please select a resume"))
		return
	}
	defer file.Close()

	if err := h.checkResume(header.Filename, header.Size); err != nil {
		WriteAppError(w, err)
		return
	}

	app, err := h.Upstream.SubmitApplication(r.Context(), session.Token, ports.SubmitApplicationInput{
		JobID:       jobID,
		FileName:    header.Filename,
		ContentType: "application/pdf",
		File:        file,
	})
	if err != nil {
		failRequest(w, r, h.Auth, err)
		return
	}

	WriteJSON(w, http.StatusCreated, app)
}

// checkResume enforces the upload constraints the upstream would reject
// anyway, so the candidate gets the message without a wasted upload.
func (h *CandidateHandlers) checkResume(filename string, size int64) error {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return apperrors.Validation("Only PDF files are allowed for resume upload.")
	}
	if h.MaxResumeSize > 0 && size > h.MaxResumeSize {
		return apperrors.Validation("Resume file exceeds the maximum allowed size of 5 MB.")
	}
	return nil
}

// openJobs filters a board listing down to applicable postings.
func openJobs(jobs []model.Job) []model.Job {
	open := make([]model.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.Status == model.JobStatusOpen {
			open = append(open, job)
		}
	}
	return open
}
