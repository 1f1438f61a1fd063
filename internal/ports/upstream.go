package ports

import (
	"context"
	"io"

	domainauth "github.com/cvortex/ats-ui-api/internal/domain/auth"
	"github.com/cvortex/ats-ui-api/internal/domain/model"
)

// SubmitApplicationInput groups the multipart fields for applying to a job.
type SubmitApplicationInput struct {
	JobID       int64
	FileName    string
	ContentType string
	File        io.Reader
}

// ResumeFile is an opened resume download stream. Callers own Body and must
// close it.
type ResumeFile struct {
	FileName    string
	ContentType string
	Body        io.ReadCloser
}

// Upstream is the gateway's view of the remote ATS REST API. Every method
// maps to exactly one upstream call; errors come back as *errors.AppError
// with the uniform taxonomy so pages never inspect status codes themselves.
type Upstream interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, in model.LoginRequest) (string, error)
	// Register creates an account. Field-level 400s surface as validation
	// errors with Fields populated.
	Register(ctx context.Context, in model.RegisterRequest) error

	GetProfile(ctx context.Context, token string, role domainauth.Role) (model.Profile, error)
	UpdateProfile(ctx context.Context, token string, role domainauth.Role, in model.UpdateProfileRequest) (model.Profile, error)

	// Candidate surface.
	ListCandidateJobs(ctx context.Context, token string) ([]model.Job, error)
	GetCandidateJob(ctx context.Context, token string, jobID int64) (model.Job, error)
	ListApplications(ctx context.Context, token string) ([]model.Application, error)
	SubmitApplication(ctx context.Context, token string, in SubmitApplicationInput) (model.Application, error)

	// Recruiter surface.
	ListRecruiterJobs(ctx context.Context, token string) ([]model.Job, error)
	CreateJob(ctx context.Context, token string, in model.CreateJobRequest) (model.Job, error)
	UpdateJobStatus(ctx context.Context, token string, jobID int64, status model.JobStatus) (model.Job, error)
	ListApplicants(ctx context.Context, token string, jobID int64) ([]model.Applicant, error)
	UpdateApplicationStatus(ctx context.Context, token string, applicationID int64, status model.ApplicationStatus) error
	DownloadResume(ctx context.Context, token string, resumeID int64) (ResumeFile, error)

	// Admin surface.
	AdminStats(ctx context.Context, token string) (model.AdminStats, error)
	AdminUsers(ctx context.Context, token string) ([]model.AdminUser, error)
	AdminJobs(ctx context.Context, token string) ([]model.AdminJob, error)
}
