package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/cvortex/ats-ui-api/internal/domain/auth"
	"github.com/cvortex/ats-ui-api/internal/domain/model"
	apperrors "github.com/cvortex/ats-ui-api/internal/errors"
	"github.com/cvortex/ats-ui-api/internal/ports"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientOptions{BaseURL: server.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client, server
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(ClientOptions{})
	assert.Error(t, err)
}

func TestLogin_TokenObject(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		io.WriteString(w, `{"token":"jwt-abc"}`)
	}))

	token, err := client.Login(context.Background(), model.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)
}

func TestLogin_BareStringToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `"jwt-bare"`)
	}))

	token, err := client.Login(context.Background(), model.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-bare", token)
}

func TestLogin_BadCredentials(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message":"Bad credentials"}`)
	}))

	_, err := client.Login(context.Background(), model.LoginRequest{Email: "a@b.c", Password: "wrong"})
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, "Unauthorized. Please login again.", err.Error())
}

func TestClassify_Taxonomy(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		check   func(error) bool
		message string
	}{
		{
			name: "401 unauthorized", status: http.StatusUnauthorized,
			check: apperrors.IsUnauthorized, message: "Unauthorized. Please login again.",
		},
		{
			name: "403 unauthorized", status: http.StatusForbidden,
			check: apperrors.IsUnauthorized, message: "Unauthorized. Please login again.",
		},
		{
			name: "404 with message", status: http.StatusNotFound, body: `{"message":"Job not found"}`,
			check: apperrors.IsNotFound, message: "Job not found",
		},
		{
			name: "409 duplicate application", status: http.StatusConflict,
			body:  `{"message":"You have already applied to this job."}`,
			check: apperrors.IsConflict, message: "You have already applied to this job.",
		},
		{
			name: "400 plain", status: http.StatusBadRequest, body: `{"message":"Invalid status"}`,
			check: apperrors.IsValidation, message: "Invalid status",
		},
		{
			name: "500 server error", status: http.StatusInternalServerError, body: `boom`,
			check: apperrors.IsServerError, message: "Server error. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))

			_, err := client.ListCandidateJobs(context.Background(), "token")
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected taxonomy for %v", err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestClassify_ValidationFields(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message":"Validation failed","errors":{"email":"Email is already registered"}}`)
	}))

	err := client.Register(context.Background(), model.RegisterRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, map[string]string{"email": "Email is already registered"}, apperrors.GetFields(err))
}

func TestNetworkError(t *testing.T) {
	client, server := newTestClient(t, http.NewServeMux())
	server.Close()

	_, err := client.ListCandidateJobs(context.Background(), "token")
	assert.True(t, apperrors.IsNetworkError(err))
	assert.Contains(t, err.Error(), "Network error. Please check your connection.")
}

func TestBearerAttached(t *testing.T) {
	var auth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		io.WriteString(w, `[]`)
	}))

	_, err := client.ListCandidateJobs(context.Background(), "my-token")
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", auth)
}

func TestGetCandidateJob_ClosedJobRemapsToNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/candidate/jobs/7", r.URL.Path)
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := client.GetCandidateJob(context.Background(), "token", 7)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "This job is no longer available", err.Error())
}

func TestGetCandidateJob_RevokedTokenStaysUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	// Only a 403 means "job closed"; a 401 is a dead credential and must
	// keep the unauthorized code so the session gets torn down.
	_, err := client.GetCandidateJob(context.Background(), "token", 7)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.False(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Unauthorized. Please login again.", err.Error())
}

func TestGetCandidateJob_Decodes(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"jobsId":42,"title":"Go Engineer","location":"Remote","status":"OPEN"}`)
	}))

	job, err := client.GetCandidateJob(context.Background(), "token", 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), job.ID)
	assert.Equal(t, "Go Engineer", job.Title)
	assert.Equal(t, model.JobStatusOpen, job.Status)
}

func TestSubmitApplication_MultipartFields(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "3", r.FormValue("jobId"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "resume.pdf", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 fake", string(content))

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"applicationId":11,"jobId":3,"status":"APPLIED"}`)
	}))

	app, err := client.SubmitApplication(context.Background(), "token", ports.SubmitApplicationInput{
		JobID:       3,
		FileName:    "resume.pdf",
		ContentType: "application/pdf",
		File:        strings.NewReader("%PDF-1.4 fake"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), app.ID)
	assert.Equal(t, model.ApplicationStatusApplied, app.Status)
}

func TestUpdateJobStatus_QueryParam(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/recruiter/jobs/5/status", r.URL.Path)
		assert.Equal(t, "CLOSED", r.URL.Query().Get("status"))
		io.WriteString(w, `{"jobsId":5,"status":"CLOSED"}`)
	}))

	job, err := client.UpdateJobStatus(context.Background(), "token", 5, model.JobStatusClosed)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusClosed, job.Status)
}

func TestListApplicants_NormalizesShapes(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recruiter/jobs/9/applicants", r.URL.Path)
		io.WriteString(w, `[
			{"applicationId":1,"applicantName":"Ada","applicantEmail":"ada@example.com","status":"SHORTLISTED","resumeId":8},
			{"id":2,"candidateName":"Grace","email":"grace@example.com","contactNumber":"555-0101"},
			{"applicationId":3,"userName":"Linus","userEmail":"linus@example.com","status":"bogus"}
		]`)
	}))

	apps, err := client.ListApplicants(context.Background(), "token", 9)
	require.NoError(t, err)
	require.Len(t, apps, 3)

	assert.Equal(t, int64(1), apps[0].ApplicationID)
	assert.Equal(t, "Ada", apps[0].Name)
	assert.Equal(t, model.ApplicationStatusShortlisted, apps[0].Status)
	assert.Equal(t, int64(8), apps[0].ResumeID)

	assert.Equal(t, int64(2), apps[1].ApplicationID)
	assert.Equal(t, "Grace", apps[1].Name)
	assert.Equal(t, "555-0101", apps[1].Phone)
	assert.Equal(t, model.ApplicationStatusApplied, apps[1].Status)

	assert.Equal(t, "Linus", apps[2].Name)
	assert.Equal(t, "linus@example.com", apps[2].Email)
	// Unknown statuses fall back to the initial pipeline state.
	assert.Equal(t, model.ApplicationStatusApplied, apps[2].Status)
}

func TestDownloadResume_StreamsBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recruiter/resumes/4/download", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="ada-resume.pdf"`)
		io.WriteString(w, "%PDF-1.4 body")
	}))

	file, err := client.DownloadResume(context.Background(), "token", 4)
	require.NoError(t, err)
	defer file.Body.Close()

	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, "ada-resume.pdf", file.FileName)

	content, err := io.ReadAll(file.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 body", string(content))
}

func TestGetProfile_RolePath(t *testing.T) {
	var path string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		io.WriteString(w, `{"name":"Jane","email":"jane@example.com"}`)
	}))

	_, err := client.GetProfile(context.Background(), "token", domainauth.RoleRecruiter)
	require.NoError(t, err)
	assert.Equal(t, "/recruiter/profile", path)
}
