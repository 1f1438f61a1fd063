package httpx

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/cvortex/ats-ui-api/internal/domain/auth"
	"github.com/cvortex/ats-ui-api/internal/domain/model"
	apperrors "github.com/cvortex/ats-ui-api/internal/errors"
	"github.com/cvortex/ats-ui-api/internal/mocks"
	"github.com/cvortex/ats-ui-api/internal/ports"
)

func recruiterSession() *domainauth.Session {
	return &domainauth.Session{ID: "sess-r", Token: "tok-r", Role: domainauth.RoleRecruiter, Email: "r@b.c"}
}

func newRecruiterHandlers(t *testing.T) (*RecruiterHandlers, *mocks.MockUpstream, *recordingInvalidator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	upstream := mocks.NewMockUpstream(ctrl)
	inv := &recordingInvalidator{}
	return &RecruiterHandlers{Upstream: upstream, Auth: inv}, upstream, inv
}

func TestRecruiterDashboard_Stats(t *testing.T) {
	h, upstream, _ := newRecruiterHandlers(t)

	upstream.EXPECT().GetProfile(gomock.Any(), "tok-r", domainauth.RoleRecruiter).
		Return(model.Profile{Name: "Rex"}, nil)
	upstream.EXPECT().ListRecruiterJobs(gomock.Any(), "tok-r").Return([]model.Job{
		{ID: 1, Status: model.JobStatusOpen},
		{ID: 2, Status: model.JobStatusOpen},
		{ID: 3, Status: model.JobStatusClosed},
	}, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/recruiter/dashboard", nil), recruiterSession())
	rec := httptest.NewRecorder()
	h.Dashboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Stats map[string]int `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Stats["totalJobs"])
	assert.Equal(t, 2, body.Stats["openJobs"])
	assert.Equal(t, 1, body.Stats["closedJobs"])
}

func TestRecruiterCreateJob_FieldValidation(t *testing.T) {
	h, _, _ := newRecruiterHandlers(t)

	body := strings.NewReader(`{"title":"  ","description":"","location":"Remote"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/recruiter/jobs", body), recruiterSession())
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.CreateJob(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Fields map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Title is required", resp.Fields["title"])
	assert.Equal(t, "Description is required", resp.Fields["description"])
	assert.NotContains(t, resp.Fields, "location")
}

func TestRecruiterCreateJob_Success(t *testing.T) {
	h, upstream, _ := newRecruiterHandlers(t)

	upstream.EXPECT().CreateJob(gomock.Any(), "tok-r", model.CreateJobRequest{
		Title: "Go Engineer", Description: "Build things", Location: "Remote",
	}).Return(model.Job{ID: 11, Title: "Go Engineer", Status: model.JobStatusOpen}, nil)

	body := strings.NewReader(`{"title":"Go Engineer","description":"Build things","location":"Remote"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/recruiter/jobs", body), recruiterSession())
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.CreateJob(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var job model.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, int64(11), job.ID)
}

func TestRecruiterUpdateJobStatus_RejectsUnknownStatus(t *testing.T) {
	h, _, _ := newRecruiterHandlers(t)

	req := withSession(httptest.NewRequest(http.MethodPatch,
		"/api/recruiter/jobs/5/status?status=PAUSED", nil), recruiterSession())
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	h.UpdateJobStatus(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Status must be OPEN or CLOSED", body["message"])
}

func TestRecruiterUpdateJobStatus_NormalizesCase(t *testing.T) {
	h, upstream, _ := newRecruiterHandlers(t)

	upstream.EXPECT().UpdateJobStatus(gomock.Any(), "tok-r", int64(5), model.JobStatusClosed).
		Return(model.Job{ID: 5, Status: model.JobStatusClosed}, nil)

	req := withSession(httptest.NewRequest(http.MethodPatch,
		"/api/recruiter/jobs/5/status?status=closed", nil), recruiterSession())
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	h.UpdateJobStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecruiterApplicants_ToleratesPerJobFailure(t *testing.T) {
	h, upstream, inv := newRecruiterHandlers(t)

	jobs := []model.Job{
		{ID: 1, Title: "A", Status: model.JobStatusOpen},
		{ID: 2, Title: "B", Status: model.JobStatusOpen},
	}
	upstream.EXPECT().ListRecruiterJobs(gomock.Any(), "tok-r").Return(jobs, nil)
	upstream.EXPECT().ListApplicants(gomock.Any(), "tok-r", int64(1)).
		Return([]model.Applicant{{ApplicationID: 10, Name: "Ada"}}, nil)
	upstream.EXPECT().ListApplicants(gomock.Any(), "tok-r", int64(2)).
		Return(nil, apperrors.ServerError("Server error. Please try again later."))

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/recruiter/applicants", nil), recruiterSession())
	rec := httptest.NewRecorder()
	h.Applicants(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, inv.invalidated)

	var body struct {
		Jobs []model.JobApplicants `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Jobs, 2)
	// Results keep the job order regardless of fetch completion order.
	assert.Equal(t, int64(1), body.Jobs[0].Job.ID)
	require.Len(t, body.Jobs[0].Applications, 1)
	assert.Equal(t, "Ada", body.Jobs[0].Applications[0].Name)
	assert.Equal(t, int64(2), body.Jobs[1].Job.ID)
	assert.Empty(t, body.Jobs[1].Applications)
	assert.NotNil(t, body.Jobs[1].Applications)
}

func TestRecruiterApplicants_UnauthorizedAborts(t *testing.T) {
	h, upstream, inv := newRecruiterHandlers(t)

	upstream.EXPECT().ListRecruiterJobs(gomock.Any(), "tok-r").Return([]model.Job{
		{ID: 1, Status: model.JobStatusOpen},
		{ID: 2, Status: model.JobStatusOpen},
	}, nil)
	upstream.EXPECT().ListApplicants(gomock.Any(), "tok-r", gomock.Any()).
		Return(nil, apperrors.Unauthorized("Unauthorized. Please login again.")).
		MinTimes(1)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/recruiter/applicants", nil), recruiterSession())
	rec := httptest.NewRecorder()
	h.Applicants(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, []string{"sess-r"}, inv.invalidated)
}

func TestRecruiterUpdateApplicationStatus(t *testing.T) {
	h, upstream, _ := newRecruiterHandlers(t)

	upstream.EXPECT().UpdateApplicationStatus(gomock.Any(), "tok-r", int64(8), model.ApplicationStatusShortlisted).
		Return(nil)

	req := withSession(httptest.NewRequest(http.MethodPatch,
		"/api/recruiter/applications/8/status?status=SHORTLISTED", nil), recruiterSession())
	req.SetPathValue("id", "8")
	rec := httptest.NewRecorder()
	h.UpdateApplicationStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"SHORTLISTED"}`, rec.Body.String())
}

func TestRecruiterUpdateApplicationStatus_RejectsUnknown(t *testing.T) {
	h, _, _ := newRecruiterHandlers(t)

	req := withSession(httptest.NewRequest(http.MethodPatch,
		"/api/recruiter/applications/8/status?status=MAYBE", nil), recruiterSession())
	req.SetPathValue("id", "8")
	rec := httptest.NewRecorder()
	h.UpdateApplicationStatus(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Status must be APPLIED, SHORTLISTED, REJECTED, or HIRED", body["message"])
}

func TestRecruiterResume_StreamsWithHeaders(t *testing.T) {
	h, upstream, _ := newRecruiterHandlers(t)

	upstream.EXPECT().DownloadResume(gomock.Any(), "tok-r", int64(4)).
		Return(ports.ResumeFile{
			FileName:    "ada.pdf",
			ContentType: "application/pdf",
			Body:        io.NopCloser(strings.NewReader("%PDF-1.4 payload")),
		}, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/recruiter/resumes/4", nil), recruiterSession())
	req.SetPathValue("id", "4")
	rec := httptest.NewRecorder()
	h.Resume(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename=ada.pdf`)
	assert.Equal(t, "%PDF-1.4 payload", rec.Body.String())
}

func TestRecruiterResume_BadID(t *testing.T) {
	h, _, _ := newRecruiterHandlers(t)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/recruiter/resumes/zero", nil), recruiterSession())
	req.SetPathValue("id", "zero")
	rec := httptest.NewRecorder()
	h.Resume(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
