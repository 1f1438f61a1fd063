package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/cvortex/ats-ui-api/internal/domain/auth"
	"github.com/cvortex/ats-ui-api/internal/domain/model"
	apperrors "github.com/cvortex/ats-ui-api/internal/errors"
	"github.com/cvortex/ats-ui-api/internal/mocks"
)

func adminSession() *domainauth.Session {
	return &domainauth.Session{ID: "sess-a", Token: "tok-a", Role: domainauth.RoleAdmin, Email: "admin@b.c"}
}

func newAdminHandlers(t *testing.T) (*AdminHandlers, *mocks.MockUpstream, *recordingInvalidator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	upstream := mocks.NewMockUpstream(ctrl)
	inv := &recordingInvalidator{}
	return &AdminHandlers{Upstream: upstream, Auth: inv}, upstream, inv
}

func TestAdminDashboard(t *testing.T) {
	h, upstream, _ := newAdminHandlers(t)

	upstream.EXPECT().GetProfile(gomock.Any(), "tok-a", domainauth.RoleAdmin).
		Return(model.Profile{Name: "Root"}, nil)
	upstream.EXPECT().AdminStats(gomock.Any(), "tok-a").
		Return(model.AdminStats{TotalUsers: 42, TotalJobs: 7, OpenJobs: 5}, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil), adminSession())
	rec := httptest.NewRecorder()
	h.Dashboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Stats model.AdminStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.Stats.TotalUsers)
}

func TestAdminDashboard_StatsFailureFails(t *testing.T) {
	h, upstream, _ := newAdminHandlers(t)

	upstream.EXPECT().GetProfile(gomock.Any(), "tok-a", domainauth.RoleAdmin).
		Return(model.Profile{Name: "Root"}, nil).AnyTimes()
	upstream.EXPECT().AdminStats(gomock.Any(), "tok-a").
		Return(model.AdminStats{}, apperrors.ServerError("Server error. Please try again later."))

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil), adminSession())
	rec := httptest.NewRecorder()
	h.Dashboard(rec, req)

	// Unlike the candidate and recruiter pages, the admin dashboard has no
	// degraded rendering; both fetches must succeed.
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAdminUsers_EmptyNotNull(t *testing.T) {
	h, upstream, _ := newAdminHandlers(t)

	upstream.EXPECT().AdminUsers(gomock.Any(), "tok-a").Return(nil, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/admin/users", nil), adminSession())
	rec := httptest.NewRecorder()
	h.Users(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"users":[]}`, rec.Body.String())
}

func TestAdminJobs_UnauthorizedInvalidates(t *testing.T) {
	h, upstream, inv := newAdminHandlers(t)

	upstream.EXPECT().AdminJobs(gomock.Any(), "tok-a").
		Return(nil, apperrors.Unauthorized("Unauthorized. Please login again."))

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/admin/jobs", nil), adminSession())
	rec := httptest.NewRecorder()
	h.Jobs(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, []string{"sess-a"}, inv.invalidated)
}
