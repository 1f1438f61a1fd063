// Package upstream is the HTTP client for the remote ATS REST API.
// It attaches the bearer credential to every outgoing request, speaks JSON
// (multipart for resume upload), and folds every failure mode into the
// uniform *errors.AppError taxonomy so pages never inspect status codes.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	domainauth "github.com/cvortex/ats-ui-api/internal/domain/auth"
	"github.com/cvortex/ats-ui-api/internal/domain/model"
	apperrors "github.com/cvortex/ats-ui-api/internal/errors"
	"github.com/cvortex/ats-ui-api/internal/ports"
)

// Client talks to the upstream ATS API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOptions holds the dependencies for creating a Client.
type ClientOptions struct {
	BaseURL string
	Timeout time.Duration

	// Optional dependency injection for testing/decoupling
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewClient creates an upstream client with the given options.
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("upstream base URL is required")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

var _ ports.Upstream = (*Client)(nil)

// Login exchanges credentials for a bearer token.
// The upstream has returned both {"token":"..."} and a bare token string
// across its lifetime; both shapes are accepted.
func (c *Client) Login(ctx context.Context, in model.LoginRequest) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/auth/login", "", in)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeNetworkError, "read login response")
	}

	var body model.LoginResponse
	if jsonErr := json.Unmarshal(raw, &body); jsonErr == nil && body.Token != "" {
		return body.Token, nil
	}
	var bare string
	if jsonErr := json.Unmarshal(raw, &bare); jsonErr == nil && bare != "" {
		return bare, nil
	}
	return "", apperrors.ServerError("login response carried no token")
}

func (c *Client) Register(ctx context.Context, in model.RegisterRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/register", "", in, nil)
}

func (c *Client) GetProfile(ctx context.Context, token string, role domainauth.Role) (model.Profile, error) {
	var out model.Profile
	err := c.doJSON(ctx, http.MethodGet, "/"+role.PathSegment()+"/profile", token, nil, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, token string, role domainauth.Role, in model.UpdateProfileRequest) (model.Profile, error) {
	var out model.Profile
	err := c.doJSON(ctx, http.MethodPut, "/"+role.PathSegment()+"/profile", token, in, &out)
	return out, err
}

func (c *Client) ListCandidateJobs(ctx context.Context, token string) ([]model.Job, error) {
	var out []model.Job
	err := c.doJSON(ctx, http.MethodGet, "/candidate/jobs", token, nil, &out)
	return out, err
}

// GetCandidateJob fetches one job's detail. The upstream answers 403 for a
// CLOSED job; for this endpoint that means the posting is gone, not that the
// session is bad, so it must not trip the unauthorized handler. A 401 still
// means a dead credential and passes through untouched.
func (c *Client) GetCandidateJob(ctx context.Context, token string, jobID int64) (model.Job, error) {
	var out model.Job
	err := c.doJSON(ctx, http.MethodGet, "/candidate/jobs/"+formatID(jobID), token, nil, &out)
	if apperrors.IsUnauthorized(err) && apperrors.GetStatus(err) == http.StatusForbidden {
		return model.Job{}, apperrors.NotFound("This job is no longer available")
	}
	return out, err
}

func (c *Client) ListApplications(ctx context.Context, token string) ([]model.Application, error) {
	var out []model.Application
	err := c.doJSON(ctx, http.MethodGet, "/candidate/applications", token, nil, &out)
	return out, err
}

// SubmitApplication posts the multipart application (jobId + file).
func (c *Client) SubmitApplication(ctx context.Context, token string, in ports.SubmitApplicationInput) (model.Application, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("jobId", formatID(in.JobID)); err != nil {
		return model.Application{}, apperrors.Wrap(err, apperrors.ErrCodeServerError, "build multipart body")
	}
	part, err := mw.CreateFormFile("file", in.FileName)
	if err != nil {
		return model.Application{}, apperrors.Wrap(err, apperrors.ErrCodeServerError, "build multipart body")
	}
	if _, err = io.Copy(part, in.File); err != nil {
		return model.Application{}, apperrors.Wrap(err, apperrors.ErrCodeServerError, "copy resume into multipart body")
	}
	if err = mw.Close(); err != nil {
		return model.Application{}, apperrors.Wrap(err, apperrors.ErrCodeServerError, "finish multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/candidate/applications", &buf)
	if err != nil {
		return model.Application{}, apperrors.Wrap(err, apperrors.ErrCodeServerError, "build request")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	setBearer(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Application{}, networkError(err)
	}
	defer resp.Body.Close()

	if err = c.classify(resp); err != nil {
		return model.Application{}, err
	}

	var out model.Application
	if decodeErr := json.NewDecoder(resp.Body).Decode(&out); decodeErr != nil && decodeErr != io.EOF {
		return model.Application{}, apperrors.Wrap(decodeErr, apperrors.ErrCodeServerError, "decode application response")
	}
	return out, nil
}

func (c *Client) ListRecruiterJobs(ctx context.Context, token string) ([]model.Job, error) {
	var out []model.Job
	err := c.doJSON(ctx, http.MethodGet, "/recruiter/jobs", token, nil, &out)
	return out, err
}

func (c *Client) CreateJob(ctx context.Context, token string, in model.CreateJobRequest) (model.Job, error) {
	var out model.Job
	err := c.doJSON(ctx, http.MethodPost, "/recruiter/jobs", token, in, &out)
	return out, err
}

func (c *Client) UpdateJobStatus(ctx context.Context, token string, jobID int64, status model.JobStatus) (model.Job, error) {
	var out model.Job
	path := "/recruiter/jobs/" + formatID(jobID) + "/status?status=" + string(status)
	err := c.doJSON(ctx, http.MethodPut, path, token, nil, &out)
	return out, err
}

func (c *Client) ListApplicants(ctx context.Context, token string, jobID int64) ([]model.Applicant, error) {
	var raw []map[string]any
	path := "/recruiter/jobs/" + formatID(jobID) + "/applicants"
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &raw); err != nil {
		return nil, err
	}
	return NormalizeApplicants(raw), nil
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, token string, applicationID int64, status model.ApplicationStatus) error {
	path := "/recruiter/applications/" + formatID(applicationID) + "/status"
	body := map[string]string{"status": string(status)}
	return c.doJSON(ctx, http.MethodPut, path, token, body, nil)
}

// DownloadResume opens the binary resume stream. The caller owns Body.
func (c *Client) DownloadResume(ctx context.Context, token string, resumeID int64) (ports.ResumeFile, error) {
	resp, err := c.do(ctx, http.MethodGet, "/recruiter/resumes/"+formatID(resumeID)+"/download", token, nil)
	if err != nil {
		return ports.ResumeFile{}, err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}
	return ports.ResumeFile{
		FileName:    dispositionFileName(resp.Header.Get("Content-Disposition")),
		ContentType: contentType,
		Body:        resp.Body,
	}, nil
}

func (c *Client) AdminStats(ctx context.Context, token string) (model.AdminStats, error) {
	var out model.AdminStats
	err := c.doJSON(ctx, http.MethodGet, "/admin/dashboard/stats", token, nil, &out)
	return out, err
}

func (c *Client) AdminUsers(ctx context.Context, token string) ([]model.AdminUser, error) {
	var out []model.AdminUser
	err := c.doJSON(ctx, http.MethodGet, "/admin/users", token, nil, &out)
	return out, err
}

func (c *Client) AdminJobs(ctx context.Context, token string) ([]model.AdminJob, error) {
	var out []model.AdminJob
	err := c.doJSON(ctx, http.MethodGet, "/admin/jobs", token, nil, &out)
	return out, err
}

// do issues one request with an optional JSON body and returns the raw
// response after classification. Callers own resp.Body on success.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeServerError, "encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeServerError, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	setBearer(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkError(err)
	}

	if classifyErr := c.classify(resp); classifyErr != nil {
		resp.Body.Close()
		return nil, classifyErr
	}
	return resp, nil
}

// doJSON issues a request and decodes the JSON response into out (when out
// is non-nil).
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	resp, err := c.do(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil && decodeErr != io.EOF {
		return apperrors.Wrap(decodeErr, apperrors.ErrCodeServerError, "decode upstream response")
	}
	return nil
}

// errorBody is the upstream's error response shape.
type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// classify maps a non-2xx response to the uniform error taxonomy. The
// originating HTTP status rides along on the error for the few callers that
// must tell folded statuses apart. The response body is consumed only on
// error.
func (c *Client) classify(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var body errorBody
	// Best effort: the body may be empty or not JSON at all.
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body)

	var appErr *apperrors.AppError
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		appErr = apperrors.Unauthorized("Unauthorized. Please login again.")
	case resp.StatusCode == http.StatusNotFound:
		appErr = apperrors.NotFound(messageOr(body.Message, "Resource not found"))
	case resp.StatusCode == http.StatusConflict:
		appErr = apperrors.Conflict(messageOr(body.Message, "Conflict with existing data"))
	case resp.StatusCode == http.StatusBadRequest:
		if len(body.Errors) > 0 {
			appErr = apperrors.ValidationFields(messageOr(body.Message, "Validation failed"), body.Errors)
		} else {
			appErr = apperrors.Validation(messageOr(body.Message, "Invalid input"))
		}
	case resp.StatusCode >= 500:
		appErr = apperrors.ServerError("Server error. Please try again later.")
	default:
		appErr = apperrors.ServerError(fmt.Sprintf("unexpected upstream status %d", resp.StatusCode))
	}
	return appErr.WithStatus(resp.StatusCode)
}

func setBearer(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func networkError(err error) *apperrors.AppError {
	return apperrors.Wrap(err, apperrors.ErrCodeNetworkError, "Network error. Please check your connection.")
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func dispositionFileName(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
