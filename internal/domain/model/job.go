// Package model holds canonical shapes for the data the gateway passes
// between the upstream ATS API and its own pages. The upstream owns every
// entity here; the gateway keeps transient copies only.
package model

import "time"

// JobStatus is the open/closed state of a posting. OPEN↔CLOSED is the only
// mutation the gateway drives directly on a job.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
)

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	return s == JobStatusOpen || s == JobStatusClosed
}

// Job is a posting as the upstream returns it. The jobsId field name is the
// upstream's wire contract.
type Job struct {
	ID             int64      `json:"jobsId"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Location       string     `json:"location"`
	Type           string     `json:"type,omitempty"`
	Status         JobStatus  `json:"status"`
	RecruiterName  string     `json:"recruiterName,omitempty"`
	RecruiterEmail string     `json:"recruiterEmail,omitempty"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
}

// CreateJobRequest is the body for posting a new job as a recruiter.
type CreateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type,omitempty"`
}

// MatchesQuery reports whether the job matches a free-text search over
// title, location, recruiter name, and description.
func (j Job) MatchesQuery(q string) bool {
	if q == "" {
		return true
	}
	return containsFold(j.Title, q) ||
		containsFold(j.Location, q) ||
		containsFold(j.RecruiterName, q) ||
		containsFold(j.Description, q)
}
