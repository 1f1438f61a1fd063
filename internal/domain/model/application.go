package model

import (
	"strings"
	"time"
)

// ApplicationStatus tracks an application through the hiring pipeline.
// Created as APPLIED by a candidate; mutated afterwards only by the owning
// recruiter.
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "APPLIED"
	ApplicationStatusShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"
	ApplicationStatusHired       ApplicationStatus = "HIRED"
)

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusHired:
		return true
	}
	return false
}

// Application is one entry on the candidate's applications list, combining
// application, job, and resume presence as the upstream serves it.
type Application struct {
	ID             int64             `json:"applicationId"`
	JobID          int64             `json:"jobId"`
	JobTitle       string            `json:"jobTitle"`
	JobLocation    string            `json:"jobLocation,omitempty"`
	RecruiterName  string            `json:"recruiterName,omitempty"`
	Status         ApplicationStatus `json:"status"`
	ResumeUploaded bool              `json:"resumeUploaded"`
	AppliedAt      *time.Time        `json:"appliedAt,omitempty"`
}

// Applicant is the canonical shape for one application as seen by a
// recruiter. Upstream deployments have served this row under several field
// spellings; the upstream adapter normalizes them all into this one shape so
// no page has to re-guess field names.
type Applicant struct {
	ApplicationID int64             `json:"applicationId"`
	CandidateID   int64             `json:"candidateId,omitempty"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone,omitempty"`
	Status        ApplicationStatus `json:"status"`
	ResumeID      int64             `json:"resumeId,omitempty"`
	ResumeName    string            `json:"resumeFileName,omitempty"`
	CoverLetter   string            `json:"coverLetter,omitempty"`
	AppliedAt     string            `json:"appliedAt,omitempty"`
}

// JobApplicants is a recruiter's job joined with its normalized applicants.
// Built by the recruiter applications page; a failed applicant fetch for one
// job degrades to an empty list rather than failing the page.
type JobApplicants struct {
	Job          Job         `json:"job"`
	Applications []Applicant `json:"applications"`
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
