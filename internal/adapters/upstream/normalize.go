package upstream

import (
	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/cvortex/ats-ui-api/internal/domain/model"
)

// Upstream deployments have served applicant rows under several field
// spellings (applicantName vs candidateName vs name, resumeId vs resume_id,
// and so on). Each canonical field is resolved through one ordered fallback
// expression here, once, at the gateway boundary — consumers only ever see
// model.Applicant.
const (
	exprApplicationID = "applicationId || id"
	exprCandidateID   = "candidateId || candidate_id || userId || user_id"
	exprName          = "applicantName || name || candidateName || userName"
	exprEmail         = "applicantEmail || email || candidateEmail || userEmail"
	exprPhone         = "applicantPhone || phone || candidatePhone || phoneNumber || contactNumber"
	exprStatus        = "status || applicationStatus"
	exprResumeID      = "resumeId || resume_id || resumeID"
	exprResumeName    = "resumeFileName || resume_file_name || fileName"
	exprCoverLetter   = "coverLetter || cover_letter || message"
	exprAppliedAt     = "appliedAt || applied_at || createdAt || applicationDate || submittedAt"
)

// NormalizeApplicants adapts raw upstream applicant rows into the canonical
// shape. Rows missing a status default to APPLIED, matching the upstream's
// initial state.
func NormalizeApplicants(rows []map[string]any) []model.Applicant {
	out := make([]model.Applicant, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalizeApplicant(row))
	}
	return out
}

func normalizeApplicant(row map[string]any) model.Applicant {
	a := model.Applicant{
		ApplicationID: searchInt(row, exprApplicationID),
		CandidateID:   searchInt(row, exprCandidateID),
		Name:          searchString(row, exprName),
		Email:         searchString(row, exprEmail),
		Phone:         searchString(row, exprPhone),
		ResumeID:      searchInt(row, exprResumeID),
		ResumeName:    searchString(row, exprResumeName),
		CoverLetter:   searchString(row, exprCoverLetter),
		AppliedAt:     searchString(row, exprAppliedAt),
	}

	a.Status = model.ApplicationStatus(searchString(row, exprStatus))
	if !a.Status.Valid() {
		a.Status = model.ApplicationStatusApplied
	}
	return a
}

func searchString(row map[string]any, expr string) string {
	v, err := jmespath.Search(expr, row)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func searchInt(row map[string]any, expr string) int64 {
	v, err := jmespath.Search(expr, row)
	if err != nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	}
	return 0
}
