package response

import "github.com/hireflow/screening/internal/model"

// ScreeningResult is the /candidate_screening response body. Exactly one of
// CandidateFitSummary (shortlisted) or RejectionEmail (either rejection
// branch) is set.
type ScreeningResult struct {
	Message             string              `json:"message"`
	Status              string              `json:"status"`
	Score               int                 `json:"score"`
	CandidateFitSummary string              `json:"candidate_fit_summary,omitempty"`
	RejectionEmail      *model.Notification `json:"rejection_email,omitempty"`
}

// Summary is the /jd_summarize response body.
type Summary struct {
	Summary string `json:"summary"`
}

// Error is the JSON error body shared by all endpoints.
type Error struct {
	Error string `json:"error"`
}
