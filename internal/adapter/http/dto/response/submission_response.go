package response

import (
	"time"

	"claimflow/internal/domain/entities"
	"claimflow/internal/usecase"
)

type SubmissionRecordResponse struct {
	ID                      string    `json:"id"`
	ClaimID                 string    `json:"claim_id"`
	Method                  string    `json:"method"`
	ProviderName            string    `json:"provider_name,omitempty"`
	ConfirmationNumber      string    `json:"confirmation_number,omitempty"`
	TrackingNumber          string    `json:"tracking_number,omitempty"`
	FallbackUsed            bool      `json:"fallback_used"`
	FallbackDocumentID      string    `json:"fallback_document_id,omitempty"`
	FallbackDocumentLocator string    `json:"fallback_document_locator,omitempty"`
	Active                  bool      `json:"active"`
	SubmittedAt             time.Time `json:"submitted_at"`
}

func FromSubmissionRecord(r entities.SubmissionRecord) SubmissionRecordResponse {
	return SubmissionRecordResponse{
		ID:                      r.ID,
		ClaimID:                 r.ClaimID,
		Method:                  string(r.Method),
		ProviderName:            r.ProviderName,
		ConfirmationNumber:      r.ConfirmationNumber,
		TrackingNumber:          r.TrackingNumber,
		FallbackUsed:            r.FallbackUsed,
		FallbackDocumentID:      r.FallbackDocumentID,
		FallbackDocumentLocator: r.FallbackDocumentLocator,
		Active:                  r.Active,
		SubmittedAt:             r.SubmittedAt,
	}
}

func FromSubmissionRecords(records []entities.SubmissionRecord) []SubmissionRecordResponse {
	out := make([]SubmissionRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromSubmissionRecord(r))
	}
	return out
}

type ProviderAttemptResponse struct {
	Provider string `json:"provider"`
	Outcome  string `json:"outcome"`
	Reason   string `json:"reason,omitempty"`
}

func FromProviderAttempts(attempts []usecase.ProviderAttempt) []ProviderAttemptResponse {
	out := make([]ProviderAttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, ProviderAttemptResponse{
			Provider: a.Provider,
			Outcome:  string(a.Outcome),
			Reason:   a.Reason,
		})
	}
	return out
}

// SubmitClaimResponse is the success body of POST /claims/{claim_id}/submit.
type SubmitClaimResponse struct {
	Claim    ClaimResponse             `json:"claim"`
	Record   SubmissionRecordResponse  `json:"submission"`
	Attempts []ProviderAttemptResponse `json:"attempts,omitempty"`
}

func FromSubmissionOutcome(out usecase.SubmissionOutcome) SubmitClaimResponse {
	return SubmitClaimResponse{
		Claim:    FromClaim(out.Claim),
		Record:   FromSubmissionRecord(out.Record),
		Attempts: FromProviderAttempts(out.Attempts),
	}
}

// SubmissionStatusResponse is the body of GET /claims/{claim_id}/submission-status.
type SubmissionStatusResponse struct {
	ClaimID          string                    `json:"claim_id"`
	Status           string                    `json:"status"`
	CanResubmit      bool                      `json:"can_resubmit"`
	ActiveSubmission *SubmissionRecordResponse `json:"active_submission,omitempty"`
}

func FromSubmissionStatus(s usecase.SubmissionStatus) SubmissionStatusResponse {
	resp := SubmissionStatusResponse{
		ClaimID:     s.ClaimID,
		Status:      string(s.Status),
		CanResubmit: s.CanResubmit,
	}
	if s.ActiveSubmission != nil {
		r := FromSubmissionRecord(*s.ActiveSubmission)
		resp.ActiveSubmission = &r
	}
	return resp
}
