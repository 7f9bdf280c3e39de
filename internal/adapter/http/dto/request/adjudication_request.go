package request

import (
	"claimflow/internal/domain/entities"
	"claimflow/internal/usecase"
)

// AdjudicationRequest is the payer-side status update payload for
// PATCH /claims/{claim_id}/status.
type AdjudicationRequest struct {
	Status          string `json:"status" binding:"required"`
	Cause           string `json:"cause"`
	DenialReason    string `json:"denial_reason"`
	PaidAmountCents int64  `json:"paid_amount_cents"`
}

func (r AdjudicationRequest) ToInput() usecase.AdjudicationInput {
	return usecase.AdjudicationInput{
		Status:          entities.ClaimStatus(r.Status),
		Cause:           r.Cause,
		DenialReason:    r.DenialReason,
		PaidAmountCents: r.PaidAmountCents,
	}
}

// CancelClaimRequest carries the optional cancellation cause.
type CancelClaimRequest struct {
	Cause string `json:"cause"`
}
