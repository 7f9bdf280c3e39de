package request

import (
	"claimflow/internal/domain/entities"
	"claimflow/internal/usecase"
	"claimflow/internal/usecase/interfaces"
)

// InsurerInfoRequest carries the payer details forwarded to clearinghouses.
type InsurerInfoRequest struct {
	PayerName   string `json:"payer_name"`
	PayerID     string `json:"payer_id"`
	MemberID    string `json:"member_id"`
	GroupNumber string `json:"group_number"`
}

// SubmitClaimRequest is the body of POST /claims/{claim_id}/submit. Method is
// optional; the empty value runs the electronic path with document fallback.
type SubmitClaimRequest struct {
	Method  string             `json:"method"`
	Insurer InsurerInfoRequest `json:"insurer_info"`
}

func (r SubmitClaimRequest) ToInput(claimID string) usecase.SubmitInput {
	return usecase.SubmitInput{
		ClaimID: claimID,
		Method:  entities.SubmissionMethod(r.Method),
		Insurer: interfaces.InsurerInfo{
			PayerName:   r.Insurer.PayerName,
			PayerID:     r.Insurer.PayerID,
			MemberID:    r.Insurer.MemberID,
			GroupNumber: r.Insurer.GroupNumber,
		},
	}
}
