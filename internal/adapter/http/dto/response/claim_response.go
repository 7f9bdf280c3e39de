package response

import (
	"time"

	"claimflow/internal/domain/entities"
)

type ClaimResponse struct {
	ID                  string    `json:"id"`
	PatientID           string    `json:"patient_id"`
	Status              string    `json:"status"`
	AmountCents         int64     `json:"amount_cents"`
	DateOfService       string    `json:"date_of_service,omitempty"`
	ProviderName        string    `json:"provider_name,omitempty"`
	ProviderNPI         string    `json:"provider_npi,omitempty"`
	CPTCodes            []string  `json:"cpt_codes,omitempty"`
	ICDCodes            []string  `json:"icd_codes,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	DocumentRefs        []string  `json:"document_refs,omitempty"`
	ExternalClaimNumber string    `json:"external_claim_number,omitempty"`
	DenialReason        string    `json:"denial_reason,omitempty"`
	PaidAmountCents     int64     `json:"paid_amount_cents,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromClaim(c entities.Claim) ClaimResponse {
	resp := ClaimResponse{
		ID:                  c.ID,
		PatientID:           c.PatientID,
		Status:              string(c.Status),
		AmountCents:         c.AmountCents,
		ProviderName:        c.ProviderName,
		ProviderNPI:         c.ProviderNPI,
		CPTCodes:            c.CPTCodes,
		ICDCodes:            c.ICDCodes,
		Notes:               c.Notes,
		DocumentRefs:        c.DocumentRefs,
		ExternalClaimNumber: c.ExternalClaimNumber,
		DenialReason:        c.DenialReason,
		PaidAmountCents:     c.PaidAmountCents,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
	if !c.DateOfService.IsZero() {
		resp.DateOfService = c.DateOfService.UTC().Format("2006-01-02")
	}
	return resp
}

func FromClaims(claims []entities.Claim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, FromClaim(c))
	}
	return out
}
