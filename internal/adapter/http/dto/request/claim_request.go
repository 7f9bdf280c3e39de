package request

import (
	"errors"
	"strings"
	"time"

	"claimflow/internal/usecase"
)

var ErrInvalidDateOfService = errors.New("invalid date_of_service")

// CreateClaimRequest is the payload for opening a draft claim. Dates come in
// as YYYY-MM-DD; a full RFC3339 timestamp is accepted too.
type CreateClaimRequest struct {
	PatientID     string   `json:"patient_id" binding:"required"`
	AmountCents   int64    `json:"amount_cents"`
	DateOfService string   `json:"date_of_service"`
	ProviderName  string   `json:"provider_name"`
	ProviderNPI   string   `json:"provider_npi"`
	CPTCodes      []string `json:"cpt_codes"`
	ICDCodes      []string `json:"icd_codes"`
	Notes         string   `json:"notes"`
	DocumentRefs  []string `json:"document_refs"`
}

func (r CreateClaimRequest) ResolveDateOfService() (time.Time, error) {
	raw := strings.TrimSpace(r.DateOfService)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDateOfService
}

func (r CreateClaimRequest) ToInput() (usecase.CreateClaimInput, error) {
	dos, err := r.ResolveDateOfService()
	if err != nil {
		return usecase.CreateClaimInput{}, err
	}
	return usecase.CreateClaimInput{
		PatientID:     r.PatientID,
		AmountCents:   r.AmountCents,
		DateOfService: dos,
		ProviderName:  r.ProviderName,
		ProviderNPI:   r.ProviderNPI,
		CPTCodes:      r.CPTCodes,
		ICDCodes:      r.ICDCodes,
		Notes:         r.Notes,
		DocumentRefs:  r.DocumentRefs,
	}, nil
}
