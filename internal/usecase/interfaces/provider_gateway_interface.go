package interfaces

import (
	"context"
	"time"

	"claimflow/internal/domain/entities"
)

// InsurerInfo is the payer routing information supplied by the caller at
// submission time.
type InsurerInfo struct {
	PayerName   string `json:"payer_name,omitempty"`
	PayerID     string `json:"payer_id,omitempty"`
	MemberID    string `json:"member_id,omitempty"`
	GroupNumber string `json:"group_number,omitempty"`
}

// ClaimPayload is the wire shape sent to a clearinghouse.
//
// SubmissionID is stable across retries of the same attempt sequence so the
// provider side can deduplicate.
type ClaimPayload struct {
	SubmissionID  string      `json:"submission_id"`
	ClaimID       string      `json:"claim_id"`
	PatientID     string      `json:"patient_id"`
	AmountCents   int64       `json:"amount_cents"`
	DateOfService time.Time   `json:"date_of_service"`
	ProviderName  string      `json:"provider_name"`
	ProviderNPI   string      `json:"provider_npi,omitempty"`
	CPTCodes      []string    `json:"cpt_codes"`
	ICDCodes      []string    `json:"icd_codes"`
	Notes         string      `json:"notes,omitempty"`
	Insurer       InsurerInfo `json:"insurer,omitempty"`
}

// NewClaimPayload builds the gateway payload for one claim submission attempt.
func NewClaimPayload(c entities.Claim, submissionID string, insurer InsurerInfo) ClaimPayload {
	return ClaimPayload{
		SubmissionID:  submissionID,
		ClaimID:       c.ID,
		PatientID:     c.PatientID,
		AmountCents:   c.AmountCents,
		DateOfService: c.DateOfService,
		ProviderName:  c.ProviderName,
		ProviderNPI:   c.ProviderNPI,
		CPTCodes:      c.CPTCodes,
		ICDCodes:      c.ICDCodes,
		Notes:         c.Notes,
		Insurer:       insurer,
	}
}

// SubmissionResult is a clearinghouse's answer to one submission attempt.
//
// Retryable distinguishes transient infrastructure failures (worth trying the
// next provider) from data rejections (which would fail identically anywhere).
type SubmissionResult struct {
	Success            bool   `json:"success"`
	ConfirmationNumber string `json:"confirmation_number,omitempty"`
	TrackingNumber     string `json:"tracking_number,omitempty"`
	Retryable          bool   `json:"retryable,omitempty"`
	ErrorCode          string `json:"error_code,omitempty"`
	ErrorMessage       string `json:"error_message,omitempty"`
}

// IProviderGateway abstracts one external clearinghouse.
//
// Submit must honor ctx cancellation/deadline; the orchestrator wraps every
// call in the provider's declared timeout. A non-nil error means the attempt
// could not be classified by the provider (network/transport) and is treated
// as retryable.
type IProviderGateway interface {
	Name() string
	Timeout() time.Duration
	Submit(ctx context.Context, payload ClaimPayload) (SubmissionResult, error)
}
