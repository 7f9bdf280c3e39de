package entities

import "time"

// SubmissionMethod is how a claim reached the payer side.

type SubmissionMethod string

const (
	SubmissionMethodElectronic SubmissionMethod = "electronic"
	SubmissionMethodDocument   SubmissionMethod = "document"
)

// SubmissionRecord is the immutable record of one submission attempt sequence
// that reached a terminal outcome.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (claim_id-index): claim_id
//
// Records are never mutated after creation; a resubmission writes a fresh
// record and flips Active off on the superseded ones. At most one record per
// claim is Active at a time.
type SubmissionRecord struct {
	ID      string           `json:"id"`
	ClaimID string           `json:"claim_id"`
	Method  SubmissionMethod `json:"method"`

	ProviderName       string `json:"provider_name,omitempty"`
	ConfirmationNumber string `json:"confirmation_number,omitempty"`
	TrackingNumber     string `json:"tracking_number,omitempty"`

	FallbackUsed            bool   `json:"fallback_used"`
	FallbackDocumentID      string `json:"fallback_document_id,omitempty"`
	FallbackDocumentLocator string `json:"fallback_document_locator,omitempty"`

	Active      bool      `json:"active"`
	SubmittedAt time.Time `json:"submitted_at"`
}
