package entities

import "time"

// ClaimStatus represents the lifecycle state of an insurance claim.
//
// Domain notes:
//   - The claims-service is the source of truth for claim state.
//   - Transitions are enforced centrally by the lifecycle use case; nothing
//     else writes Status.
//   - "rejected" is a payer intake rejection (resubmittable); "denied" is an
//     adjudicated denial (appealable). They are distinct states on purpose.

type ClaimStatus string

const (
	ClaimStatusDraft      ClaimStatus = "draft"
	ClaimStatusSubmitted  ClaimStatus = "submitted"
	ClaimStatusProcessing ClaimStatus = "processing"
	ClaimStatusApproved   ClaimStatus = "approved"
	ClaimStatusDenied     ClaimStatus = "denied"
	ClaimStatusRejected   ClaimStatus = "rejected"
	ClaimStatusAppealed   ClaimStatus = "appealed"
	ClaimStatusPaid       ClaimStatus = "paid"
	ClaimStatusCancelled  ClaimStatus = "cancelled"
)

// claimTransitions is the single authoritative transition table.
var claimTransitions = map[ClaimStatus][]ClaimStatus{
	ClaimStatusDraft:      {ClaimStatusSubmitted, ClaimStatusCancelled},
	ClaimStatusSubmitted:  {ClaimStatusProcessing, ClaimStatusCancelled},
	ClaimStatusProcessing: {ClaimStatusApproved, ClaimStatusDenied, ClaimStatusRejected},
	ClaimStatusApproved:   {ClaimStatusPaid},
	ClaimStatusDenied:     {ClaimStatusAppealed},
	ClaimStatusAppealed:   {ClaimStatusSubmitted},
	ClaimStatusRejected:   {ClaimStatusSubmitted},
	ClaimStatusPaid:       {},
	ClaimStatusCancelled:  {},
}

// IsValid reports whether s is a known claim status.
func (s ClaimStatus) IsValid() bool {
	_, ok := claimTransitions[s]
	return ok
}

// IsTerminal reports whether no further transition is legal from s.
func (s ClaimStatus) IsTerminal() bool {
	next, ok := claimTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether requested is a direct successor of s.
func (s ClaimStatus) CanTransitionTo(requested ClaimStatus) bool {
	for _, next := range claimTransitions[s] {
		if next == requested {
			return true
		}
	}
	return false
}

// NextStatuses returns the legal successors of s in table order.
func (s ClaimStatus) NextStatuses() []ClaimStatus {
	next := claimTransitions[s]
	out := make([]ClaimStatus, len(next))
	copy(out, next)
	return out
}

// CanResubmit reports whether a claim in status s may start a new submission
// attempt sequence. True exactly for draft and rejected.
func CanResubmit(s ClaimStatus) bool {
	return s == ClaimStatusDraft || s == ClaimStatusRejected
}

// Claim is the insurance claim persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (patient_id-index): patient_id
//
// Monetary representation:
//   - AmountCents and PaidAmountCents are integer minor-currency units (cents).
//     Never floating point.
type Claim struct {
	ID        string      `json:"id"`
	PatientID string      `json:"patient_id"`
	Status    ClaimStatus `json:"status"`

	AmountCents   int64     `json:"amount_cents"`
	DateOfService time.Time `json:"date_of_service"`
	ProviderName  string    `json:"provider_name"`
	ProviderNPI   string    `json:"provider_npi,omitempty"`

	CPTCodes     []string `json:"cpt_codes"`
	ICDCodes     []string `json:"icd_codes"`
	Notes        string   `json:"notes,omitempty"`
	DocumentRefs []string `json:"document_refs,omitempty"`

	ExternalClaimNumber string `json:"external_claim_number,omitempty"`
	DenialReason        string `json:"denial_reason,omitempty"`
	PaidAmountCents     int64  `json:"paid_amount_cents,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
