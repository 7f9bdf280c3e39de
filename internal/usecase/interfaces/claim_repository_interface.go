package interfaces

import (
	"context"

	"claimflow/internal/domain/entities"
)

// IClaimRepository abstracts DynamoDB persistence for Claim.
//
// The claims-service must be able to:
//   - create a draft claim
//   - load a claim by id (and list by patient)
//   - move a claim's status with a cause string, returning the updated row
//     so callers can re-verify post-write state
type IClaimRepository interface {
	Create(ctx context.Context, c entities.Claim) (entities.Claim, error)
	GetByID(ctx context.Context, id string) (entities.Claim, error)
	ListByPatientID(ctx context.Context, patientID string) ([]entities.Claim, error)
	UpdateStatus(ctx context.Context, id string, status entities.ClaimStatus, cause string) (entities.Claim, error)
	UpdateDenial(ctx context.Context, id string, denialReason string) (entities.Claim, error)
	UpdatePaidAmount(ctx context.Context, id string, paidAmountCents int64) (entities.Claim, error)
}
