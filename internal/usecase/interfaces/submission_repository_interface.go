package interfaces

import (
	"context"

	"claimflow/internal/domain/entities"
)

// ISubmissionRepository abstracts DynamoDB persistence for SubmissionRecord.
//
// Records are immutable; DeactivateByClaimID only flips the Active flag on
// superseded records, Delete exists solely for compensating a failed commit.
type ISubmissionRepository interface {
	Save(ctx context.Context, r entities.SubmissionRecord) (entities.SubmissionRecord, error)
	GetByID(ctx context.Context, id string) (entities.SubmissionRecord, error)
	ListByClaimID(ctx context.Context, claimID string) ([]entities.SubmissionRecord, error)
	DeactivateByClaimID(ctx context.Context, claimID string) error
	Delete(ctx context.Context, id string) error
}
