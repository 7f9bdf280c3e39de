package interfaces

import (
	"context"

	"claimflow/internal/domain/entities"
)

// ITimelineRepository abstracts DynamoDB persistence for ClaimTimelineEvent.
//
// The timeline is append-only: no update or delete operations exist.
type ITimelineRepository interface {
	Append(ctx context.Context, e entities.ClaimTimelineEvent) (entities.ClaimTimelineEvent, error)
	ListByClaimID(ctx context.Context, claimID string) ([]entities.ClaimTimelineEvent, error)
}
