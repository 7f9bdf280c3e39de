package interfaces

import (
	"context"
	"time"

	"claimflow/internal/domain/entities"
)

// SubmissionEvent is the best-effort notification emitted after the
// orchestrator's own commit. Delivery failure never affects the submission
// result.
type SubmissionEvent struct {
	Type         string                    `json:"type"` // submission.completed | submission.failed
	ClaimID      string                    `json:"claim_id"`
	SubmissionID string                    `json:"submission_id,omitempty"`
	Method       entities.SubmissionMethod `json:"method,omitempty"`
	Status       entities.ClaimStatus      `json:"status"`
	Attempts     []AttemptSummary          `json:"attempts,omitempty"`
	OccurredAt   time.Time                 `json:"occurred_at"`
}

// AttemptSummary is one provider attempt as reported to audit collaborators.
type AttemptSummary struct {
	Provider string `json:"provider"`
	Outcome  string `json:"outcome"`
	Reason   string `json:"reason,omitempty"`
}

// ISubmissionNotifier delivers submission events to audit/notification
// collaborators. Implementations must be best-effort and never block the
// caller beyond their own internal budget.
type ISubmissionNotifier interface {
	Notify(ctx context.Context, event SubmissionEvent)
}
