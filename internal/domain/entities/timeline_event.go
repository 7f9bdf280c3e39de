package entities

import (
	"fmt"
	"time"
)

// TimelineEventType classifies claim timeline entries. Every lifecycle
// transition appends exactly one status_changed event.

type TimelineEventType string

const (
	TimelineEventStatusChanged TimelineEventType = "status_changed"
)

// ClaimTimelineEvent is an append-only audit entry tied to a claim.
//
// Storage model (DynamoDB):
//   - PK: claim_id
//   - SK: event_sort (RFC3339Nano timestamp + event id, so entries list in
//     insertion order)
//
// Events are never mutated or deleted.
type ClaimTimelineEvent struct {
	ID          string            `json:"id"`
	ClaimID     string            `json:"claim_id"`
	EventType   TimelineEventType `json:"event_type"`
	Description string            `json:"description"`

	PreviousStatus ClaimStatus `json:"previous_status"`
	NewStatus      ClaimStatus `json:"new_status"`

	CreatedAt time.Time `json:"created_at"`
}

// SortKey builds the range key used by the timeline table.
func (e ClaimTimelineEvent) SortKey() string {
	return fmt.Sprintf("%s#%s", e.CreatedAt.UTC().Format(time.RFC3339Nano), e.ID)
}
