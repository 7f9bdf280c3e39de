package response

import (
	"time"

	"claimflow/internal/domain/entities"
)

type TimelineEventResponse struct {
	ID             string    `json:"id"`
	ClaimID        string    `json:"claim_id"`
	EventType      string    `json:"event_type"`
	Description    string    `json:"description,omitempty"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	NewStatus      string    `json:"new_status,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromTimelineEvent(e entities.ClaimTimelineEvent) TimelineEventResponse {
	return TimelineEventResponse{
		ID:             e.ID,
		ClaimID:        e.ClaimID,
		EventType:      string(e.EventType),
		Description:    e.Description,
		PreviousStatus: string(e.PreviousStatus),
		NewStatus:      string(e.NewStatus),
		CreatedAt:      e.CreatedAt,
	}
}

func FromTimelineEvents(events []entities.ClaimTimelineEvent) []TimelineEventResponse {
	out := make([]TimelineEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromTimelineEvent(e))
	}
	return out
}
