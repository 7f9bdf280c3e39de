package usecase

import (
	"errors"
	"fmt"
	"time"

	"claimflow/internal/domain/entities"

	"github.com/google/uuid"
)

var ErrIllegalTransition = errors.New("illegal claim status transition")

// ClaimLifecycle owns the legal status transitions of a claim. It is pure
// decision logic: Transition validates against the table and produces the
// timeline event; persisting both is the caller's job.
type ClaimLifecycle struct{}

func NewClaimLifecycle() *ClaimLifecycle {
	return &ClaimLifecycle{}
}

// CanTransition reports whether requested is a direct successor of current.
func (l *ClaimLifecycle) CanTransition(current, requested entities.ClaimStatus) bool {
	return current.CanTransitionTo(requested)
}

// CanResubmit reports whether a new submission attempt sequence may start.
// True exactly for draft and rejected.
func (l *ClaimLifecycle) CanResubmit(status entities.ClaimStatus) bool {
	return entities.CanResubmit(status)
}

// Transition validates the requested status change and returns the new status
// together with exactly one timeline event recording previous and new status
// plus the caller-supplied cause.
func (l *ClaimLifecycle) Transition(c entities.Claim, requested entities.ClaimStatus, cause string) (entities.ClaimStatus, entities.ClaimTimelineEvent, error) {
	if !requested.IsValid() {
		return c.Status, entities.ClaimTimelineEvent{},
			fmt.Errorf("%w: unknown status %q", ErrIllegalTransition, requested)
	}
	if !l.CanTransition(c.Status, requested) {
		return c.Status, entities.ClaimTimelineEvent{},
			fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, c.Status, requested)
	}

	event := entities.ClaimTimelineEvent{
		ID:             uuid.NewString(),
		ClaimID:        c.ID,
		EventType:      entities.TimelineEventStatusChanged,
		Description:    cause,
		PreviousStatus: c.Status,
		NewStatus:      requested,
		CreatedAt:      time.Now().UTC(),
	}
	return requested, event, nil
}
