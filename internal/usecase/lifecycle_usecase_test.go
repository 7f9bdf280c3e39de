package usecase

import (
	"errors"
	"testing"

	"claimflow/internal/domain/entities"
)

func TestClaimLifecycle_TransitionTable(t *testing.T) {
	l := NewClaimLifecycle()

	legal := []struct {
		from, to entities.ClaimStatus
	}{
		{entities.ClaimStatusDraft, entities.ClaimStatusSubmitted},
		{entities.ClaimStatusDraft, entities.ClaimStatusCancelled},
		{entities.ClaimStatusSubmitted, entities.ClaimStatusProcessing},
		{entities.ClaimStatusSubmitted, entities.ClaimStatusCancelled},
		{entities.ClaimStatusProcessing, entities.ClaimStatusApproved},
		{entities.ClaimStatusProcessing, entities.ClaimStatusDenied},
		{entities.ClaimStatusProcessing, entities.ClaimStatusRejected},
		{entities.ClaimStatusApproved, entities.ClaimStatusPaid},
		{entities.ClaimStatusDenied, entities.ClaimStatusAppealed},
		{entities.ClaimStatusAppealed, entities.ClaimStatusSubmitted},
		{entities.ClaimStatusRejected, entities.ClaimStatusSubmitted},
	}
	legalSet := map[[2]entities.ClaimStatus]bool{}
	for _, tr := range legal {
		legalSet[[2]entities.ClaimStatus{tr.from, tr.to}] = true
		if !l.CanTransition(tr.from, tr.to) {
			t.Fatalf("expected %s -> %s to be legal", tr.from, tr.to)
		}
	}

	all := []entities.ClaimStatus{
		entities.ClaimStatusDraft, entities.ClaimStatusSubmitted, entities.ClaimStatusProcessing,
		entities.ClaimStatusApproved, entities.ClaimStatusDenied, entities.ClaimStatusRejected,
		entities.ClaimStatusAppealed, entities.ClaimStatusPaid, entities.ClaimStatusCancelled,
	}
	for _, from := range all {
		for _, to := range all {
			if legalSet[[2]entities.ClaimStatus{from, to}] {
				continue
			}
			if l.CanTransition(from, to) {
				t.Fatalf("expected %s -> %s to be illegal", from, to)
			}
		}
	}
}

func TestClaimLifecycle_TerminalStates(t *testing.T) {
	for _, s := range []entities.ClaimStatus{entities.ClaimStatusPaid, entities.ClaimStatusCancelled} {
		if !s.IsTerminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
	}
	if entities.ClaimStatusRejected.IsTerminal() {
		t.Fatalf("rejected permits resubmission, must not be terminal")
	}
}

func TestClaimLifecycle_CanResubmit(t *testing.T) {
	l := NewClaimLifecycle()

	if !l.CanResubmit(entities.ClaimStatusDraft) {
		t.Fatalf("expected draft to be resubmittable")
	}
	if !l.CanResubmit(entities.ClaimStatusRejected) {
		t.Fatalf("expected rejected to be resubmittable")
	}
	for _, s := range []entities.ClaimStatus{
		entities.ClaimStatusSubmitted, entities.ClaimStatusProcessing, entities.ClaimStatusApproved,
		entities.ClaimStatusDenied, entities.ClaimStatusAppealed, entities.ClaimStatusPaid,
		entities.ClaimStatusCancelled,
	} {
		if l.CanResubmit(s) {
			t.Fatalf("expected %s not to be resubmittable", s)
		}
	}
}

func TestClaimLifecycle_Transition(t *testing.T) {
	l := NewClaimLifecycle()

	t.Run("legal transition emits one event", func(t *testing.T) {
		c := entities.Claim{ID: "claim-1", Status: entities.ClaimStatusDraft}
		newStatus, event, err := l.Transition(c, entities.ClaimStatusSubmitted, "submitted electronically via Provider A")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if newStatus != entities.ClaimStatusSubmitted {
			t.Fatalf("expected submitted, got %s", newStatus)
		}
		if event.ClaimID != "claim-1" || event.EventType != entities.TimelineEventStatusChanged {
			t.Fatalf("unexpected event: %+v", event)
		}
		if event.PreviousStatus != entities.ClaimStatusDraft || event.NewStatus != entities.ClaimStatusSubmitted {
			t.Fatalf("event must record previous and new status: %+v", event)
		}
		if event.Description != "submitted electronically via Provider A" {
			t.Fatalf("event must carry the caller's cause, got %q", event.Description)
		}
		if event.ID == "" || event.CreatedAt.IsZero() {
			t.Fatalf("event id/timestamp must be set: %+v", event)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		c := entities.Claim{ID: "claim-1", Status: entities.ClaimStatusSubmitted}
		_, _, err := l.Transition(c, entities.ClaimStatusPaid, "skip ahead")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		c := entities.Claim{ID: "claim-1", Status: entities.ClaimStatusDraft}
		_, _, err := l.Transition(c, entities.ClaimStatus("archived"), "bogus")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})
}
