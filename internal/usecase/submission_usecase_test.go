package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"claimflow/internal/domain/entities"
	"claimflow/internal/usecase/interfaces"
	mock_interfaces "claimflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type orchestratorFixture struct {
	claims   *mock_interfaces.MockIClaimRepository
	subs     *mock_interfaces.MockISubmissionRepository
	timeline *mock_interfaces.MockITimelineRepository
	docs     *mock_interfaces.MockIFallbackDocumentGenerator
}

func newOrchestratorFixture(ctrl *gomock.Controller) *orchestratorFixture {
	return &orchestratorFixture{
		claims:   mock_interfaces.NewMockIClaimRepository(ctrl),
		subs:     mock_interfaces.NewMockISubmissionRepository(ctrl),
		timeline: mock_interfaces.NewMockITimelineRepository(ctrl),
		docs:     mock_interfaces.NewMockIFallbackDocumentGenerator(ctrl),
	}
}

func (f *orchestratorFixture) orchestrator(notifier interfaces.ISubmissionNotifier, gateways ...interfaces.IProviderGateway) *SubmissionOrchestrator {
	return NewSubmissionOrchestrator(
		f.claims, f.subs, f.timeline, gateways, f.docs, notifier,
		NewIdempotencyGuard(), NewClaimLifecycle(), nil,
	)
}

func newGateway(ctrl *gomock.Controller, name string) *mock_interfaces.MockIProviderGateway {
	gw := mock_interfaces.NewMockIProviderGateway(ctrl)
	gw.EXPECT().Name().Return(name).AnyTimes()
	gw.EXPECT().Timeout().Return(2 * time.Second).AnyTimes()
	return gw
}

func submittedClaim() entities.Claim {
	c := completeClaim()
	c.Status = entities.ClaimStatusSubmitted
	return c
}

// expectCommit wires the happy-path write sequence.
func (f *orchestratorFixture) expectCommit(t *testing.T, cause string) {
	t.Helper()
	f.subs.EXPECT().DeactivateByClaimID(gomock.Any(), "claim-1").Return(nil)
	f.claims.EXPECT().UpdateStatus(gomock.Any(), "claim-1", entities.ClaimStatusSubmitted, cause).
		Return(submittedClaim(), nil)
	f.subs.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.SubmissionRecord{})).
		DoAndReturn(func(_ context.Context, r entities.SubmissionRecord) (entities.SubmissionRecord, error) {
			if r.ClaimID != "claim-1" || !r.Active || r.ID == "" {
				t.Fatalf("unexpected record: %+v", r)
			}
			return r, nil
		})
	f.timeline.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.ClaimTimelineEvent{})).
		DoAndReturn(func(_ context.Context, e entities.ClaimTimelineEvent) (entities.ClaimTimelineEvent, error) {
			if e.PreviousStatus != entities.ClaimStatusDraft || e.NewStatus != entities.ClaimStatusSubmitted {
				t.Fatalf("unexpected event statuses: %+v", e)
			}
			if e.Description != cause {
				t.Fatalf("expected cause %q, got %q", cause, e.Description)
			}
			return e, nil
		})
}

func TestSubmissionOrchestrator_ElectronicSuccess(t *testing.T) {
	// Scenario: first provider accepts, submission records its confirmation.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	p1 := newGateway(ctrl, "P1")
	p2 := newGateway(ctrl, "P2")

	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(completeClaim(), nil)
	p1.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload interfaces.ClaimPayload) (interfaces.SubmissionResult, error) {
			if payload.ClaimID != "claim-1" || payload.AmountCents != 15000 || payload.SubmissionID == "" {
				t.Fatalf("unexpected payload: %+v", payload)
			}
			return interfaces.SubmissionResult{Success: true, ConfirmationNumber: "CONF-1"}, nil
		})
	// P2 has no Submit expectation: a call would fail the test.
	f.expectCommit(t, "submitted electronically via P1")

	out, err := f.orchestrator(nil, p1, p2).Submit(context.Background(), SubmitInput{ClaimID: "claim-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Record.Method != entities.SubmissionMethodElectronic || out.Record.ProviderName != "P1" {
		t.Fatalf("unexpected record: %+v", out.Record)
	}
	if out.Record.ConfirmationNumber != "CONF-1" {
		t.Fatalf("expected CONF-1, got %q", out.Record.ConfirmationNumber)
	}
	if out.Claim.Status != entities.ClaimStatusSubmitted {
		t.Fatalf("expected submitted, got %s", out.Claim.Status)
	}
	if len(out.Attempts) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(out.Attempts))
	}
}

func TestSubmissionOrchestrator_FailoverToSecondProvider(t *testing.T) {
	// Retryable failure on P1 advances to P2; P1 is never retried.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	p1 := newGateway(ctrl, "P1")
	p2 := newGateway(ctrl, "P2")

	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(completeClaim(), nil)
	p1.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(interfaces.SubmissionResult{Retryable: true, ErrorMessage: "rate limited"}, nil).
		Times(1)
	p2.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(interfaces.SubmissionResult{Success: true, ConfirmationNumber: "CONF-2"}, nil).
		Times(1)
	f.expectCommit(t, "submitted electronically via P2")

	out, err := f.orchestrator(nil, p1, p2).Submit(context.Background(), SubmitInput{ClaimID: "claim-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Record.Method != entities.SubmissionMethodElectronic || out.Record.ProviderName != "P2" || out.Record.ConfirmationNumber != "CONF-2" {
		t.Fatalf("unexpected record: %+v", out.Record)
	}
	if len(out.Attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(out.Attempts))
	}
}

func TestSubmissionOrchestrator_AllProvidersExhaustedFallsBack(t *testing.T) {
	// Scenario: every provider fails transiently, document path wins.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	p1 := newGateway(ctrl, "P1")
	p2 := newGateway(ctrl, "P2")

	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(completeClaim(), nil)
	p1.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(interfaces.SubmissionResult{Retryable: true, ErrorMessage: "timeout"}, nil)
	p2.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(interfaces.SubmissionResult{}, errors.New("connection reset"))
	f.docs.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c entities.Claim, submissionID string) (interfaces.FallbackDocument, error) {
			if c.ID != "claim-1" || submissionID == "" {
				t.Fatalf("unexpected generate call: claim=%s submission=%s", c.ID, submissionID)
			}
			return interfaces.FallbackDocument{ID: "doc-9", Locator: "s3://claim-docs/doc-9"}, nil
		})
	f.expectCommit(t, "submitted via fallback document path")

	out, err := f.orchestrator(nil, p1, p2).Submit(context.Background(), SubmitInput{ClaimID: "claim-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Record.Method != entities.SubmissionMethodDocument || !out.Record.FallbackUsed {
		t.Fatalf("unexpected record: %+v", out.Record)
	}
	if out.Record.FallbackDocumentID != "doc-9" || out.Record.FallbackDocumentLocator != "s3://claim-docs/doc-9" {
		t.Fatalf("fallback document not recorded: %+v", out.Record)
	}
}

func TestSubmissionOrchestrator_NonRetryableShortCircuits(t *testing.T) {
	// A data rejection on P1 must skip P2 entirely and go straight to the
	// document path.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	p1 := newGateway(ctrl, "P1")
	p2 := newGateway(ctrl, "P2")

	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(completeClaim(), nil)
	p1.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(interfaces.SubmissionResult{ErrorCode: "BAD_MEMBER_ID", ErrorMessage: "unknown member"}, nil)
	f.docs.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(interfaces.FallbackDocument{ID: "doc-1", Locator: "s3://claim-docs/doc-1"}, nil)
	f.expectCommit(t, "submitted via fallback document path")

	out, err := f.orchestrator(nil, p1, p2).Submit(context.Background(), SubmitInput{ClaimID: "claim-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Attempts) != 1 || out.Attempts[0].Outcome != OutcomeNonRetryable {
		t.Fatalf("unexpected attempts: %+v", out.Attempts)
	}
}

func TestSubmissionOrchestrator_FallbackFailureIsFatalAndCommitsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	p1 := newGateway(ctrl, "P1")

	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(completeClaim(), nil)
	p1.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(interfaces.SubmissionResult{Retryable: true, ErrorMessage: "unavailable"}, nil)
	f.docs.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(interfaces.FallbackDocument{}, errors.New("render engine down"))
	// No UpdateStatus/Save/Append expectations: any write fails the test.

	_, err := f.orchestrator(nil, p1).Submit(context.Background(), SubmitInput{ClaimID: "claim-1"})
	if !errors.Is(err, ErrSubmissionFailed) {
		t.Fatalf("expected ErrSubmissionFailed, got %v", err)
	}
	var failure *SubmissionFailureError
	if !errors.As(err, &failure) {
		t.Fatalf("expected *SubmissionFailureError, got %T", err)
	}
	if len(failure.Attempts) != 1 || failure.FallbackErr == nil {
		t.Fatalf("failure must aggregate attempt history and fallback cause: %+v", failure)
	}
}

func TestSubmissionOrchestrator_ValidationFailsBeforeAnyProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	p1 := newGateway(ctrl, "P1")

	incomplete := completeClaim()
	incomplete.CPTCodes = nil
	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(incomplete, nil)
	// No Submit expectation on P1.

	_, err := f.orchestrator(nil, p1).Submit(context.Background(), SubmitInput{ClaimID: "claim-1"})
	if !errors.Is(err, ErrClaimValidation) {
		t.Fatalf("expected ErrClaimValidation, got %v", err)
	}
}

func TestSubmissionOrchestrator_IllegalStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(submittedClaim(), nil)

	_, err := f.orchestrator(nil).Submit(context.Background(), SubmitInput{ClaimID: "claim-1"})
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
}

func TestSubmissionOrchestrator_ClaimNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	f.claims.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Claim{}, nil)

	_, err := f.orchestrator(nil).Submit(context.Background(), SubmitInput{ClaimID: "missing"})
	if !errors.Is(err, ErrClaimNotFound) {
		t.Fatalf("expected ErrClaimNotFound, got %v", err)
	}
}

func TestSubmissionOrchestrator_RequestedDocumentMethodSkipsProviders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	p1 := newGateway(ctrl, "P1")

	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(completeClaim(), nil)
	f.docs.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(interfaces.FallbackDocument{ID: "doc-3", Locator: "s3://claim-docs/doc-3"}, nil)
	f.expectCommit(t, "submitted via fallback document path")

	out, err := f.orchestrator(nil, p1).Submit(context.Background(), SubmitInput{
		ClaimID: "claim-1",
		Method:  entities.SubmissionMethodDocument,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Record.Method != entities.SubmissionMethodDocument || len(out.Attempts) != 0 {
		t.Fatalf("unexpected outcome: record=%+v attempts=%d", out.Record, len(out.Attempts))
	}
}

func TestSubmissionOrchestrator_InvalidMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	_, err := f.orchestrator(nil).Submit(context.Background(), SubmitInput{ClaimID: "claim-1", Method: "fax"})
	if !errors.Is(err, ErrInvalidSubmitMethod) {
		t.Fatalf("expected ErrInvalidSubmitMethod, got %v", err)
	}
}

func TestSubmissionOrchestrator_ConcurrentSubmitSameClaim(t *testing.T) {
	// Two concurrent Submit calls on the same claim: exactly one proceeds, the
	// other fails with AlreadyInProgress and causes no side effects.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	p1 := newGateway(ctrl, "P1")

	entered := make(chan struct{})
	release := make(chan struct{})

	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(completeClaim(), nil).Times(1)
	p1.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, interfaces.ClaimPayload) (interfaces.SubmissionResult, error) {
			close(entered)
			<-release
			return interfaces.SubmissionResult{Success: true, ConfirmationNumber: "CONF-1"}, nil
		})
	f.expectCommit(t, "submitted electronically via P1")

	o := f.orchestrator(nil, p1)

	done := make(chan error, 1)
	go func() {
		_, err := o.Submit(context.Background(), SubmitInput{ClaimID: "claim-1"})
		done <- err
	}()

	<-entered
	_, err := o.Submit(context.Background(), SubmitInput{ClaimID: "claim-1"})
	if !errors.Is(err, ErrAlreadyInProgress) {
		t.Fatalf("expected ErrAlreadyInProgress, got %v", err)
	}
	close(release)

	if err := <-done; err != nil {
		t.Fatalf("winning submission failed: %v", err)
	}

	// The guard must be released once the winner finishes.
	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(submittedClaim(), nil)
	_, err = o.Submit(context.Background(), SubmitInput{ClaimID: "claim-1"})
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition after commit, got %v", err)
	}
}

func TestSubmissionOrchestrator_RecordWriteFailureReverts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	p1 := newGateway(ctrl, "P1")

	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(completeClaim(), nil)
	p1.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(interfaces.SubmissionResult{Success: true, ConfirmationNumber: "CONF-1"}, nil)
	f.subs.EXPECT().DeactivateByClaimID(gomock.Any(), "claim-1").Return(nil)
	f.claims.EXPECT().UpdateStatus(gomock.Any(), "claim-1", entities.ClaimStatusSubmitted, gomock.Any()).
		Return(submittedClaim(), nil)
	f.subs.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(entities.SubmissionRecord{}, errors.New("conditional write failed"))
	f.claims.EXPECT().UpdateStatus(gomock.Any(), "claim-1", entities.ClaimStatusDraft, "submission commit reverted").
		Return(completeClaim(), nil)

	_, err := f.orchestrator(nil, p1).Submit(context.Background(), SubmitInput{ClaimID: "claim-1"})
	if !errors.Is(err, ErrSubmissionFailed) {
		t.Fatalf("expected ErrSubmissionFailed, got %v", err)
	}
}

func TestSubmissionOrchestrator_TimelineWriteFailureCompensates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	p1 := newGateway(ctrl, "P1")

	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(completeClaim(), nil)
	p1.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(interfaces.SubmissionResult{Success: true, ConfirmationNumber: "CONF-1"}, nil)
	f.subs.EXPECT().DeactivateByClaimID(gomock.Any(), "claim-1").Return(nil)
	f.claims.EXPECT().UpdateStatus(gomock.Any(), "claim-1", entities.ClaimStatusSubmitted, gomock.Any()).
		Return(submittedClaim(), nil)

	var savedID string
	f.subs.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r entities.SubmissionRecord) (entities.SubmissionRecord, error) {
			savedID = r.ID
			return r, nil
		})
	f.timeline.EXPECT().Append(gomock.Any(), gomock.Any()).
		Return(entities.ClaimTimelineEvent{}, errors.New("table missing"))
	f.subs.EXPECT().Delete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) error {
			if id != savedID {
				t.Fatalf("expected delete of %q, got %q", savedID, id)
			}
			return nil
		})
	f.claims.EXPECT().UpdateStatus(gomock.Any(), "claim-1", entities.ClaimStatusDraft, "submission commit reverted").
		Return(completeClaim(), nil)

	_, err := f.orchestrator(nil, p1).Submit(context.Background(), SubmitInput{ClaimID: "claim-1"})
	if !errors.Is(err, ErrSubmissionFailed) {
		t.Fatalf("expected ErrSubmissionFailed, got %v", err)
	}
}

func TestSubmissionOrchestrator_StatusWriteNotObserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	p1 := newGateway(ctrl, "P1")

	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(completeClaim(), nil)
	p1.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(interfaces.SubmissionResult{Success: true, ConfirmationNumber: "CONF-1"}, nil)
	f.subs.EXPECT().DeactivateByClaimID(gomock.Any(), "claim-1").Return(nil)
	// Store answers the write but the read-back still says draft.
	f.claims.EXPECT().UpdateStatus(gomock.Any(), "claim-1", entities.ClaimStatusSubmitted, gomock.Any()).
		Return(completeClaim(), nil)

	_, err := f.orchestrator(nil, p1).Submit(context.Background(), SubmitInput{ClaimID: "claim-1"})
	if !errors.Is(err, ErrSubmissionFailed) {
		t.Fatalf("expected ErrSubmissionFailed, got %v", err)
	}
}

func TestSubmissionOrchestrator_NotifiesAfterCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	p1 := newGateway(ctrl, "P1")
	notifier := mock_interfaces.NewMockISubmissionNotifier(ctrl)

	events := make(chan interfaces.SubmissionEvent, 1)

	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(completeClaim(), nil)
	p1.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(interfaces.SubmissionResult{Success: true, ConfirmationNumber: "CONF-1"}, nil)
	f.expectCommit(t, "submitted electronically via P1")
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, ev interfaces.SubmissionEvent) { events <- ev })

	if _, err := f.orchestrator(notifier, p1).Submit(context.Background(), SubmitInput{ClaimID: "claim-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case ev := <-events:
		if ev.Type != "submission.completed" || ev.ClaimID != "claim-1" {
			t.Fatalf("unexpected event: %+v", ev)
		}
		if ev.SubmissionID == "" || ev.Method != entities.SubmissionMethodElectronic {
			t.Fatalf("event missing submission details: %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("completion event was never dispatched")
	}
}

func TestSubmissionOrchestrator_SlowNotifierDoesNotBlockSubmit(t *testing.T) {
	// The notifier hangs until the test releases it; Submit must still return
	// with the committed outcome.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	p1 := newGateway(ctrl, "P1")
	notifier := mock_interfaces.NewMockISubmissionNotifier(ctrl)

	entered := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(completeClaim(), nil)
	p1.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(interfaces.SubmissionResult{Success: true, ConfirmationNumber: "CONF-1"}, nil)
	f.expectCommit(t, "submitted electronically via P1")
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(
		func(context.Context, interfaces.SubmissionEvent) {
			close(entered)
			<-release
		})

	out, err := f.orchestrator(notifier, p1).Submit(context.Background(), SubmitInput{ClaimID: "claim-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Claim.Status != entities.ClaimStatusSubmitted {
		t.Fatalf("expected submitted, got %s", out.Claim.Status)
	}

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never dispatched")
	}
}

func TestSubmissionOrchestrator_ElectronicRequiresGateways(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	_, err := f.orchestrator(nil).Submit(context.Background(), SubmitInput{
		ClaimID: "claim-1",
		Method:  entities.SubmissionMethodElectronic,
	})
	if !errors.Is(err, ErrGatewaysNotConfigured) {
		t.Fatalf("expected ErrGatewaysNotConfigured, got %v", err)
	}
}

func TestSubmissionOrchestrator_CommitFailureEmitsFailureEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOrchestratorFixture(ctrl)

	p1 := newGateway(ctrl, "P1")
	notifier := mock_interfaces.NewMockISubmissionNotifier(ctrl)

	events := make(chan interfaces.SubmissionEvent, 1)

	f.claims.EXPECT().GetByID(gomock.Any(), "claim-1").Return(completeClaim(), nil)
	p1.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(interfaces.SubmissionResult{Success: true, ConfirmationNumber: "CONF-1"}, nil)
	f.subs.EXPECT().DeactivateByClaimID(gomock.Any(), "claim-1").Return(nil)
	f.claims.EXPECT().UpdateStatus(gomock.Any(), "claim-1", entities.ClaimStatusSubmitted, gomock.Any()).
		Return(submittedClaim(), nil)
	f.subs.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(entities.SubmissionRecord{}, errors.New("conditional write failed"))
	f.claims.EXPECT().UpdateStatus(gomock.Any(), "claim-1", entities.ClaimStatusDraft, "submission commit reverted").
		Return(completeClaim(), nil)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, ev interfaces.SubmissionEvent) { events <- ev })

	_, err := f.orchestrator(notifier, p1).Submit(context.Background(), SubmitInput{ClaimID: "claim-1"})
	if !errors.Is(err, ErrSubmissionFailed) {
		t.Fatalf("expected ErrSubmissionFailed, got %v", err)
	}

	select {
	case ev := <-events:
		if ev.Type != "submission.failed" || ev.ClaimID != "claim-1" {
			t.Fatalf("unexpected event: %+v", ev)
		}
		if ev.SubmissionID == "" {
			t.Fatalf("failure event missing submission id: %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("failure event was never dispatched")
	}
}

func TestSortGatewaysByPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newGateway(ctrl, "A")
	b := newGateway(ctrl, "B")
	c := newGateway(ctrl, "C")

	sorted := SortGatewaysByPriority([]PrioritizedGateway{
		{Gateway: c, Priority: 30},
		{Gateway: a, Priority: 10},
		{Gateway: b, Priority: 20},
	})
	if len(sorted) != 3 || sorted[0].Name() != "A" || sorted[1].Name() != "B" || sorted[2].Name() != "C" {
		t.Fatalf("unexpected order: %v", []string{sorted[0].Name(), sorted[1].Name(), sorted[2].Name()})
	}
}
