package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"claimflow/internal/domain/entities"
	"claimflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAlreadyInProgress      = errors.New("submission already in progress for this claim")
	ErrSubmissionFailed       = errors.New("submission failed")
	ErrInvalidSubmitMethod    = errors.New("invalid submission method")
	ErrGatewaysNotConfigured  = errors.New("provider gateways not configured")
	ErrGeneratorNotConfigured = errors.New("fallback document generator not configured")
)

const defaultFallbackTimeout = 15 * time.Second

// SubmissionFailureError is the fatal-outcome error. It carries the complete
// attempt history so the caller can see every provider that was tried plus the
// fallback failure, not just the last error.
type SubmissionFailureError struct {
	ClaimID     string
	Attempts    []ProviderAttempt
	FallbackErr error
}

func (e *SubmissionFailureError) Error() string {
	parts := make([]string, 0, len(e.Attempts)+1)
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %s (%s)", a.Provider, a.Outcome, a.Reason))
	}
	if e.FallbackErr != nil {
		parts = append(parts, fmt.Sprintf("fallback: %v", e.FallbackErr))
	}
	return fmt.Sprintf("submission failed for claim %s: %s", e.ClaimID, strings.Join(parts, "; "))
}

// Is lets errors.Is(err, ErrSubmissionFailed) match.
func (e *SubmissionFailureError) Is(target error) bool {
	return target == ErrSubmissionFailed
}

func (e *SubmissionFailureError) Unwrap() error { return e.FallbackErr }

// SubmitInput is the domain command for one submission request.
//
// Method empty or "electronic" runs the provider loop with document fallback;
// "document" skips providers entirely.
type SubmitInput struct {
	ClaimID string
	Method  entities.SubmissionMethod
	Insurer interfaces.InsurerInfo
}

// SubmissionOutcome is what a successful Submit returns.
type SubmissionOutcome struct {
	Claim    entities.Claim
	Record   entities.SubmissionRecord
	Attempts []ProviderAttempt
}

// ISubmissionUseCase encapsulates the "submit a claim" behavior: exclusivity
// per claim, provider failover, document fallback, and the all-or-nothing
// commit of status + submission record + timeline event.

type ISubmissionUseCase interface {
	Submit(ctx context.Context, in SubmitInput) (SubmissionOutcome, error)
}

type SubmissionOrchestrator struct {
	claims      interfaces.IClaimRepository
	submissions interfaces.ISubmissionRepository
	timeline    interfaces.ITimelineRepository
	gateways    []interfaces.IProviderGateway
	documents   interfaces.IFallbackDocumentGenerator
	notifier    interfaces.ISubmissionNotifier
	guard       *IdempotencyGuard
	lifecycle   *ClaimLifecycle

	fallbackTimeout time.Duration
	log             *logrus.Entry
}

var _ ISubmissionUseCase = (*SubmissionOrchestrator)(nil)

// NewSubmissionOrchestrator wires the orchestrator. Gateways are tried in the
// order given; callers sort by priority before handing them in (see
// SortGatewaysByPriority).
func NewSubmissionOrchestrator(
	claims interfaces.IClaimRepository,
	submissions interfaces.ISubmissionRepository,
	timeline interfaces.ITimelineRepository,
	gateways []interfaces.IProviderGateway,
	documents interfaces.IFallbackDocumentGenerator,
	notifier interfaces.ISubmissionNotifier,
	guard *IdempotencyGuard,
	lifecycle *ClaimLifecycle,
	logger *logrus.Logger,
) *SubmissionOrchestrator {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SubmissionOrchestrator{
		claims:          claims,
		submissions:     submissions,
		timeline:        timeline,
		gateways:        gateways,
		documents:       documents,
		notifier:        notifier,
		guard:           guard,
		lifecycle:       lifecycle,
		fallbackTimeout: defaultFallbackTimeout,
		log:             logger.WithField("component", "submission_orchestrator"),
	}
}

// PrioritizedGateway pairs a gateway with its declared ordering priority
// (lower tries first).
type PrioritizedGateway struct {
	Gateway  interfaces.IProviderGateway
	Priority int
}

// SortGatewaysByPriority returns gateways in attempt order. The sort is
// stable so equal priorities keep their configured order.
func SortGatewaysByPriority(gws []PrioritizedGateway) []interfaces.IProviderGateway {
	sorted := make([]PrioritizedGateway, len(gws))
	copy(sorted, gws)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority < sorted[j].Priority })
	out := make([]interfaces.IProviderGateway, 0, len(sorted))
	for _, g := range sorted {
		out = append(out, g.Gateway)
	}
	return out
}

func (o *SubmissionOrchestrator) Submit(ctx context.Context, in SubmitInput) (SubmissionOutcome, error) {
	claimID := strings.TrimSpace(in.ClaimID)
	if claimID == "" {
		return SubmissionOutcome{}, ErrInvalidClaimID
	}
	switch in.Method {
	case "", entities.SubmissionMethodElectronic, entities.SubmissionMethodDocument:
	default:
		return SubmissionOutcome{}, ErrInvalidSubmitMethod
	}
	if o.documents == nil {
		return SubmissionOutcome{}, ErrGeneratorNotConfigured
	}
	if in.Method == entities.SubmissionMethodElectronic && len(o.gateways) == 0 {
		return SubmissionOutcome{}, ErrGatewaysNotConfigured
	}

	log := o.log.WithField("claim_id", claimID)

	// Exclusivity first: at most one in-flight Submit per claim, system-wide.
	if !o.guard.TryAcquire(claimID) {
		log.Warn("submission already in progress")
		return SubmissionOutcome{}, ErrAlreadyInProgress
	}
	defer o.guard.Release(claimID)

	claim, err := o.claims.GetByID(ctx, claimID)
	if err != nil {
		return SubmissionOutcome{}, err
	}
	if claim.ID == "" {
		return SubmissionOutcome{}, ErrClaimNotFound
	}

	if !o.lifecycle.CanResubmit(claim.Status) {
		log.WithField("status", claim.Status).Warn("claim status does not permit submission")
		return SubmissionOutcome{}, fmt.Errorf("%w: cannot submit claim in status %q", ErrIllegalTransition, claim.Status)
	}

	// Completeness check before any provider is contacted.
	if err := ValidateClaimForSubmission(claim); err != nil {
		log.WithError(err).Warn("claim failed completeness validation")
		return SubmissionOutcome{}, err
	}

	submissionID := uuid.NewString()
	payload := interfaces.NewClaimPayload(claim, submissionID, in.Insurer)
	log = log.WithField("submission_id", submissionID)

	var attempts []ProviderAttempt
	record := entities.SubmissionRecord{
		ID:          submissionID,
		ClaimID:     claim.ID,
		Active:      true,
		SubmittedAt: time.Now().UTC(),
	}

	electronic := false
	if in.Method != entities.SubmissionMethodDocument {
		attempts, record, electronic = o.attemptProviders(ctx, payload, record, log)
	}

	if !electronic {
		doc, err := o.generateFallback(ctx, claim, submissionID)
		if err != nil {
			failure := &SubmissionFailureError{ClaimID: claim.ID, Attempts: attempts, FallbackErr: err}
			log.WithError(err).Error("fallback document generation failed; no state committed")
			o.notify(interfaces.SubmissionEvent{
				Type:         "submission.failed",
				ClaimID:      claim.ID,
				SubmissionID: submissionID,
				Status:       claim.Status,
				Attempts:     Summaries(attempts),
				OccurredAt:   time.Now().UTC(),
			})
			return SubmissionOutcome{}, failure
		}
		record.Method = entities.SubmissionMethodDocument
		record.FallbackUsed = true
		record.FallbackDocumentID = doc.ID
		record.FallbackDocumentLocator = doc.Locator
	}

	cause := submissionCause(record)
	updated, err := o.commit(ctx, claim, record, cause, log)
	if err != nil {
		o.notify(interfaces.SubmissionEvent{
			Type:         "submission.failed",
			ClaimID:      claim.ID,
			SubmissionID: record.ID,
			Method:       record.Method,
			Status:       claim.Status,
			Attempts:     Summaries(attempts),
			OccurredAt:   time.Now().UTC(),
		})
		return SubmissionOutcome{}, &SubmissionFailureError{ClaimID: claim.ID, Attempts: attempts, FallbackErr: err}
	}

	o.notify(interfaces.SubmissionEvent{
		Type:         "submission.completed",
		ClaimID:      claim.ID,
		SubmissionID: record.ID,
		Method:       record.Method,
		Status:       updated.Status,
		Attempts:     Summaries(attempts),
		OccurredAt:   time.Now().UTC(),
	})

	log.WithFields(logrus.Fields{"method": record.Method, "provider": record.ProviderName}).
		Info("submission committed")
	return SubmissionOutcome{Claim: updated, Record: record, Attempts: attempts}, nil
}

// attemptProviders runs the ordered provider loop under an overall deadline of
// the summed provider timeouts. Attempts run sequentially: an earlier success
// must short-circuit all later providers.
func (o *SubmissionOrchestrator) attemptProviders(ctx context.Context, payload interfaces.ClaimPayload, record entities.SubmissionRecord, log *logrus.Entry) ([]ProviderAttempt, entities.SubmissionRecord, bool) {
	var attempts []ProviderAttempt

	budget := time.Duration(0)
	for _, gw := range o.gateways {
		budget += gw.Timeout()
	}
	loopCtx := ctx
	if budget > 0 {
		var cancel context.CancelFunc
		loopCtx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}

	for _, gw := range o.gateways {
		if loopCtx.Err() != nil {
			// Overall deadline tripped: abort remaining providers and take
			// the document path.
			log.Warn("overall submission deadline exceeded; falling back")
			break
		}

		callCtx, cancel := context.WithTimeout(loopCtx, gw.Timeout())
		res, err := gw.Submit(callCtx, payload)
		cancel()

		attempt := ClassifyAttempt(gw.Name(), res, err)
		attempts = append(attempts, attempt)
		log.WithFields(logrus.Fields{
			"provider": attempt.Provider,
			"outcome":  attempt.Outcome,
			"reason":   attempt.Reason,
		}).Info("provider attempt finished")

		switch DecideNext(attempt) {
		case ActionAccept:
			record.Method = entities.SubmissionMethodElectronic
			record.ProviderName = attempt.Provider
			record.ConfirmationNumber = attempt.ConfirmationNumber
			record.TrackingNumber = attempt.TrackingNumber
			return attempts, record, true
		case ActionNextProvider:
			continue
		case ActionFallback:
			return attempts, record, false
		}
	}
	return attempts, record, false
}

func (o *SubmissionOrchestrator) generateFallback(ctx context.Context, claim entities.Claim, submissionID string) (interfaces.FallbackDocument, error) {
	docCtx, cancel := context.WithTimeout(ctx, o.fallbackTimeout)
	defer cancel()
	return o.documents.Generate(docCtx, claim, submissionID)
}

// commit applies the terminal outcome as a unit: status transition, submission
// record, timeline event. DynamoDB cannot span these writes atomically, so
// each later failure compensates the earlier writes before reporting failure.
func (o *SubmissionOrchestrator) commit(ctx context.Context, claim entities.Claim, record entities.SubmissionRecord, cause string, log *logrus.Entry) (entities.Claim, error) {
	newStatus, event, err := o.lifecycle.Transition(claim, entities.ClaimStatusSubmitted, cause)
	if err != nil {
		return entities.Claim{}, err
	}

	// Supersede prior records before the new one becomes visible, keeping the
	// one-active-record invariant.
	if err := o.submissions.DeactivateByClaimID(ctx, claim.ID); err != nil {
		return entities.Claim{}, err
	}

	updated, err := o.claims.UpdateStatus(ctx, claim.ID, newStatus, cause)
	if err != nil {
		return entities.Claim{}, err
	}
	// Re-verify post-write state rather than trusting the call.
	if updated.Status != newStatus {
		return entities.Claim{}, fmt.Errorf("status write not observed: got %q want %q", updated.Status, newStatus)
	}

	if _, err := o.submissions.Save(ctx, record); err != nil {
		o.revertStatus(ctx, claim, log)
		return entities.Claim{}, err
	}

	if _, err := o.timeline.Append(ctx, event); err != nil {
		if derr := o.submissions.Delete(ctx, record.ID); derr != nil {
			log.WithError(derr).Error("compensating submission record delete failed")
		}
		o.revertStatus(ctx, claim, log)
		return entities.Claim{}, err
	}
	return updated, nil
}

func (o *SubmissionOrchestrator) revertStatus(ctx context.Context, claim entities.Claim, log *logrus.Entry) {
	if _, err := o.claims.UpdateStatus(ctx, claim.ID, claim.Status, "submission commit reverted"); err != nil {
		log.WithError(err).Error("compensating status revert failed")
	}
}

// notify dispatches the event off the request path. Delivery is best-effort:
// a slow or failing notifier never delays or alters the submission result.
func (o *SubmissionOrchestrator) notify(event interfaces.SubmissionEvent) {
	if o.notifier == nil {
		return
	}
	go o.notifier.Notify(context.Background(), event)
}

func submissionCause(r entities.SubmissionRecord) string {
	if r.Method == entities.SubmissionMethodElectronic {
		return fmt.Sprintf("submitted electronically via %s", r.ProviderName)
	}
	return "submitted via fallback document path"
}
