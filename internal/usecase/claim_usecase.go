package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"claimflow/internal/domain/entities"
	"claimflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrClaimNotFound     = errors.New("claim not found")
	ErrInvalidClaimID    = errors.New("invalid claim id")
	ErrInvalidPatientID  = errors.New("invalid patient_id")
	ErrInvalidClaimInput = errors.New("invalid claim input")
)

// CreateClaimInput is the domain command for opening a draft claim.
type CreateClaimInput struct {
	PatientID     string
	AmountCents   int64
	DateOfService time.Time
	ProviderName  string
	ProviderNPI   string
	CPTCodes      []string
	ICDCodes      []string
	Notes         string
	DocumentRefs  []string
}

// AdjudicationInput drives payer-side status changes on a submitted claim.
type AdjudicationInput struct {
	Status          entities.ClaimStatus
	Cause           string
	DenialReason    string
	PaidAmountCents int64
}

// SubmissionStatus is the read model for the submission-status endpoint.
type SubmissionStatus struct {
	ClaimID          string
	Status           entities.ClaimStatus
	CanResubmit      bool
	ActiveSubmission *entities.SubmissionRecord
}

// IClaimUseCase exposes claim management around the submission core:
// draft creation, reads, cancellation, payer adjudication, appeal, and the
// audit read models (timeline, submission lineage).

type IClaimUseCase interface {
	CreateClaim(ctx context.Context, in CreateClaimInput) (entities.Claim, error)
	GetByID(ctx context.Context, id string) (entities.Claim, error)
	ListByPatientID(ctx context.Context, patientID string) ([]entities.Claim, error)
	CancelClaim(ctx context.Context, id, cause string) (entities.Claim, error)
	AdjudicateClaim(ctx context.Context, id string, in AdjudicationInput) (entities.Claim, error)
	AppealClaim(ctx context.Context, id, cause string) (entities.Claim, error)
	GetSubmissionStatus(ctx context.Context, id string) (SubmissionStatus, error)
	ListTimeline(ctx context.Context, id string) ([]entities.ClaimTimelineEvent, error)
	ListSubmissions(ctx context.Context, id string) ([]entities.SubmissionRecord, error)
}

type ClaimUseCase struct {
	claims      interfaces.IClaimRepository
	submissions interfaces.ISubmissionRepository
	timeline    interfaces.ITimelineRepository
	lifecycle   *ClaimLifecycle
	log         *logrus.Entry
}

var _ IClaimUseCase = (*ClaimUseCase)(nil)

func NewClaimUseCase(claims interfaces.IClaimRepository, submissions interfaces.ISubmissionRepository, timeline interfaces.ITimelineRepository, lifecycle *ClaimLifecycle, logger *logrus.Logger) *ClaimUseCase {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ClaimUseCase{
		claims:      claims,
		submissions: submissions,
		timeline:    timeline,
		lifecycle:   lifecycle,
		log:         logger.WithField("component", "claim_usecase"),
	}
}

func (u *ClaimUseCase) CreateClaim(ctx context.Context, in CreateClaimInput) (entities.Claim, error) {
	in.PatientID = strings.TrimSpace(in.PatientID)
	if in.PatientID == "" {
		return entities.Claim{}, ErrInvalidPatientID
	}
	if in.AmountCents < 0 {
		return entities.Claim{}, ErrInvalidClaimInput
	}
	// Drafts may be incomplete, but codes that are present must be shaped
	// correctly.
	if err := ValidateCodesIfPresent(in.CPTCodes, in.ICDCodes); err != nil {
		return entities.Claim{}, err
	}

	now := time.Now().UTC()
	c := entities.Claim{
		ID:            uuid.NewString(),
		PatientID:     in.PatientID,
		Status:        entities.ClaimStatusDraft,
		AmountCents:   in.AmountCents,
		DateOfService: in.DateOfService,
		ProviderName:  strings.TrimSpace(in.ProviderName),
		ProviderNPI:   strings.TrimSpace(in.ProviderNPI),
		CPTCodes:      in.CPTCodes,
		ICDCodes:      in.ICDCodes,
		Notes:         in.Notes,
		DocumentRefs:  in.DocumentRefs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.claims.Create(ctx, c)
	if err != nil {
		return entities.Claim{}, err
	}
	u.log.WithFields(logrus.Fields{"claim_id": created.ID, "patient_id": created.PatientID}).
		Info("draft claim created")
	return created, nil
}

func (u *ClaimUseCase) GetByID(ctx context.Context, id string) (entities.Claim, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Claim{}, ErrInvalidClaimID
	}

	c, err := u.claims.GetByID(ctx, id)
	if err != nil {
		return entities.Claim{}, err
	}
	if c.ID == "" {
		return entities.Claim{}, ErrClaimNotFound
	}
	return c, nil
}

func (u *ClaimUseCase) ListByPatientID(ctx context.Context, patientID string) ([]entities.Claim, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidPatientID
	}
	return u.claims.ListByPatientID(ctx, patientID)
}

func (u *ClaimUseCase) CancelClaim(ctx context.Context, id, cause string) (entities.Claim, error) {
	if cause == "" {
		cause = "claim cancelled by patient"
	}
	return u.transition(ctx, id, entities.ClaimStatusCancelled, cause)
}

func (u *ClaimUseCase) AppealClaim(ctx context.Context, id, cause string) (entities.Claim, error) {
	if cause == "" {
		cause = "denial appealed by patient"
	}
	return u.transition(ctx, id, entities.ClaimStatusAppealed, cause)
}

func (u *ClaimUseCase) AdjudicateClaim(ctx context.Context, id string, in AdjudicationInput) (entities.Claim, error) {
	switch in.Status {
	case entities.ClaimStatusProcessing, entities.ClaimStatusApproved,
		entities.ClaimStatusDenied, entities.ClaimStatusRejected, entities.ClaimStatusPaid:
	default:
		return entities.Claim{}, ErrInvalidClaimInput
	}

	cause := in.Cause
	if cause == "" {
		cause = "status updated by payer response"
	}

	updated, err := u.transition(ctx, id, in.Status, cause)
	if err != nil {
		return entities.Claim{}, err
	}

	if in.Status == entities.ClaimStatusDenied && in.DenialReason != "" {
		if updated, err = u.claims.UpdateDenial(ctx, updated.ID, in.DenialReason); err != nil {
			return entities.Claim{}, err
		}
	}
	if in.Status == entities.ClaimStatusPaid && in.PaidAmountCents > 0 {
		if updated, err = u.claims.UpdatePaidAmount(ctx, updated.ID, in.PaidAmountCents); err != nil {
			return entities.Claim{}, err
		}
	}
	return updated, nil
}

// transition runs a lifecycle change end to end: validate against the table,
// persist the status, append the timeline event.
func (u *ClaimUseCase) transition(ctx context.Context, id string, requested entities.ClaimStatus, cause string) (entities.Claim, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Claim{}, err
	}

	newStatus, event, err := u.lifecycle.Transition(c, requested, cause)
	if err != nil {
		return entities.Claim{}, err
	}

	updated, err := u.claims.UpdateStatus(ctx, c.ID, newStatus, cause)
	if err != nil {
		return entities.Claim{}, err
	}
	if _, err := u.timeline.Append(ctx, event); err != nil {
		u.log.WithFields(logrus.Fields{"claim_id": c.ID, "event_id": event.ID}).
			WithError(err).Error("timeline append failed")
		return entities.Claim{}, err
	}

	u.log.WithFields(logrus.Fields{
		"claim_id": c.ID,
		"from":     event.PreviousStatus,
		"to":       event.NewStatus,
	}).Info("claim status changed")
	return updated, nil
}

func (u *ClaimUseCase) GetSubmissionStatus(ctx context.Context, id string) (SubmissionStatus, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return SubmissionStatus{}, err
	}

	status := SubmissionStatus{
		ClaimID:     c.ID,
		Status:      c.Status,
		CanResubmit: u.lifecycle.CanResubmit(c.Status),
	}

	records, err := u.submissions.ListByClaimID(ctx, c.ID)
	if err != nil {
		return SubmissionStatus{}, err
	}
	for i := range records {
		if records[i].Active {
			status.ActiveSubmission = &records[i]
			break
		}
	}
	return status, nil
}

func (u *ClaimUseCase) ListTimeline(ctx context.Context, id string) ([]entities.ClaimTimelineEvent, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.timeline.ListByClaimID(ctx, c.ID)
}

func (u *ClaimUseCase) ListSubmissions(ctx context.Context, id string) ([]entities.SubmissionRecord, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.submissions.ListByClaimID(ctx, c.ID)
}
