package usecase

import (
	"claimflow/internal/usecase/interfaces"
)

// AttemptOutcome classifies one provider attempt.

type AttemptOutcome string

const (
	OutcomeSuccess      AttemptOutcome = "success"
	OutcomeRetryable    AttemptOutcome = "retryable_failure"
	OutcomeNonRetryable AttemptOutcome = "non_retryable_failure"
)

// NextAction is the policy's decision after an attempt.

type NextAction int

const (
	// ActionAccept stops the loop; the claim was delivered electronically.
	ActionAccept NextAction = iota
	// ActionNextProvider advances to the next provider in priority order.
	ActionNextProvider
	// ActionFallback abandons the remaining providers and takes the document
	// path.
	ActionFallback
)

// ProviderAttempt is the recorded outcome of one gateway call. The
// orchestrator accumulates these so a final failure can report the complete
// attempt history.
type ProviderAttempt struct {
	Provider           string
	Outcome            AttemptOutcome
	Reason             string
	ErrorCode          string
	ConfirmationNumber string
	TrackingNumber     string
}

// ClassifyAttempt maps a gateway response (or transport error) onto the
// attempt taxonomy. A transport-level error is transient by definition and
// classifies as retryable.
func ClassifyAttempt(provider string, res interfaces.SubmissionResult, err error) ProviderAttempt {
	if err != nil {
		return ProviderAttempt{Provider: provider, Outcome: OutcomeRetryable, Reason: err.Error()}
	}
	if res.Success {
		return ProviderAttempt{
			Provider:           provider,
			Outcome:            OutcomeSuccess,
			ConfirmationNumber: res.ConfirmationNumber,
			TrackingNumber:     res.TrackingNumber,
		}
	}
	outcome := OutcomeNonRetryable
	if res.Retryable {
		outcome = OutcomeRetryable
	}
	return ProviderAttempt{
		Provider:  provider,
		Outcome:   outcome,
		Reason:    res.ErrorMessage,
		ErrorCode: res.ErrorCode,
	}
}

// DecideNext applies the failover policy to one classified attempt.
//
// Retryable (transient/network) failures justify exhausting the remaining
// providers in order. A non-retryable failure is data-related and would fail
// identically on any provider, so the policy skips straight to the document
// path rather than wasting calls.
func DecideNext(a ProviderAttempt) NextAction {
	switch a.Outcome {
	case OutcomeSuccess:
		return ActionAccept
	case OutcomeRetryable:
		return ActionNextProvider
	default:
		return ActionFallback
	}
}

// Summaries converts attempts into the shape shared with audit collaborators
// and failure responses.
func Summaries(attempts []ProviderAttempt) []interfaces.AttemptSummary {
	out := make([]interfaces.AttemptSummary, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, interfaces.AttemptSummary{
			Provider: a.Provider,
			Outcome:  string(a.Outcome),
			Reason:   a.Reason,
		})
	}
	return out
}
