package interfaces

import (
	"context"

	"claimflow/internal/domain/entities"
)

// FallbackDocument is the stored manually-submittable claim form.
type FallbackDocument struct {
	ID      string `json:"id"`
	Locator string `json:"locator"`
}

// IFallbackDocumentGenerator produces a retrievable document record for a
// claim when electronic delivery is not possible.
//
// Generate must derive document identity from the claim and the caller's
// stable submission ID, so repeated calls for the same attempt sequence do not
// silently duplicate stored documents.
type IFallbackDocumentGenerator interface {
	Generate(ctx context.Context, c entities.Claim, submissionID string) (FallbackDocument, error)
}
