package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"claimflow/internal/domain/entities"
)

var ErrClaimValidation = errors.New("claim validation failed")

// Code shape checks shared by every caller. CPT/HCPCS codes are five
// characters (numeric, or four digits plus a letter for category II/III and
// HCPCS level II); ICD-10 codes are a letter, two alphanumerics and an
// optional dotted extension.
var (
	cptCodeRe = regexp.MustCompile(`^[0-9]{4}[0-9A-Z]$`)
	icdCodeRe = regexp.MustCompile(`^[A-TV-Z][0-9][0-9A-Z](\.[0-9A-Z]{1,4})?$`)
)

// ValidationError reports every completeness issue found on a claim, not just
// the first, so the caller can fix them in one pass.
type ValidationError struct {
	ClaimID string
	Issues  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("claim %s validation failed: %s", e.ClaimID, strings.Join(e.Issues, "; "))
}

// Is lets errors.Is(err, ErrClaimValidation) match a *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrClaimValidation
}

// ValidateClaimForSubmission is the single claim-completeness check run before
// any provider is contacted. Incomplete data fails fast; no network call is
// made for a claim that would be rejected on data grounds anyway.
func ValidateClaimForSubmission(c entities.Claim) error {
	var issues []string

	if strings.TrimSpace(c.ProviderName) == "" {
		issues = append(issues, "provider_name is required")
	}
	if c.DateOfService.IsZero() {
		issues = append(issues, "date_of_service is required")
	}
	if c.AmountCents <= 0 {
		issues = append(issues, "amount_cents must be a positive integer of cents")
	}
	if len(c.CPTCodes) == 0 {
		issues = append(issues, "at least one CPT code is required")
	} else {
		for _, code := range c.CPTCodes {
			if !cptCodeRe.MatchString(code) {
				issues = append(issues, fmt.Sprintf("invalid CPT code %q", code))
			}
		}
	}
	if len(c.ICDCodes) == 0 {
		issues = append(issues, "at least one ICD-10 code is required")
	} else {
		for _, code := range c.ICDCodes {
			if !icdCodeRe.MatchString(code) {
				issues = append(issues, fmt.Sprintf("invalid ICD-10 code %q", code))
			}
		}
	}
	if len(c.DocumentRefs) == 0 {
		issues = append(issues, "at least one supporting document is required")
	}

	if len(issues) > 0 {
		return &ValidationError{ClaimID: c.ID, Issues: issues}
	}
	return nil
}

// ValidateCodesIfPresent checks code shapes on a draft without requiring
// completeness; drafts may be saved half-filled.
func ValidateCodesIfPresent(cptCodes, icdCodes []string) error {
	var issues []string
	for _, code := range cptCodes {
		if !cptCodeRe.MatchString(code) {
			issues = append(issues, fmt.Sprintf("invalid CPT code %q", code))
		}
	}
	for _, code := range icdCodes {
		if !icdCodeRe.MatchString(code) {
			issues = append(issues, fmt.Sprintf("invalid ICD-10 code %q", code))
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
