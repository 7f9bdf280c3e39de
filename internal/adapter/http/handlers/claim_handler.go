package handlers

import (
	"errors"
	"net/http"

	request "claimflow/internal/adapter/http/dto/request"
	response "claimflow/internal/adapter/http/dto/response"
	"claimflow/internal/usecase"
	"claimflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidClaimPayload = pkg.NewDomainErrorSimple("INVALID_CLAIM_INPUT", "Invalid claim payload", http.StatusBadRequest)

// ClaimHandler handles HTTP requests for claim management: drafts, reads,
// cancellation, payer adjudication, appeal, and the audit read models.

type ClaimHandler struct {
	usecase usecase.IClaimUseCase
}

func NewClaimHandler(uc usecase.IClaimUseCase) *ClaimHandler {
	return &ClaimHandler{usecase: uc}
}

// CreateClaim opens a new draft claim.
//
//	@Summary	Create a draft claim
//	@Tags		claims
//	@Accept		json
//	@Produce	json
//	@Param		claim	body		request.CreateClaimRequest	true	"Claim data"
//	@Success	201		{object}	response.ClaimResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	422		{object}	pkg.HTTPError
//	@Router		/claims [post]
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	var payload request.CreateClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClaimPayload.HTTPStatus, errInvalidClaimPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_DATE_OF_SERVICE", "date_of_service must be YYYY-MM-DD or RFC3339", http.StatusBadRequest).ToHTTPError())
		return
	}

	created, err := h.usecase.CreateClaim(c.Request.Context(), in)
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClaim(created))
}

// GetClaim returns one claim by id.
//
//	@Summary	Get a claim
//	@Tags		claims
//	@Produce	json
//	@Param		claim_id	path		string	true	"Claim ID"
//	@Success	200			{object}	response.ClaimResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Router		/claims/{claim_id} [get]
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	claim, err := h.usecase.GetByID(c.Request.Context(), c.Param("claim_id"))
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(claim))
}

// ListClaimsByPatient returns every claim of a patient.
//
//	@Summary	List claims by patient
//	@Tags		claims
//	@Produce	json
//	@Param		patient_id	path	string	true	"Patient ID"
//	@Success	200			{array}	response.ClaimResponse
//	@Router		/claims/patient/{patient_id} [get]
func (h *ClaimHandler) ListClaimsByPatient(c *gin.Context) {
	claims, err := h.usecase.ListByPatientID(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClaims(claims))
}

// CancelClaim cancels a draft or submitted claim.
//
//	@Summary	Cancel a claim
//	@Tags		claims
//	@Accept		json
//	@Produce	json
//	@Param		claim_id	path		string						true	"Claim ID"
//	@Param		body		body		request.CancelClaimRequest	false	"Cancellation cause"
//	@Success	200			{object}	response.ClaimResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Failure	409			{object}	pkg.HTTPError
//	@Router		/claims/{claim_id}/cancel [patch]
func (h *ClaimHandler) CancelClaim(c *gin.Context) {
	var payload request.CancelClaimRequest
	// Body is optional for cancellation.
	_ = c.ShouldBindJSON(&payload)

	claim, err := h.usecase.CancelClaim(c.Request.Context(), c.Param("claim_id"), payload.Cause)
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(claim))
}

// UpdateClaimStatus applies a payer-side adjudication status.
//
//	@Summary	Adjudicate a claim
//	@Tags		claims
//	@Accept		json
//	@Produce	json
//	@Param		claim_id	path		string						true	"Claim ID"
//	@Param		body		body		request.AdjudicationRequest	true	"New status"
//	@Success	200			{object}	response.ClaimResponse
//	@Failure	400			{object}	pkg.HTTPError
//	@Failure	404			{object}	pkg.HTTPError
//	@Failure	409			{object}	pkg.HTTPError
//	@Router		/claims/{claim_id}/status [patch]
func (h *ClaimHandler) UpdateClaimStatus(c *gin.Context) {
	var payload request.AdjudicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClaimPayload.HTTPStatus, errInvalidClaimPayload.ToHTTPError())
		return
	}

	claim, err := h.usecase.AdjudicateClaim(c.Request.Context(), c.Param("claim_id"), payload.ToInput())
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(claim))
}

// AppealClaim moves a denied claim into appeal.
//
//	@Summary	Appeal a denied claim
//	@Tags		claims
//	@Accept		json
//	@Produce	json
//	@Param		claim_id	path		string						true	"Claim ID"
//	@Param		body		body		request.CancelClaimRequest	false	"Appeal cause"
//	@Success	200			{object}	response.ClaimResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Failure	409			{object}	pkg.HTTPError
//	@Router		/claims/{claim_id}/appeal [patch]
func (h *ClaimHandler) AppealClaim(c *gin.Context) {
	var payload request.CancelClaimRequest
	_ = c.ShouldBindJSON(&payload)

	claim, err := h.usecase.AppealClaim(c.Request.Context(), c.Param("claim_id"), payload.Cause)
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(claim))
}

// GetSubmissionStatus reports the claim status, resubmission eligibility, and
// the active submission record if one exists.
//
//	@Summary	Get submission status
//	@Tags		submissions
//	@Produce	json
//	@Param		claim_id	path		string	true	"Claim ID"
//	@Success	200			{object}	response.SubmissionStatusResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Router		/claims/{claim_id}/submission-status [get]
func (h *ClaimHandler) GetSubmissionStatus(c *gin.Context) {
	status, err := h.usecase.GetSubmissionStatus(c.Request.Context(), c.Param("claim_id"))
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmissionStatus(status))
}

// ListTimeline returns the append-only status history of a claim.
//
//	@Summary	List claim timeline
//	@Tags		claims
//	@Produce	json
//	@Param		claim_id	path	string	true	"Claim ID"
//	@Success	200			{array}	response.TimelineEventResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Router		/claims/{claim_id}/timeline [get]
func (h *ClaimHandler) ListTimeline(c *gin.Context) {
	events, err := h.usecase.ListTimeline(c.Request.Context(), c.Param("claim_id"))
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTimelineEvents(events))
}

// ListSubmissions returns the full submission lineage of a claim.
//
//	@Summary	List claim submissions
//	@Tags		submissions
//	@Produce	json
//	@Param		claim_id	path	string	true	"Claim ID"
//	@Success	200			{array}	response.SubmissionRecordResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Router		/claims/{claim_id}/submissions [get]
func (h *ClaimHandler) ListSubmissions(c *gin.Context) {
	records, err := h.usecase.ListSubmissions(c.Request.Context(), c.Param("claim_id"))
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmissionRecords(records))
}

func mapClaimError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClaimID), errors.Is(err, usecase.ErrInvalidPatientID), errors.Is(err, usecase.ErrInvalidClaimInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClaimValidation):
		return pkg.NewDomainError("CLAIM_INCOMPLETE", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainError("ILLEGAL_TRANSITION", err.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
