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

var errInvalidSubmitPayload = pkg.NewDomainErrorSimple("INVALID_SUBMIT_INPUT", "Invalid submit payload", http.StatusBadRequest)

// SubmissionHandler handles HTTP requests for claim submission.

type SubmissionHandler struct {
	usecase usecase.ISubmissionUseCase
}

func NewSubmissionHandler(uc usecase.ISubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{usecase: uc}
}

// submitFailureBody extends the error envelope with the per-provider attempt
// history so callers can see why every path failed.
type submitFailureBody struct {
	Error    pkg.HTTPErrorBody                  `json:"error"`
	Attempts []response.ProviderAttemptResponse `json:"attempts,omitempty"`
}

// SubmitClaim runs the full submission orchestration for one claim.
//
//	@Summary	Submit a claim
//	@Tags		submissions
//	@Accept		json
//	@Produce	json
//	@Param		claim_id	path		string						true	"Claim ID"
//	@Param		body		body		request.SubmitClaimRequest	false	"Submission options"
//	@Success	200			{object}	response.SubmitClaimResponse
//	@Failure	400			{object}	pkg.HTTPError
//	@Failure	404			{object}	pkg.HTTPError
//	@Failure	409			{object}	pkg.HTTPError
//	@Failure	422			{object}	pkg.HTTPError
//	@Failure	502			{object}	pkg.HTTPError
//	@Router		/claims/{claim_id}/submit [post]
func (h *SubmissionHandler) SubmitClaim(c *gin.Context) {
	var payload request.SubmitClaimRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidSubmitPayload.HTTPStatus, errInvalidSubmitPayload.ToHTTPError())
			return
		}
	}

	out, err := h.usecase.Submit(c.Request.Context(), payload.ToInput(c.Param("claim_id")))
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromSubmissionOutcome(out))
}

func (h *SubmissionHandler) writeSubmitError(c *gin.Context, err error) {
	appErr := mapSubmissionError(err)

	var failure *usecase.SubmissionFailureError
	if errors.As(err, &failure) {
		c.JSON(appErr.HTTPStatus, submitFailureBody{
			Error:    appErr.ToHTTPError().Error,
			Attempts: response.FromProviderAttempts(failure.Attempts),
		})
		return
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapSubmissionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClaimID), errors.Is(err, usecase.ErrInvalidSubmitMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyInProgress):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_PROGRESS", "A submission is already in progress for this claim", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainError("ILLEGAL_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrClaimValidation):
		return pkg.NewDomainError("CLAIM_INCOMPLETE", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSubmissionFailed):
		return pkg.NewDomainError("SUBMISSION_FAILED", err.Error(), err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
