package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"claimflow/internal/adapter/http/handlers/mocks"
	"claimflow/internal/domain/entities"
	"claimflow/internal/usecase"
	"claimflow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSubmitRouter(uc usecase.ISubmissionUseCase) *gin.Engine {
	h := NewSubmissionHandler(uc)
	r := gin.New()
	r.POST("/v1/claims/:claim_id/submit", h.SubmitClaim)
	return r
}

func TestSubmissionHandler_SubmitClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)

		submitted := sampleClaim()
		submitted.Status = entities.ClaimStatusSubmitted
		uc.EXPECT().Submit(gomock.Any(), usecase.SubmitInput{ClaimID: "claim-1"}).Return(usecase.SubmissionOutcome{
			Claim: submitted,
			Record: entities.SubmissionRecord{
				ID:                 "sub-1",
				ClaimID:            "claim-1",
				Method:             entities.SubmissionMethodElectronic,
				ProviderName:       "alpha",
				ConfirmationNumber: "CONF-1",
				Active:             true,
				SubmittedAt:        time.Now().UTC(),
			},
			Attempts: []usecase.ProviderAttempt{{Provider: "alpha", Outcome: usecase.OutcomeSuccess}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/claim-1/submit", nil)
		w := httptest.NewRecorder()
		newSubmitRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Claim      map[string]any   `json:"claim"`
			Submission map[string]any   `json:"submission"`
			Attempts   []map[string]any `json:"attempts"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.Claim["status"] != "submitted" || resp.Submission["confirmation_number"] != "CONF-1" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if len(resp.Attempts) != 1 || resp.Attempts[0]["provider"] != "alpha" {
			t.Fatalf("unexpected attempts: %+v", resp.Attempts)
		}
	})

	t.Run("method and insurer forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)

		uc.EXPECT().Submit(gomock.Any(), usecase.SubmitInput{
			ClaimID: "claim-1",
			Method:  entities.SubmissionMethodDocument,
			Insurer: interfaces.InsurerInfo{PayerName: "Acme Health", MemberID: "M-1"},
		}).Return(usecase.SubmissionOutcome{Claim: sampleClaim()}, nil)

		body := `{"method":"document","insurer_info":{"payer_name":"Acme Health","member_id":"M-1"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/claims/claim-1/submit", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newSubmitRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/claim-1/submit", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newSubmitRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("incomplete claim maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmissionOutcome{},
			&usecase.ValidationError{ClaimID: "claim-1", Issues: []string{"at least one valid CPT code is required"}})

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/claim-1/submit", nil)
		w := httptest.NewRecorder()
		newSubmitRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("already in progress maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmissionOutcome{}, usecase.ErrAlreadyInProgress)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/claim-1/submit", nil)
		w := httptest.NewRecorder()
		newSubmitRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("fatal failure maps to 502 with attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmissionOutcome{}, &usecase.SubmissionFailureError{
			ClaimID: "claim-1",
			Attempts: []usecase.ProviderAttempt{
				{Provider: "alpha", Outcome: usecase.OutcomeRetryable, Reason: "timeout"},
				{Provider: "beta", Outcome: usecase.OutcomeRetryable, Reason: "unavailable"},
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/claim-1/submit", nil)
		w := httptest.NewRecorder()
		newSubmitRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var resp struct {
			Error    map[string]any   `json:"error"`
			Attempts []map[string]any `json:"attempts"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.Error["code"] != "SUBMISSION_FAILED" {
			t.Fatalf("unexpected error code: %v", resp.Error)
		}
		if len(resp.Attempts) != 2 || resp.Attempts[1]["provider"] != "beta" {
			t.Fatalf("expected both attempts in body: %+v", resp.Attempts)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmissionOutcome{}, usecase.ErrClaimNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/missing/submit", nil)
		w := httptest.NewRecorder()
		newSubmitRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
