package routes

import (
	"claimflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClaims = "/claims"
)

func addClaimRoutes(rg *gin.RouterGroup, claimHandler *handlers.ClaimHandler, submissionHandler *handlers.SubmissionHandler) {
	claims := rg.Group(PathClaims)
	{
		claims.POST("", claimHandler.CreateClaim)
		claims.GET("/:claim_id", claimHandler.GetClaim)
		claims.GET("/patient/:patient_id", claimHandler.ListClaimsByPatient)
		claims.PATCH("/:claim_id/cancel", claimHandler.CancelClaim)
		claims.PATCH("/:claim_id/status", claimHandler.UpdateClaimStatus)
		claims.PATCH("/:claim_id/appeal", claimHandler.AppealClaim)
		claims.GET("/:claim_id/timeline", claimHandler.ListTimeline)

		claims.POST("/:claim_id/submit", submissionHandler.SubmitClaim)
		claims.GET("/:claim_id/submission-status", claimHandler.GetSubmissionStatus)
		claims.GET("/:claim_id/submissions", claimHandler.ListSubmissions)
	}
}
