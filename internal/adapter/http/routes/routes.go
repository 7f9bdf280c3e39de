package routes

import (
	"os"
	"strings"

	_ "claimflow/docs" // swag-generated docs registration
	"claimflow/internal/adapter/http/handlers"
	"claimflow/internal/adapter/persistence/repository"
	"claimflow/internal/infrastructure/clearinghouse"
	"claimflow/internal/infrastructure/database"
	"claimflow/internal/infrastructure/documents"
	"claimflow/internal/infrastructure/logging"
	"claimflow/internal/infrastructure/notifications"
	"claimflow/internal/usecase"
	"claimflow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const defaultPort = "8080"

// Run will start the server
func Run() {
	log := logging.New()

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(log)

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes(log *logrus.Logger) {
	ddb := database.ConnectDynamoDB()

	claimRepo := repository.NewClaimDynamoRepository(ddb)
	submissionRepo := repository.NewSubmissionDynamoRepository(ddb)
	timelineRepo := repository.NewTimelineDynamoRepository(ddb)

	lifecycle := usecase.NewClaimLifecycle()

	documentGenerator, err := documents.NewS3DocumentGenerator(
		database.ConnectS3(),
		os.Getenv("CLAIM_DOCUMENTS_BUCKET"),
		log,
	)
	if err != nil {
		log.Fatalf("fallback document generator not configured: %v", err)
	}

	notifier := notifications.NewWebhookNotifier(os.Getenv("SUBMISSION_EVENTS_WEBHOOK_URL"), log)
	if notifier == nil {
		log.Info("submission event notifications disabled")
	}

	gateways, err := buildGateways(log)
	if err != nil {
		log.Fatalf("clearinghouse gateways not configured: %v", err)
	}

	claimUseCase := usecase.NewClaimUseCase(claimRepo, submissionRepo, timelineRepo, lifecycle, log)
	submissionUseCase := usecase.NewSubmissionOrchestrator(
		claimRepo, submissionRepo, timelineRepo,
		gateways, documentGenerator, notifierOrNil(notifier),
		usecase.NewIdempotencyGuard(), lifecycle, log,
	)

	claimHandler := handlers.NewClaimHandler(claimUseCase)
	submissionHandler := handlers.NewSubmissionHandler(submissionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClaimRoutes(v1, claimHandler, submissionHandler)
}

// buildGateways reads CLEARINGHOUSE_PROVIDERS, constructs one gateway per
// entry (mock gateways when CLEARINGHOUSE_MOCK is on), and orders them by
// priority.
func buildGateways(log *logrus.Logger) ([]interfaces.IProviderGateway, error) {
	cfgs, err := clearinghouse.ParseProviderConfigs(os.Getenv("CLEARINGHOUSE_PROVIDERS"))
	if err != nil {
		return nil, err
	}

	mock := clearinghouse.IsMockEnabled()
	if mock {
		log.Info("clearinghouse mock mode enabled")
	}

	prioritized := make([]usecase.PrioritizedGateway, 0, len(cfgs))
	for _, cfg := range cfgs {
		var gw interfaces.IProviderGateway
		if mock {
			gw = clearinghouse.NewMockGateway(cfg)
		} else {
			gw = clearinghouse.NewHTTPGateway(cfg, log)
		}
		prioritized = append(prioritized, usecase.PrioritizedGateway{Gateway: gw, Priority: cfg.Priority})
	}
	return usecase.SortGatewaysByPriority(prioritized), nil
}

// notifierOrNil avoids handing a typed-nil pointer through the interface.
func notifierOrNil(n *notifications.WebhookNotifier) interfaces.ISubmissionNotifier {
	if n == nil {
		return nil
	}
	return n
}

func setMiddlewares(log *logrus.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
