package bootstrap

import (
	"ai-roomplanner-be/internal/catalog"
	"ai-roomplanner-be/internal/config"
	"ai-roomplanner-be/internal/controller"
	"ai-roomplanner-be/internal/pkg/logger"
	"ai-roomplanner-be/internal/pkg/mailer"
	"ai-roomplanner-be/internal/repository/memory"
	"ai-roomplanner-be/internal/service"
	"ai-roomplanner-be/pkg/planner/inference"
	"ai-roomplanner-be/pkg/planner/recommend"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	CatalogController        controller.ICatalogController
	PlannerController        controller.IPlannerController
	RecommendationController controller.IRecommendationController
	AnalysisController       controller.IAnalysisController
	ConsultationController   controller.IConsultationController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(store *catalog.Store, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Mail stays optional; without SMTP config the consumer just logs.
	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.Email,
			cfg.SMTP.SenderName,
		)
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Domain Cores
	sessionRepo := memory.NewSessionRepository(cfg.Planner.SessionTTL)
	engine := recommend.NewEngine(store)
	analyzer := inference.NewAnalyzer(inference.NewStyleScorer(store), cfg.Planner.AnalysisDelay)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub)
	consumerService := service.NewConsumerService(pubSub, emailService, sysLogger)

	plannerService := service.NewPlannerService(sessionRepo, store, publisherService, cfg.App.ClientURL, sysLogger)
	recommendationService := service.NewRecommendationService(engine, sessionRepo, sysLogger)
	analysisService := service.NewAnalysisService(analyzer, sessionRepo, publisherService, sysLogger)
	consultationService := service.NewConsultationService(sessionRepo, publisherService, sysLogger)
	catalogService := service.NewCatalogService(store)

	// 5. Controllers
	return &Container{
		CatalogController:        controller.NewCatalogController(catalogService),
		PlannerController:        controller.NewPlannerController(plannerService),
		RecommendationController: controller.NewRecommendationController(recommendationService),
		AnalysisController:       controller.NewAnalysisController(analysisService),
		ConsultationController:   controller.NewConsultationController(consultationService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
