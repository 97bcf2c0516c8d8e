package bootstrap

import (
	"context"
	"log"
	"time"

	"applicant-portal-be/internal/config"
	"applicant-portal-be/internal/controller"
	"applicant-portal-be/internal/docstore"
	"applicant-portal-be/internal/handler"
	"applicant-portal-be/internal/identity"
	"applicant-portal-be/internal/mapper"
	"applicant-portal-be/internal/pkg/logger"
	"applicant-portal-be/internal/pkg/mailer"
	"applicant-portal-be/internal/pkg/validation"
	"applicant-portal-be/internal/repository/memory"
	"applicant-portal-be/internal/repository/unitofwork"
	"applicant-portal-be/internal/service"
	"applicant-portal-be/internal/websocket"
	pktNats "applicant-portal-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	PortalController    controller.IPortalController
	DashboardController controller.IDashboardController

	// Long-lived services the server needs direct access to
	PortalService    service.IPortalService
	IdentityProvider identity.Provider

	// WebSockets
	SessionEventHandler *handler.SessionEventHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Session change bus
	watermillLogger := watermill.NewStdLogger(false, false)
	sessionBus := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket hub with its own log file
	wsLogger := logger.NewIsolatedLogger("logs/session_events.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Identity and stores
	sessionTTL := time.Duration(cfg.Auth.SessionTTLHours) * time.Hour
	sessionRegistry := memory.NewSessionRegistry(sessionTTL)
	provider := identity.NewLocalProvider(
		uowFactory,
		sessionRegistry,
		sessionBus,
		natsPub,
		sysLogger,
		cfg.Auth.JWTSecret,
		sessionTTL,
	)

	docs := docstore.NewGormStore(db)
	profileMapper := mapper.NewProfileMapper()

	validationClient := validation.NewClient(
		cfg.Validation.WebhookURL,
		time.Duration(cfg.Validation.TimeoutSeconds)*time.Second,
	)

	// 4. Services
	authService := service.NewAuthService(
		provider,
		validationClient,
		docs,
		profileMapper,
		emailService,
		sysLogger,
		cfg.Auth.DefaultDisplayName,
	)

	portalService, err := service.NewPortalService(provider, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to start portal service: %v", err)
	}

	dashboardService := service.NewDashboardService(
		docs,
		profileMapper,
		sysLogger,
		cfg.Onboarding.QuestionnaireFormURL,
		sessionTTL,
	)

	// The hub hears every session change so open tabs stay in sync.
	if _, err := provider.OnSessionChange(wsHub.NotifySessionChange); err != nil {
		log.Printf("[WARN] Failed to subscribe hub to session changes: %v", err)
	}

	// 5. Controllers and handlers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		PortalController:    controller.NewPortalController(portalService, provider, cfg.Auth.JWTSecret),
		DashboardController: controller.NewDashboardController(dashboardService, provider),

		PortalService:    portalService,
		IdentityProvider: provider,

		SessionEventHandler: handler.NewSessionEventHandler(provider, wsHub, cfg.Auth.JWTSecret, wsLogger),
		WebSocketHub:        wsHub,
	}
}
