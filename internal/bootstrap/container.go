package bootstrap

import (
	"context"
	"log"

	"event-ticketing-be/internal/config"
	"event-ticketing-be/internal/controller"
	"event-ticketing-be/internal/handler"
	"event-ticketing-be/internal/pkg/logger"
	"event-ticketing-be/internal/pkg/mailer"
	"event-ticketing-be/internal/repository/memory"
	"event-ticketing-be/internal/repository/unitofwork"
	"event-ticketing-be/internal/service"
	"event-ticketing-be/internal/websocket"
	"event-ticketing-be/pkg/cashfree"

	pktNats "event-ticketing-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const ticketEmailTopic = "ticket_email"

type Container struct {
	// Controllers
	RegistrationController controller.IRegistrationController
	SettingsController     controller.ISettingsController
	PaymentController      controller.IPaymentController
	ScanController         controller.IScanController
	AuthController         controller.IAuthController
	AdminController        controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Live Feed
	CheckinFeedHandler *handler.CheckinFeedHandler
	WebSocketHub       *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Worker Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
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

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/checkin_feed.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Payment Gateway
	gateway := cashfree.NewClient(cfg.Cashfree.AppID, cfg.Cashfree.SecretKey, cfg.Cashfree.Env)

	// Settings Cache
	settingsCache := memory.NewSettingsCache()

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, ticketEmailTopic)
	settingsService := service.NewSettingsService(uowFactory, settingsCache, cfg.Event.DefaultName, cfg.App.BaseURL)
	consumerService := service.NewConsumerService(
		pubSub,
		ticketEmailTopic,
		uowFactory,
		emailService,
		settingsService,
	)

	registrationService := service.NewRegistrationService(uowFactory, natsPub, cfg.Event.TicketPrefix)
	scanService := service.NewScanService(uowFactory, natsPub)
	authService := service.NewAuthService(uowFactory)
	adminService := service.NewAdminService(uowFactory, sysLogger)

	paymentService := service.NewPaymentService(
		uowFactory,
		gateway,
		natsPub,
		publisherService,
		service.PaymentConfig{
			OrderPrefix:   cfg.Event.TicketPrefix,
			PaymentAmount: cfg.Cashfree.PaymentAmount,
			FrontendURL:   cfg.App.FrontendURL,
			BaseURL:       cfg.App.BaseURL,
		},
	)

	// 3.5 Live Check-in Feed (Worker)
	if natsSub != nil {
		feedService := service.NewCheckinFeedService(natsSub, wsHub)
		if err := feedService.Start(); err != nil {
			log.Printf("[WARN] Failed to start check-in feed subscriber: %v", err)
		}
	}

	checkinFeedHandler := handler.NewCheckinFeedHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		CheckinFeedHandler:     checkinFeedHandler,
		WebSocketHub:           wsHub,
		RegistrationController: controller.NewRegistrationController(registrationService),
		SettingsController:     controller.NewSettingsController(settingsService, cfg.Event.UploadDir),
		PaymentController:      controller.NewPaymentController(paymentService),
		ScanController:         controller.NewScanController(scanService),
		AuthController:         controller.NewAuthController(authService),
		AdminController:        controller.NewAdminController(adminService),

		ConsumerService: consumerService,
	}
}
