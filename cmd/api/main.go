package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/danielasalgadov/zona-de-riego/internal/config"
	"github.com/danielasalgadov/zona-de-riego/internal/content"
	"github.com/danielasalgadov/zona-de-riego/internal/domain/model"
	"github.com/danielasalgadov/zona-de-riego/internal/handler"
	"github.com/danielasalgadov/zona-de-riego/internal/infra/db"
	infraRepo "github.com/danielasalgadov/zona-de-riego/internal/infra/repository"
	"github.com/danielasalgadov/zona-de-riego/internal/metrics"
	"github.com/danielasalgadov/zona-de-riego/internal/notification"
	"github.com/danielasalgadov/zona-de-riego/internal/payment"
	"github.com/danielasalgadov/zona-de-riego/internal/server"
	"github.com/danielasalgadov/zona-de-riego/internal/usecase"
)

func main() {
	// .env is optional outside dev
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}
	if cfg.GoEnv == "dev" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect failed")
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		logger.Fatal().Err(err).Msg("db migrate failed")
	}

	siteContent, err := content.Load(cfg.ContentPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.ContentPath).Msg("content load failed")
	}

	// Repositories (GORM)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	// External collaborators
	gateway := payment.NewMercadoPagoClient(cfg.MercadoPagoBaseURL, cfg.MercadoPagoAccessToken)

	var notifier notification.Notifier = notification.NopNotifier{}
	if cfg.NotifyWebhookURL != "" {
		notifier = notification.NewWebhookNotifier(cfg.NotifyWebhookURL,
			logger.With().Str("component", "notifier").Logger())
	} else {
		logger.Warn().Msg("NOTIFY_WEBHOOK_URL not set, owner notifications disabled")
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	// Usecases
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartItemRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(
		txManager, cartItemRepo, productRepo, orderRepo,
		gateway, notifier,
		logger.With().Str("component", "checkout").Logger(), m,
	)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo, orderItemRepo)
	contactUC := usecase.NewContactUsecase(notifier,
		logger.With().Str("component", "contact").Logger(), m)

	// Handlers
	h := server.Handlers{
		Product:      handler.NewProductHandler(productUC),
		Cart:         handler.NewCartHandler(cartUC),
		Checkout:     handler.NewCheckoutHandler(checkoutUC),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		AdminOrder:   handler.NewAdminOrderHandler(adminOrderUC),
		Contact:      handler.NewContactHandler(contactUC),
		Content:      handler.NewContentHandler(siteContent),
	}

	e := server.New(cfg, gormDB, logger, registry, h)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("server starting")
	if err := e.Start(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
