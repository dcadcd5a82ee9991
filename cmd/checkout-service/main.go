package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jothamO/makemoments-checkout-service/internal/config"
	delivery "github.com/jothamO/makemoments-checkout-service/internal/delivery/http"
	"github.com/jothamO/makemoments-checkout-service/internal/delivery/http/handlers"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/kafka"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/metrics"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/migrate"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/postgres"
	"github.com/jothamO/makemoments-checkout-service/internal/infrastructure/postgres/repository"
	"github.com/jothamO/makemoments-checkout-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.Migrations.Path != "" {
		if err := migrate.RunMigrations(db, cfg.Migrations.Path); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	publisher := kafka.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)
	defer publisher.Close()

	// Init repos
	orderRepo := repository.NewDefaultOrderRepository(db)
	rateRepo := repository.NewDefaultRateRepository(db)
	priceRepo := repository.NewDefaultPriceRepository(db)
	assetCatalog := repository.NewDefaultAssetCatalog(db)
	gatewayConfigRepo := repository.NewDefaultGatewayConfigRepository(db)
	webhookJournal := repository.NewDefaultWebhookJournal(db)

	// Init metrics
	checkoutMetrics := metrics.NewCheckoutMetrics()

	// Init usecases
	rateUsecase := usecase.NewDefaultRateUsecase(rateRepo)
	pricingUsecase := usecase.NewDefaultPricingUsecase(cfg.Pricing.HomeCurrency, assetCatalog, rateUsecase)
	gatewayConfigUsecase := usecase.NewDefaultGatewayConfigUsecase(gatewayConfigRepo)
	orderUsecase := usecase.NewDefaultOrderUsecase(
		orderRepo,
		pricingUsecase,
		priceRepo,
		publisher,
		checkoutMetrics,
		time.Duration(cfg.Pricing.OrderTTLHours)*time.Hour,
	)
	settlementUsecase := usecase.NewDefaultSettlementUsecase(orderRepo, publisher, checkoutMetrics)

	// Init handlers
	checkoutHandler := handlers.NewCheckoutHandler(orderUsecase, pricingUsecase, priceRepo, gatewayConfigUsecase)
	webhookHandler := handlers.NewWebhookHandler(settlementUsecase, gatewayConfigUsecase, webhookJournal, checkoutMetrics)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	delivery.Register(app, checkoutHandler, webhookHandler)

	// Metrics endpoint on its own listener
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(":9100", nil); err != nil {
			slog.Error("metrics server stopped", "error", err.Error())
		}
	}()

	// Keep the rate cache warm
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for {
			if err := rateUsecase.Refresh(); err != nil {
				slog.Error("exchange rate refresh failed", "error", err.Error())
			}
			<-ticker.C
		}
	}()

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("checkout service started on %s\n", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg *config.CheckoutConfig) {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
