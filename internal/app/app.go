package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booking-refund-service/config"
	"booking-refund-service/internal/controller/rest"
	"booking-refund-service/internal/controller/rest/handlers"
	"booking-refund-service/internal/domain/availability"
	"booking-refund-service/internal/domain/refund"
	"booking-refund-service/internal/external/kafka"
	"booking-refund-service/internal/external/opensearch"
	"booking-refund-service/internal/external/paymongo"
	"booking-refund-service/internal/poller"
	availability_repo "booking-refund-service/internal/repo/availability"
	ledger_repo "booking-refund-service/internal/repo/ledger"
	refund_repo "booking-refund-service/internal/repo/refund"
	"booking-refund-service/internal/webhook"
	"booking-refund-service/pkg/health"
	"booking-refund-service/pkg/logger"
	"booking-refund-service/pkg/postgres"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

func Run(cfg config.Config) {
	logger.Setup(logger.Options{Level: cfg.LogLevel})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pool.Close()

	if err := ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	refundRepo := refund_repo.NewPgRefundRepo(pool)
	ledgerRepo := ledger_repo.NewPgLedgerRepo(pool)
	availabilityRepo := availability_repo.NewPgAvailabilityRepo(pool)

	gatewayClient := paymongo.New(
		cfg.GatewayBaseURL,
		cfg.GatewayRefundsPath,
		cfg.GatewayAPIKey,
		&http.Client{Timeout: cfg.HTTPGatewayClientTimeout},
	)

	var sink refund.EventSink
	if len(cfg.OpensearchUrls) > 0 {
		osSink, err := opensearch.NewOpenSearchEventSink(ctx, cfg.OpensearchUrls, cfg.OpensearchIndexEvents)
		if err != nil {
			fatal(fmt.Errorf("app - Run - opensearch.NewOpenSearchEventSink: %w", err))
		}
		sink = osSink
	}

	// Services
	refundService := refund.NewRefundService(refundRepo, ledgerRepo, gatewayClient, sink)
	availabilityService := availability.NewAvailabilityService(availabilityRepo)

	checkers := []health.Checker{health.NewPostgresChecker(pool.Pool)}

	var processor webhook.Processor
	if cfg.WebhookMode == "kafka" {
		slog.Info("Webhook mode: kafka - gateway callbacks enqueued for the consumer")
		publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaRefundsTopic)
		defer publisher.Close()

		processor = webhook.NewAsyncProcessor(publisher)
		checkers = append(checkers, health.NewKafkaChecker(cfg.KafkaBrokers))
		StartWorkers(ctx, cfg, refundService)
	} else {
		processor = webhook.NewSyncProcessor(refundService)
	}

	// Handlers + router
	refundHandler := handlers.NewRefundHandler(refundService, processor)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	router := rest.NewRouter(refundHandler, availabilityHandler, health.NewRegistry(checkers...))

	engine := NewGinEngine()
	router.SetUp(engine)

	if cfg.PollerEnabled {
		reconciler := poller.New(refundService, gatewayClient, poller.Config{
			Interval:   cfg.PollerInterval,
			PageSize:   cfg.PollerPageSize,
			StaleAfter: cfg.PollerStaleAfter,
		})
		go func() {
			slog.Info("Starting gateway reconciliation poller", "interval", cfg.PollerInterval.String())
			if err := reconciler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("Poller stopped", slog.Any("error", err))
			}
		}()
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}
	go func() {
		slog.Info("Starting HTTP server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", slog.Any("error", err))
	}
}

func fatal(err error) {
	slog.Error("Fatal startup error", slog.Any("error", err))
	os.Exit(1)
}
