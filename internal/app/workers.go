package app

import (
	"context"
	"log/slog"

	"booking-refund-service/config"
	"booking-refund-service/internal/domain/refund"
	"booking-refund-service/internal/external/kafka"
	"booking-refund-service/internal/messaging"
	"booking-refund-service/internal/webhook"
)

// StartWorkers starts the Kafka consumer that applies enqueued gateway
// results. It returns immediately; the runner stops when ctx is cancelled.
func StartWorkers(ctx context.Context, cfg config.Config, refundService *refund.RefundService) {
	consumer := kafka.NewConsumer(
		cfg.KafkaBrokers,
		cfg.KafkaRefundsTopic,
		cfg.KafkaRefundsConsumerGroup,
	)
	runner := messaging.NewRunner(
		[]messaging.Worker{consumer},
		webhook.NewGatewayResultHandler(refundService),
	)

	go func() {
		slog.Info("Starting refund webhook consumer",
			"topic", cfg.KafkaRefundsTopic,
			"group", cfg.KafkaRefundsConsumerGroup)
		if err := runner.Start(ctx); err != nil {
			slog.Error("Refund webhook runner failed", slog.Any("error", err))
		}
	}()
}
