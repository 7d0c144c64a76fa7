package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"booking-refund-service/internal/domain/refund"
	"booking-refund-service/internal/messaging"
)

// AsyncProcessor accepts gateway results by publishing them to Kafka; a
// consumer applies them via the refund service. Keyed by refund id so
// results for the same refund stay ordered within a partition.
type AsyncProcessor struct {
	publisher messaging.Publisher
}

func NewAsyncProcessor(publisher messaging.Publisher) *AsyncProcessor {
	return &AsyncProcessor{
		publisher: publisher,
	}
}

func (p *AsyncProcessor) ProcessGatewayResult(ctx context.Context, webhook GatewayResultWebhook) error {
	envelope, err := messaging.NewEnvelope(webhook.RefundID, "refund.gateway_result", webhook)
	if err != nil {
		return fmt.Errorf("create envelope: %w", err)
	}
	return p.publisher.Publish(ctx, envelope)
}

// NewGatewayResultHandler builds the consumer-side handler that unwraps
// envelopes and applies results through the refund service. Invalid
// payloads are dropped (committed) rather than redelivered forever;
// application errors are returned so the message is retried.
func NewGatewayResultHandler(refundService *refund.RefundService) messaging.MessageHandler {
	return func(ctx context.Context, key, value []byte) error {
		var envelope messaging.Envelope
		if err := json.Unmarshal(value, &envelope); err != nil {
			slog.ErrorContext(ctx, "Dropping malformed envelope", "key", string(key), slog.Any("error", err))
			return nil
		}

		var webhook GatewayResultWebhook
		if err := json.Unmarshal(envelope.Payload, &webhook); err != nil {
			slog.ErrorContext(ctx, "Dropping malformed gateway result", "event_id", envelope.EventID, slog.Any("error", err))
			return nil
		}

		outcome, err := webhook.ParseOutcome()
		if err != nil {
			slog.ErrorContext(ctx, "Dropping gateway result with unknown outcome",
				"refund_id", webhook.RefundID, "outcome", webhook.Outcome)
			return nil
		}

		_, err = refundService.ApplyGatewayResult(ctx, webhook.RefundID, outcome, webhook.ErrorMessage)
		return err
	}
}
