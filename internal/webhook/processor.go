package webhook

import (
	"context"
	"fmt"
	"time"

	"booking-refund-service/internal/domain/refund"
)

// GatewayResultWebhook is the gateway's callback payload reporting the
// final outcome of a submitted refund. Delivery is at-least-once and may
// arrive out of order.
type GatewayResultWebhook struct {
	RefundID         string    `json:"refund_id" binding:"required"`
	ExternalRefundID string    `json:"external_refund_id"`
	Outcome          string    `json:"outcome" binding:"required,oneof=succeeded failed"`
	ErrorMessage     *string   `json:"error_message,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

func (w *GatewayResultWebhook) ParseOutcome() (refund.Outcome, error) {
	outcome, err := refund.NewOutcome(w.Outcome)
	if err != nil {
		return "", fmt.Errorf("%w: %s", refund.ErrInvalidRequest, err.Error())
	}
	return outcome, nil
}

// Processor defines the interface for processing gateway result webhooks.
// Implementations can apply results synchronously or hand them to Kafka.
type Processor interface {
	ProcessGatewayResult(ctx context.Context, webhook GatewayResultWebhook) error
}
