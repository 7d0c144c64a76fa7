package webhook

import (
	"context"

	"booking-refund-service/internal/domain/refund"
)

// SyncProcessor applies gateway results by calling the refund service directly.
type SyncProcessor struct {
	refundService *refund.RefundService
}

func NewSyncProcessor(refundService *refund.RefundService) *SyncProcessor {
	return &SyncProcessor{
		refundService: refundService,
	}
}

func (p *SyncProcessor) ProcessGatewayResult(ctx context.Context, webhook GatewayResultWebhook) error {
	outcome, err := webhook.ParseOutcome()
	if err != nil {
		return err
	}

	_, err = p.refundService.ApplyGatewayResult(ctx, webhook.RefundID, outcome, webhook.ErrorMessage)
	return err
}
