// Package poller reconciles refunds stuck in flight with the payment
// gateway. Webhooks are the primary delivery path for gateway results;
// the poller is the safety net for dropped or delayed callbacks.
package poller

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"booking-refund-service/internal/domain/refund"
	"booking-refund-service/internal/external/paymongo"
	"booking-refund-service/pkg/correlation"
)

type Config struct {
	Interval   time.Duration
	PageSize   int
	StaleAfter time.Duration
	Retry      RetryConfig
}

type refundReconciler interface {
	GetRefunds(ctx context.Context, query refund.RefundsQuery) ([]refund.RefundRequest, error)
	ApplyGatewayResult(ctx context.Context, refundID string, outcome refund.Outcome, gatewayMessage *string) (refund.RefundRequest, error)
}

type gatewayReader interface {
	GetRefund(ctx context.Context, externalRefundID string) (paymongo.RefundStatus, error)
	ListRefunds(ctx context.Context, q paymongo.ListRefundsQuery) ([]paymongo.RefundStatus, error)
}

type Poller struct {
	refunds refundReconciler
	gateway gatewayReader
	cfg     Config
}

func New(refunds refundReconciler, gateway gatewayReader, cfg Config) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = 15 * time.Minute
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = DefaultRetryConfig()
	}
	return &Poller{refunds: refunds, gateway: gateway, cfg: cfg}
}

// Run polls until the context is cancelled. Each cycle gets its own
// correlation ID so log lines from one sweep can be grouped.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			cycleCtx := correlation.WithID(ctx, correlation.NewID())
			p.reconcileProcessing(cycleCtx)
			p.flagStalePending(cycleCtx)
		}
	}
}

// reconcileProcessing walks all processing refunds and asks the gateway
// whether it already reached a terminal outcome for them.
func (p *Poller) reconcileProcessing(ctx context.Context) {
	page := 1
	for {
		query, err := refund.NewRefundsQueryBuilder().
			WithStatuses(refund.StatusProcessing).
			WithSort("requested_at", "asc").
			WithPagination(refund.Pagination{PageSize: p.cfg.PageSize, PageNumber: page}).
			Build()
		if err != nil {
			slog.ErrorContext(ctx, "Failed to build reconcile query", slog.Any("error", err))
			return
		}

		refunds, err := p.refunds.GetRefunds(ctx, *query)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to list processing refunds", slog.Any("error", err))
			return
		}

		for _, ref := range refunds {
			p.reconcileOne(ctx, ref)
		}

		if len(refunds) < p.cfg.PageSize {
			return
		}
		page++
	}
}

func (p *Poller) reconcileOne(ctx context.Context, ref refund.RefundRequest) {
	if ref.ExternalRefundID == nil || *ref.ExternalRefundID == "" {
		// Processing implies a submitted gateway refund; a missing id is corrupt state.
		slog.ErrorContext(ctx, "Processing refund has no gateway refund id",
			slog.String("refund_id", ref.ID))
		return
	}

	var status paymongo.RefundStatus
	err := doWithRetry(ctx, p.cfg.Retry, func() error {
		var getErr error
		status, getErr = p.gateway.GetRefund(ctx, *ref.ExternalRefundID)
		return getErr
	})
	if err != nil {
		if errors.Is(err, paymongo.ErrRefundNotFound) {
			slog.ErrorContext(ctx, "Gateway does not know submitted refund",
				slog.String("refund_id", ref.ID),
				slog.String("external_refund_id", *ref.ExternalRefundID))
			return
		}
		slog.WarnContext(ctx, "Failed to fetch gateway refund status",
			slog.String("refund_id", ref.ID), slog.Any("error", err))
		return
	}

	if status.Outcome == nil {
		// Gateway is still processing; check again next cycle.
		return
	}

	if _, err := p.refunds.ApplyGatewayResult(ctx, ref.ID, *status.Outcome, status.FailureReason); err != nil {
		slog.ErrorContext(ctx, "Failed to apply polled gateway result",
			slog.String("refund_id", ref.ID),
			slog.String("outcome", string(*status.Outcome)),
			slog.Any("error", err))
		return
	}

	slog.InfoContext(ctx, "Reconciled refund from gateway poll",
		slog.String("refund_id", ref.ID),
		slog.String("outcome", string(*status.Outcome)))
}

// flagStalePending surfaces pending refunds old enough that a submission
// may have been lost between the gateway call and the local commit. They
// are reported for operator review, never auto-resubmitted: submitting
// again could refund the payment twice.
func (p *Poller) flagStalePending(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-p.cfg.StaleAfter)

	query, err := refund.NewRefundsQueryBuilder().
		WithStatuses(refund.StatusPending).
		WithRequestedBetween(time.Unix(0, 0).UTC(), cutoff).
		WithSort("requested_at", "asc").
		WithPagination(refund.Pagination{PageSize: p.cfg.PageSize, PageNumber: 1}).
		Build()
	if err != nil {
		slog.ErrorContext(ctx, "Failed to build stale-pending query", slog.Any("error", err))
		return
	}

	refunds, err := p.refunds.GetRefunds(ctx, *query)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to list stale pending refunds", slog.Any("error", err))
		return
	}

	for _, ref := range refunds {
		existing, err := p.gateway.ListRefunds(ctx, paymongo.ListRefundsQuery{
			PaymentID: ref.ExternalPaymentID,
			Limit:     1,
		})
		if err != nil {
			slog.WarnContext(ctx, "Failed to look up gateway refunds for stale pending request",
				slog.String("refund_id", ref.ID), slog.Any("error", err))
			continue
		}
		if len(existing) > 0 {
			slog.ErrorContext(ctx, "Gateway already holds a refund for a pending request",
				slog.String("refund_id", ref.ID),
				slog.String("external_payment_id", ref.ExternalPaymentID),
				slog.String("external_refund_id", existing[0].ExternalRefundID))
			continue
		}
		slog.WarnContext(ctx, "Refund pending past staleness threshold",
			slog.String("refund_id", ref.ID),
			slog.Time("requested_at", ref.RequestedAt))
	}
}
