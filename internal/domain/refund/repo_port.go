package refund

import (
	"context"
	"time"

	"booking-refund-service/internal/domain/ledger"
)

//go:generate mockgen -source repo_port.go -destination mock_refund.go -package refund

type TxRefundRepo interface {
	GetRefunds(ctx context.Context, query *RefundsQuery) ([]RefundRequest, error)

	CreateRefund(ctx context.Context, request RefundRequest) error
	UpdateRefund(ctx context.Context, request RefundRequest) error
	CreateRefundEvent(ctx context.Context, event RefundEvent) error

	// MarkResourceRefunded flips the ledger resource into its terminal
	// refunded status. Idempotent: marking an already-refunded resource
	// is a no-op.
	MarkResourceRefunded(ctx context.Context, kind ledger.ResourceKind, resourceID string) error

	StatsByStatus(ctx context.Context, from, to time.Time) ([]StatusStat, error)
}

type RefundRepo interface {
	TxRefundRepo
	InTransaction(ctx context.Context, fn func(repo TxRefundRepo) error) error
}

// SubmissionRequest is the narrow contract with the payment gateway.
type SubmissionRequest struct {
	ExternalPaymentID string
	Amount            float64
	Reason            Reason
}

type SubmissionResult struct {
	ExternalRefundID string
}

type GatewayClient interface {
	SubmitRefund(ctx context.Context, request SubmissionRequest) (SubmissionResult, error)
}

// EventSink receives refund lifecycle events for indexing (search/audit).
// Sinks are best effort: indexing failures are logged, never propagated.
type EventSink interface {
	IndexRefundEvent(ctx context.Context, event RefundEvent) error
}
