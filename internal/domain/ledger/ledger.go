// Package ledger exposes the read side of the externally-owned resource
// ledger (orders and bookings) to the refund core. The only mutation the
// core is allowed is the idempotent "mark refunded" side effect, which is
// executed inside the refund repository transaction.
package ledger

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"
)

//go:generate mockgen -source ledger.go -destination mock_ledger.go -package ledger

type ResourceKind string

const (
	KindOrder   ResourceKind = "order"
	KindBooking ResourceKind = "booking"
)

var AvailableKinds = []ResourceKind{KindOrder, KindBooking}

func NewResourceKind(raw string) (ResourceKind, error) {
	if slices.Contains(AvailableKinds, ResourceKind(raw)) {
		return ResourceKind(raw), nil
	}
	return "", errors.New("invalid resource kind")
}

// Resource status literals the eligibility gate compares against. The two
// ledgers use different casing conventions; both are preserved verbatim.
const (
	OrderRefundableStatus   = "pending"
	BookingRefundableStatus = "Pending"
)

type PaymentMethod string

const (
	MethodGcash        PaymentMethod = "gcash"
	MethodPaymaya      PaymentMethod = "paymaya"
	MethodCard         PaymentMethod = "card"
	MethodCash         PaymentMethod = "cash"
	MethodCashOnPickup PaymentMethod = "cash_on_pickup"
)

// Refundable reports whether the method can be refunded through the
// gateway. Cash methods are cancel-only.
func (m PaymentMethod) Refundable() bool {
	return m != MethodCash && m != MethodCashOnPickup
}

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Snapshot is the narrow read the eligibility evaluator needs: resource
// ownership and status joined with its current payment record.
type Snapshot struct {
	OwnerID           uuid.UUID
	Status            string
	PaymentID         string
	PaymentMethod     PaymentMethod
	PaymentStatus     PaymentStatus
	ExternalPaymentID *string
	TotalAmount       float64
}

// Reader loads resources for refund checks. Returns (nil, nil) when the
// resource does not exist.
type Reader interface {
	GetResourceForRefundCheck(ctx context.Context, kind ResourceKind, resourceID string) (*Snapshot, error)
}
