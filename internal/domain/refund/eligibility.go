package refund

import (
	"booking-refund-service/internal/domain/ledger"

	"github.com/google/uuid"
)

// Eligibility is the advisory answer of the evaluator. A positive answer
// carries the payment details the caller needs to construct the refund
// request without a second ledger read. It is not a lock: the real mutual
// exclusion is the transactional re-check at creation time.
type Eligibility struct {
	Eligible          bool                 `json:"eligible"`
	Reason            string               `json:"reason,omitempty"`
	PaymentID         string               `json:"payment_id,omitempty"`
	ExternalPaymentID string               `json:"external_payment_id,omitempty"`
	Amount            float64              `json:"amount,omitempty"`
	PaymentMethod     ledger.PaymentMethod `json:"payment_method,omitempty"`
	ResourceStatus    string               `json:"resource_status,omitempty"`
}

const (
	ineligibleAlreadyPending   = "refund already pending for this resource"
	ineligibleNotFound         = "resource not found"
	ineligibleNotOwner         = "requester is not the resource owner"
	ineligibleAlreadyProcessed = "resource already processed, contact support"
	ineligibleCashPayment      = "cash payments cannot be refunded through the gateway, use the cancellation flow instead"
	ineligiblePaymentNotPaid   = "payment not completed"
	ineligibleNoGatewayPayment = "no gateway payment found for this resource"
)

func ineligible(reason string) Eligibility {
	return Eligibility{Eligible: false, Reason: reason}
}

// evaluateSnapshot runs the resource and payment gates against a loaded
// ledger snapshot. Deterministic and side-effect free; the active refund
// gate needs repository access and lives in the service.
func evaluateSnapshot(snapshot *ledger.Snapshot, kind ledger.ResourceKind, requesterID uuid.UUID) Eligibility {
	if snapshot == nil {
		return ineligible(ineligibleNotFound)
	}
	if snapshot.OwnerID != requesterID {
		return ineligible(ineligibleNotOwner)
	}

	refundable := ledger.OrderRefundableStatus
	if kind == ledger.KindBooking {
		refundable = ledger.BookingRefundableStatus
	}
	if snapshot.Status != refundable {
		return ineligible(ineligibleAlreadyProcessed)
	}

	if !snapshot.PaymentMethod.Refundable() {
		return ineligible(ineligibleCashPayment)
	}
	if snapshot.PaymentStatus != ledger.PaymentPaid {
		return ineligible(ineligiblePaymentNotPaid)
	}
	if snapshot.ExternalPaymentID == nil || *snapshot.ExternalPaymentID == "" {
		return ineligible(ineligibleNoGatewayPayment)
	}

	return Eligibility{
		Eligible:          true,
		PaymentID:         snapshot.PaymentID,
		ExternalPaymentID: *snapshot.ExternalPaymentID,
		Amount:            snapshot.TotalAmount,
		PaymentMethod:     snapshot.PaymentMethod,
		ResourceStatus:    snapshot.Status,
	}
}
