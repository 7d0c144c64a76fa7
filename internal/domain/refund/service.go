package refund

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"booking-refund-service/internal/domain/ledger"
	"booking-refund-service/pkg/metrics"

	"github.com/google/uuid"
)

type RefundService struct {
	refundRepo RefundRepo
	ledger     ledger.Reader
	gateway    GatewayClient
	sink       EventSink
}

func NewRefundService(refundRepo RefundRepo, ledgerReader ledger.Reader, gateway GatewayClient, sink EventSink) *RefundService {
	return &RefundService{
		refundRepo: refundRepo,
		ledger:     ledgerReader,
		gateway:    gateway,
		sink:       sink,
	}
}

// CheckEligibility answers whether a refund may currently be requested for
// the resource. Advisory only: two callers can both see "eligible" before
// either creates a row, the creation-time re-check is what actually excludes.
func (s *RefundService) CheckEligibility(ctx context.Context, kind ledger.ResourceKind, resourceID string, requesterID uuid.UUID) (Eligibility, error) {
	active, err := s.hasActiveRefund(ctx, s.refundRepo, kind, resourceID)
	if err != nil {
		return Eligibility{}, fmt.Errorf("check active refunds: %w", err)
	}
	if active {
		return ineligible(ineligibleAlreadyPending), nil
	}

	snapshot, err := s.ledger.GetResourceForRefundCheck(ctx, kind, resourceID)
	if err != nil {
		return Eligibility{}, fmt.Errorf("load resource for refund check: %w", err)
	}

	return evaluateSnapshot(snapshot, kind, requesterID), nil
}

// Create inserts a new pending refund request. The "no active refund"
// invariant is re-checked inside the transaction; the partial unique index
// on (resource_kind, resource_id) backstops concurrent creators that both
// pass the read check.
func (s *RefundService) Create(ctx context.Context, request CreateRequest) (RefundRequest, error) {
	if err := request.Validate(); err != nil {
		return RefundRequest{}, err
	}

	now := time.Now().UTC()
	created := RefundRequest{
		ID:                uuid.New().String(),
		ResourceKind:      request.ResourceKind,
		ResourceID:        request.ResourceID,
		PaymentID:         request.PaymentID,
		RequestedBy:       request.RequestedBy,
		Amount:            request.Amount,
		OriginalAmount:    request.OriginalAmount,
		Reason:            request.Reason,
		Notes:             request.Notes,
		Status:            StatusPending,
		ExternalPaymentID: request.ExternalPaymentID,
		RequestedAt:       now,
		UpdatedAt:         now,
	}

	err := s.refundRepo.InTransaction(ctx, func(tx TxRefundRepo) error {
		active, err := s.hasActiveRefund(ctx, tx, request.ResourceKind, request.ResourceID)
		if err != nil {
			return fmt.Errorf("re-check active refunds: %w", err)
		}
		if active {
			return ErrActiveRefundExists
		}

		if err := tx.CreateRefund(ctx, created); err != nil {
			return fmt.Errorf("create refund: %w", err)
		}

		return s.saveEvent(ctx, tx, created, EventCreated, StatusPending, nil)
	})
	if err != nil {
		return RefundRequest{}, err
	}
	return created, nil
}

// SubmitToGateway sends a pending (or failed, on retry) refund to the
// payment gateway. A rejected submission never transitions to processing:
// it increments the retry counter and records the failure so the caller
// can schedule another attempt.
func (s *RefundService) SubmitToGateway(ctx context.Context, refundID string) (RefundRequest, error) {
	ref, err := getRefundByID(ctx, s.refundRepo, refundID)
	if err != nil {
		return RefundRequest{}, err
	}

	if ref.Status != StatusPending && ref.Status != StatusFailed {
		return RefundRequest{}, fmt.Errorf("%w: cannot submit refund in status %q", ErrInvalidTransition, ref.Status)
	}

	result, submitErr := s.gateway.SubmitRefund(ctx, SubmissionRequest{
		ExternalPaymentID: ref.ExternalPaymentID,
		Amount:            ref.Amount,
		Reason:            ref.Reason,
	})

	if submitErr != nil {
		metrics.GatewaySubmissionsTotal.WithLabelValues("failed").Inc()
		failed, err := s.recordSubmissionFailure(ctx, refundID, submitErr)
		if err != nil {
			return RefundRequest{}, err
		}
		return failed, fmt.Errorf("submit refund to gateway: %w", submitErr)
	}
	metrics.GatewaySubmissionsTotal.WithLabelValues("accepted").Inc()

	var updated RefundRequest
	err = s.refundRepo.InTransaction(ctx, func(tx TxRefundRepo) error {
		ref, err := getRefundByID(ctx, tx, refundID)
		if err != nil {
			return err
		}
		if !ref.Status.CanBeUpdatedTo(StatusProcessing) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, ref.Status, StatusProcessing)
		}

		now := time.Now().UTC()
		from := ref.Status
		ref.Status = StatusProcessing
		ref.ExternalRefundID = &result.ExternalRefundID
		ref.ProcessedAt = &now
		ref.UpdatedAt = now

		if err := tx.UpdateRefund(ctx, ref); err != nil {
			return fmt.Errorf("update refund: %w", err)
		}
		metrics.RefundTransitionsTotal.WithLabelValues(string(from), string(StatusProcessing)).Inc()

		updated = ref
		return s.saveEvent(ctx, tx, ref, EventSubmitted, from, nil)
	})
	if err != nil {
		return RefundRequest{}, err
	}
	return updated, nil
}

func (s *RefundService) recordSubmissionFailure(ctx context.Context, refundID string, submitErr error) (RefundRequest, error) {
	var failed RefundRequest
	err := s.refundRepo.InTransaction(ctx, func(tx TxRefundRepo) error {
		ref, err := getRefundByID(ctx, tx, refundID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		from := ref.Status
		msg := submitErr.Error()
		ref.Status = StatusFailed
		ref.ErrorMessage = &msg
		ref.RetryCount++
		ref.UpdatedAt = now

		if err := tx.UpdateRefund(ctx, ref); err != nil {
			return fmt.Errorf("record submission failure: %w", err)
		}
		if from != StatusFailed {
			metrics.RefundTransitionsTotal.WithLabelValues(string(from), string(StatusFailed)).Inc()
		}

		failed = ref
		return s.saveEvent(ctx, tx, ref, EventFailed, from, map[string]string{"error": msg})
	})
	if err != nil {
		return RefundRequest{}, err
	}
	return failed, nil
}

// ApplyGatewayResult applies a final gateway outcome reported by the
// webhook or the poller. Gateway delivery is at-least-once, so the whole
// operation is idempotent: a duplicate of an already-applied outcome is a
// silent no-op, and a callback contradicting applied terminal state is
// recorded as an anomaly and ignored (succeeded is sticky once the ledger
// side effect has fired).
func (s *RefundService) ApplyGatewayResult(ctx context.Context, refundID string, outcome Outcome, gatewayMessage *string) (RefundRequest, error) {
	var applied RefundRequest
	err := s.refundRepo.InTransaction(ctx, func(tx TxRefundRepo) error {
		ref, err := getRefundByID(ctx, tx, refundID)
		if err != nil {
			return err
		}

		newStatus := outcome.Status()

		if ref.Status == newStatus {
			// duplicate delivery
			applied = ref
			return nil
		}

		if ref.Status == StatusSucceeded || ref.Status == StatusFailed || ref.Status == StatusCancelled {
			s.recordAnomaly(ctx, tx, ref, outcome)
			applied = ref
			return nil
		}

		// A gateway result cannot exist for a refund that was never
		// submitted; pending to failed is reserved for submission errors.
		if ref.Status == StatusPending || !ref.Status.CanBeUpdatedTo(newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, ref.Status, newStatus)
		}

		now := time.Now().UTC()
		from := ref.Status
		ref.Status = newStatus
		ref.UpdatedAt = now

		kind := EventFailed
		switch outcome {
		case OutcomeSucceeded:
			kind = EventCompleted
			ref.CompletedAt = &now
			// Freeing the inventory has to land in the same transaction:
			// there must be no observable state where the refund succeeded
			// but the booking still blocks the room.
			if err := tx.MarkResourceRefunded(ctx, ref.ResourceKind, ref.ResourceID); err != nil {
				return fmt.Errorf("mark resource refunded: %w", err)
			}
		case OutcomeFailed:
			ref.ErrorMessage = gatewayMessage
		}

		if err := tx.UpdateRefund(ctx, ref); err != nil {
			return fmt.Errorf("update refund: %w", err)
		}
		metrics.RefundTransitionsTotal.WithLabelValues(string(from), string(newStatus)).Inc()

		applied = ref
		return s.saveEvent(ctx, tx, ref, kind, from, nil)
	})
	if err != nil {
		return RefundRequest{}, err
	}
	return applied, nil
}

func (s *RefundService) recordAnomaly(ctx context.Context, tx TxRefundRepo, ref RefundRequest, outcome Outcome) {
	slog.WarnContext(ctx, "Gateway callback contradicts applied refund state, ignoring",
		"refund_id", ref.ID,
		"applied_status", string(ref.Status),
		"reported_outcome", string(outcome))
	metrics.GatewayAnomaliesTotal.WithLabelValues(string(ref.Status), string(outcome)).Inc()

	data, _ := json.Marshal(map[string]string{"reported_outcome": string(outcome)})
	event := RefundEvent{
		ID:         uuid.New().String(),
		RefundID:   ref.ID,
		Kind:       EventAnomaly,
		FromStatus: ref.Status,
		ToStatus:   ref.Status,
		Data:       data,
		CreatedAt:  time.Now().UTC(),
	}
	if err := tx.CreateRefundEvent(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Failed to store anomaly event", "refund_id", ref.ID, slog.Any("error", err))
	}
	s.index(ctx, event)
}

// Cancel withdraws a refund request that has not been submitted yet. Once
// the gateway has seen the refund, money may already be moving and the
// local state machine deliberately has no cancel transition.
func (s *RefundService) Cancel(ctx context.Context, refundID string, byUserID uuid.UUID) (RefundRequest, error) {
	var cancelled RefundRequest
	err := s.refundRepo.InTransaction(ctx, func(tx TxRefundRepo) error {
		ref, err := getRefundByID(ctx, tx, refundID)
		if err != nil {
			return err
		}
		if ref.RequestedBy != byUserID {
			return ErrNotOwner
		}
		if ref.Status != StatusPending {
			return ErrNotCancellable
		}

		now := time.Now().UTC()
		from := ref.Status
		ref.Status = StatusCancelled
		ref.UpdatedAt = now

		if err := tx.UpdateRefund(ctx, ref); err != nil {
			return fmt.Errorf("cancel refund: %w", err)
		}
		metrics.RefundTransitionsTotal.WithLabelValues(string(from), string(StatusCancelled)).Inc()

		cancelled = ref
		return s.saveEvent(ctx, tx, ref, EventCancelled, from, nil)
	})
	if err != nil {
		return RefundRequest{}, err
	}
	return cancelled, nil
}

func (s *RefundService) GetRefundByID(ctx context.Context, id string) (RefundRequest, error) {
	return getRefundByID(ctx, s.refundRepo, id)
}

func (s *RefundService) GetRefunds(ctx context.Context, query RefundsQuery) ([]RefundRequest, error) {
	refunds, err := s.refundRepo.GetRefunds(ctx, &query)
	if err != nil {
		return nil, fmt.Errorf("filter refunds: %w", err)
	}
	return refunds, nil
}

func (s *RefundService) GetStats(ctx context.Context, from, to time.Time) (Stats, error) {
	byStatus, err := s.refundRepo.StatsByStatus(ctx, from, to)
	if err != nil {
		return Stats{}, fmt.Errorf("refund stats: %w", err)
	}
	return Stats{From: from, To: to, ByStatus: byStatus}, nil
}

func (s *RefundService) hasActiveRefund(ctx context.Context, repo TxRefundRepo, kind ledger.ResourceKind, resourceID string) (bool, error) {
	query, err := NewRefundsQueryBuilder().
		WithResource(kind, resourceID).
		WithStatuses(ActiveStatuses...).
		Build()
	if err != nil {
		return false, err
	}

	refunds, err := repo.GetRefunds(ctx, query)
	if err != nil {
		return false, err
	}
	return len(refunds) > 0, nil
}

func getRefundByID(ctx context.Context, repo TxRefundRepo, id string) (RefundRequest, error) {
	query, err := NewRefundsQueryBuilder().
		WithIDs(id).
		Build()
	if err != nil {
		return RefundRequest{}, err
	}

	refunds, err := repo.GetRefunds(ctx, query)
	if err != nil {
		return RefundRequest{}, fmt.Errorf("get refund: %w", err)
	}
	if len(refunds) == 0 {
		return RefundRequest{}, ErrNotFound
	}
	return refunds[0], nil
}

func (s *RefundService) saveEvent(ctx context.Context, tx TxRefundRepo, ref RefundRequest, kind EventKind, from Status, meta map[string]string) error {
	var data json.RawMessage
	if len(meta) > 0 {
		data, _ = json.Marshal(meta)
	}

	event := RefundEvent{
		ID:         uuid.New().String(),
		RefundID:   ref.ID,
		Kind:       kind,
		FromStatus: from,
		ToStatus:   ref.Status,
		Data:       data,
		CreatedAt:  time.Now().UTC(),
	}
	if err := tx.CreateRefundEvent(ctx, event); err != nil {
		return fmt.Errorf("store refund event: %w", err)
	}
	s.index(ctx, event)
	return nil
}

func (s *RefundService) index(ctx context.Context, event RefundEvent) {
	if s.sink == nil {
		return
	}
	if err := s.sink.IndexRefundEvent(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Failed to index refund event",
			"event_id", event.ID, "refund_id", event.RefundID, slog.Any("error", err))
	}
}
