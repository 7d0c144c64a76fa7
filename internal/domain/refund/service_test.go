package refund

import (
	"context"
	"errors"
	"testing"

	"booking-refund-service/internal/domain/ledger"
	"booking-refund-service/pkg/pointers"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func refundService(t *testing.T) (*RefundService, *MockRefundRepo, *ledger.MockReader, *MockGatewayClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := NewMockRefundRepo(ctrl)
	mockLedger := ledger.NewMockReader(ctrl)
	mockGateway := NewMockGatewayClient(ctrl)
	service := NewRefundService(mockRepo, mockLedger, mockGateway, nil)

	return service, mockRepo, mockLedger, mockGateway
}

func inTx(mockRepo *MockRefundRepo, ctx context.Context, mockTxRepo *MockTxRefundRepo) {
	mockRepo.EXPECT().InTransaction(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(tx TxRefundRepo) error) error {
		return fn(mockTxRepo)
	})
}

func activeRefundsQuery(t *testing.T, kind ledger.ResourceKind, resourceID string) *RefundsQuery {
	t.Helper()
	query, err := NewRefundsQueryBuilder().
		WithResource(kind, resourceID).
		WithStatuses(ActiveStatuses...).
		Build()
	require.NoError(t, err)
	return query
}

func byIDQuery(t *testing.T, id string) *RefundsQuery {
	t.Helper()
	query, err := NewRefundsQueryBuilder().WithIDs(id).Build()
	require.NoError(t, err)
	return query
}

func TestRefundService_CheckEligibility(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	requesterID := uuid.New()
	resourceID := "order-123"

	snapshot := &ledger.Snapshot{
		OwnerID:           requesterID,
		Status:            ledger.OrderRefundableStatus,
		PaymentID:         "pay-1",
		PaymentMethod:     ledger.MethodGcash,
		PaymentStatus:     ledger.PaymentPaid,
		ExternalPaymentID: pointers.Ptr("ext-pay-1"),
		TotalAmount:       150,
	}

	testCases := []struct {
		name     string
		mock     func(*MockRefundRepo, *ledger.MockReader)
		expected Eligibility
	}{
		{
			name: "should be eligible when all gates pass",
			mock: func(mockRepo *MockRefundRepo, mockLedger *ledger.MockReader) {
				mockRepo.EXPECT().GetRefunds(ctx, activeRefundsQuery(t, ledger.KindOrder, resourceID)).Return([]RefundRequest{}, nil)
				mockLedger.EXPECT().GetResourceForRefundCheck(ctx, ledger.KindOrder, resourceID).Return(snapshot, nil)
			},
			expected: Eligibility{
				Eligible:          true,
				PaymentID:         "pay-1",
				ExternalPaymentID: "ext-pay-1",
				Amount:            150,
				PaymentMethod:     ledger.MethodGcash,
				ResourceStatus:    "pending",
			},
		},
		{
			name: "should deny when an active refund exists",
			mock: func(mockRepo *MockRefundRepo, mockLedger *ledger.MockReader) {
				mockRepo.EXPECT().GetRefunds(ctx, activeRefundsQuery(t, ledger.KindOrder, resourceID)).
					Return([]RefundRequest{{ID: "ref-1", Status: StatusPending}}, nil)
			},
			expected: ineligible(ineligibleAlreadyPending),
		},
		{
			name: "should deny when the resource does not exist",
			mock: func(mockRepo *MockRefundRepo, mockLedger *ledger.MockReader) {
				mockRepo.EXPECT().GetRefunds(ctx, activeRefundsQuery(t, ledger.KindOrder, resourceID)).Return([]RefundRequest{}, nil)
				mockLedger.EXPECT().GetResourceForRefundCheck(ctx, ledger.KindOrder, resourceID).Return(nil, nil)
			},
			expected: ineligible(ineligibleNotFound),
		},
		{
			name: "should deny when the requester is not the owner",
			mock: func(mockRepo *MockRefundRepo, mockLedger *ledger.MockReader) {
				other := *snapshot
				other.OwnerID = uuid.New()
				mockRepo.EXPECT().GetRefunds(ctx, activeRefundsQuery(t, ledger.KindOrder, resourceID)).Return([]RefundRequest{}, nil)
				mockLedger.EXPECT().GetResourceForRefundCheck(ctx, ledger.KindOrder, resourceID).Return(&other, nil)
			},
			expected: ineligible(ineligibleNotOwner),
		},
		{
			name: "should deny when the order is already processed",
			mock: func(mockRepo *MockRefundRepo, mockLedger *ledger.MockReader) {
				other := *snapshot
				other.Status = "completed"
				mockRepo.EXPECT().GetRefunds(ctx, activeRefundsQuery(t, ledger.KindOrder, resourceID)).Return([]RefundRequest{}, nil)
				mockLedger.EXPECT().GetResourceForRefundCheck(ctx, ledger.KindOrder, resourceID).Return(&other, nil)
			},
			expected: ineligible(ineligibleAlreadyProcessed),
		},
		{
			name: "should deny cash payments",
			mock: func(mockRepo *MockRefundRepo, mockLedger *ledger.MockReader) {
				other := *snapshot
				other.PaymentMethod = ledger.MethodCashOnPickup
				mockRepo.EXPECT().GetRefunds(ctx, activeRefundsQuery(t, ledger.KindOrder, resourceID)).Return([]RefundRequest{}, nil)
				mockLedger.EXPECT().GetResourceForRefundCheck(ctx, ledger.KindOrder, resourceID).Return(&other, nil)
			},
			expected: ineligible(ineligibleCashPayment),
		},
		{
			name: "should deny unpaid payments",
			mock: func(mockRepo *MockRefundRepo, mockLedger *ledger.MockReader) {
				other := *snapshot
				other.PaymentStatus = ledger.PaymentUnpaid
				mockRepo.EXPECT().GetRefunds(ctx, activeRefundsQuery(t, ledger.KindOrder, resourceID)).Return([]RefundRequest{}, nil)
				mockLedger.EXPECT().GetResourceForRefundCheck(ctx, ledger.KindOrder, resourceID).Return(&other, nil)
			},
			expected: ineligible(ineligiblePaymentNotPaid),
		},
		{
			name: "should deny when no gateway payment id is recorded",
			mock: func(mockRepo *MockRefundRepo, mockLedger *ledger.MockReader) {
				other := *snapshot
				other.ExternalPaymentID = nil
				mockRepo.EXPECT().GetRefunds(ctx, activeRefundsQuery(t, ledger.KindOrder, resourceID)).Return([]RefundRequest{}, nil)
				mockLedger.EXPECT().GetResourceForRefundCheck(ctx, ledger.KindOrder, resourceID).Return(&other, nil)
			},
			expected: ineligible(ineligibleNoGatewayPayment),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service, mockRepo, mockLedger, _ := refundService(t)
			tc.mock(mockRepo, mockLedger)

			// when
			result, err := service.CheckEligibility(ctx, ledger.KindOrder, resourceID, requesterID)

			// then
			assert.NoError(t, err)
			assert.EqualValues(t, tc.expected, result)
		})
	}
}

func TestRefundService_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	requesterID := uuid.New()

	validRequest := CreateRequest{
		ResourceKind:      ledger.KindOrder,
		ResourceID:        "order-123",
		PaymentID:         "pay-1",
		RequestedBy:       requesterID,
		Amount:            100,
		OriginalAmount:    100,
		Reason:            ReasonCustomerRequest,
		ExternalPaymentID: "ext-pay-1",
	}

	t.Run("should create a pending refund with its created event", func(t *testing.T) {
		// given
		service, mockRepo, _, _ := refundService(t)
		mockTxRepo := NewMockTxRefundRepo(gomock.NewController(t))
		inTx(mockRepo, ctx, mockTxRepo)

		mockTxRepo.EXPECT().GetRefunds(ctx, activeRefundsQuery(t, ledger.KindOrder, "order-123")).Return([]RefundRequest{}, nil)

		var stored RefundRequest
		mockTxRepo.EXPECT().CreateRefund(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, r RefundRequest) error {
			stored = r
			return nil
		})
		mockTxRepo.EXPECT().CreateRefundEvent(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, ev RefundEvent) error {
			assert.Equal(t, EventCreated, ev.Kind)
			assert.Equal(t, StatusPending, ev.ToStatus)
			return nil
		})

		// when
		created, err := service.Create(ctx, validRequest)

		// then
		assert.NoError(t, err)
		assert.Equal(t, stored, created)
		assert.Equal(t, StatusPending, created.Status)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, 100.0, created.Amount)
	})

	t.Run("should reject when an active refund already exists", func(t *testing.T) {
		// given
		service, mockRepo, _, _ := refundService(t)
		mockTxRepo := NewMockTxRefundRepo(gomock.NewController(t))
		inTx(mockRepo, ctx, mockTxRepo)

		mockTxRepo.EXPECT().GetRefunds(ctx, activeRefundsQuery(t, ledger.KindOrder, "order-123")).
			Return([]RefundRequest{{ID: "ref-1", Status: StatusProcessing}}, nil)

		// when
		_, err := service.Create(ctx, validRequest)

		// then
		assert.ErrorIs(t, err, ErrActiveRefundExists)
	})

	t.Run("should reject invalid requests without touching the repository", func(t *testing.T) {
		// given
		service, _, _, _ := refundService(t)
		invalid := validRequest
		invalid.Amount = 150 // more than OriginalAmount

		// when
		_, err := service.Create(ctx, invalid)

		// then
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestRefundService_SubmitToGateway(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	refundID := uuid.New().String()

	pending := RefundRequest{
		ID:                refundID,
		ResourceKind:      ledger.KindOrder,
		ResourceID:        "order-123",
		Status:            StatusPending,
		Amount:            75,
		Reason:            ReasonCustomerRequest,
		ExternalPaymentID: "ext-pay-1",
	}

	t.Run("should move the refund to processing on accepted submission", func(t *testing.T) {
		// given
		service, mockRepo, _, mockGateway := refundService(t)

		mockRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{pending}, nil)
		mockGateway.EXPECT().SubmitRefund(ctx, SubmissionRequest{
			ExternalPaymentID: "ext-pay-1",
			Amount:            75,
			Reason:            ReasonCustomerRequest,
		}).Return(SubmissionResult{ExternalRefundID: "gw-ref-1"}, nil)

		mockTxRepo := NewMockTxRefundRepo(gomock.NewController(t))
		inTx(mockRepo, ctx, mockTxRepo)
		mockTxRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{pending}, nil)
		mockTxRepo.EXPECT().UpdateRefund(ctx, gomock.Any()).Return(nil)
		mockTxRepo.EXPECT().CreateRefundEvent(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, ev RefundEvent) error {
			assert.Equal(t, EventSubmitted, ev.Kind)
			assert.Equal(t, StatusPending, ev.FromStatus)
			assert.Equal(t, StatusProcessing, ev.ToStatus)
			return nil
		})

		// when
		updated, err := service.SubmitToGateway(ctx, refundID)

		// then
		assert.NoError(t, err)
		assert.Equal(t, StatusProcessing, updated.Status)
		require.NotNil(t, updated.ExternalRefundID)
		assert.Equal(t, "gw-ref-1", *updated.ExternalRefundID)
		assert.NotNil(t, updated.ProcessedAt)
	})

	t.Run("should record the failure when the gateway rejects", func(t *testing.T) {
		// given
		service, mockRepo, _, mockGateway := refundService(t)

		mockRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{pending}, nil)
		mockGateway.EXPECT().SubmitRefund(ctx, gomock.Any()).
			Return(SubmissionResult{}, errors.New("insufficient gateway balance"))

		mockTxRepo := NewMockTxRefundRepo(gomock.NewController(t))
		inTx(mockRepo, ctx, mockTxRepo)
		mockTxRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{pending}, nil)
		mockTxRepo.EXPECT().UpdateRefund(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, r RefundRequest) error {
			assert.Equal(t, StatusFailed, r.Status)
			assert.Equal(t, 1, r.RetryCount)
			require.NotNil(t, r.ErrorMessage)
			assert.Equal(t, "insufficient gateway balance", *r.ErrorMessage)
			return nil
		})
		mockTxRepo.EXPECT().CreateRefundEvent(ctx, gomock.Any()).Return(nil)

		// when
		failed, err := service.SubmitToGateway(ctx, refundID)

		// then
		assert.EqualError(t, err, "submit refund to gateway: insufficient gateway balance")
		assert.Equal(t, StatusFailed, failed.Status)
		assert.Equal(t, 1, failed.RetryCount)
	})

	t.Run("should allow re-submitting a failed refund", func(t *testing.T) {
		// given
		service, mockRepo, _, mockGateway := refundService(t)
		failed := pending
		failed.Status = StatusFailed
		failed.RetryCount = 1

		mockRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{failed}, nil)
		mockGateway.EXPECT().SubmitRefund(ctx, gomock.Any()).Return(SubmissionResult{ExternalRefundID: "gw-ref-2"}, nil)

		mockTxRepo := NewMockTxRefundRepo(gomock.NewController(t))
		inTx(mockRepo, ctx, mockTxRepo)
		mockTxRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{failed}, nil)
		mockTxRepo.EXPECT().UpdateRefund(ctx, gomock.Any()).Return(nil)
		mockTxRepo.EXPECT().CreateRefundEvent(ctx, gomock.Any()).Return(nil)

		// when
		updated, err := service.SubmitToGateway(ctx, refundID)

		// then
		assert.NoError(t, err)
		assert.Equal(t, StatusProcessing, updated.Status)
	})

	t.Run("should refuse to submit a processing refund", func(t *testing.T) {
		// given
		service, mockRepo, _, _ := refundService(t)
		processing := pending
		processing.Status = StatusProcessing

		mockRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{processing}, nil)

		// when
		_, err := service.SubmitToGateway(ctx, refundID)

		// then
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("should return ErrNotFound for an unknown refund", func(t *testing.T) {
		// given
		service, mockRepo, _, _ := refundService(t)
		mockRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{}, nil)

		// when
		_, err := service.SubmitToGateway(ctx, refundID)

		// then
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRefundService_ApplyGatewayResult(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	refundID := uuid.New().String()

	processing := RefundRequest{
		ID:           refundID,
		ResourceKind: ledger.KindBooking,
		ResourceID:   "booking-9",
		Status:       StatusProcessing,
	}

	t.Run("should complete the refund and mark the resource in one transaction", func(t *testing.T) {
		// given
		service, mockRepo, _, _ := refundService(t)
		mockTxRepo := NewMockTxRefundRepo(gomock.NewController(t))
		inTx(mockRepo, ctx, mockTxRepo)

		mockTxRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{processing}, nil)
		mockTxRepo.EXPECT().MarkResourceRefunded(ctx, ledger.KindBooking, "booking-9").Return(nil)
		mockTxRepo.EXPECT().UpdateRefund(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, r RefundRequest) error {
			assert.Equal(t, StatusSucceeded, r.Status)
			assert.NotNil(t, r.CompletedAt)
			return nil
		})
		mockTxRepo.EXPECT().CreateRefundEvent(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, ev RefundEvent) error {
			assert.Equal(t, EventCompleted, ev.Kind)
			return nil
		})

		// when
		applied, err := service.ApplyGatewayResult(ctx, refundID, OutcomeSucceeded, nil)

		// then
		assert.NoError(t, err)
		assert.Equal(t, StatusSucceeded, applied.Status)
	})

	t.Run("should mark the refund failed with the gateway message", func(t *testing.T) {
		// given
		service, mockRepo, _, _ := refundService(t)
		mockTxRepo := NewMockTxRefundRepo(gomock.NewController(t))
		inTx(mockRepo, ctx, mockTxRepo)

		mockTxRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{processing}, nil)
		mockTxRepo.EXPECT().UpdateRefund(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, r RefundRequest) error {
			assert.Equal(t, StatusFailed, r.Status)
			require.NotNil(t, r.ErrorMessage)
			assert.Equal(t, "card issuer declined", *r.ErrorMessage)
			return nil
		})
		mockTxRepo.EXPECT().CreateRefundEvent(ctx, gomock.Any()).Return(nil)

		// when
		applied, err := service.ApplyGatewayResult(ctx, refundID, OutcomeFailed, pointers.Ptr("card issuer declined"))

		// then
		assert.NoError(t, err)
		assert.Equal(t, StatusFailed, applied.Status)
	})

	t.Run("should treat a duplicate delivery as a no-op", func(t *testing.T) {
		// given
		service, mockRepo, _, _ := refundService(t)
		mockTxRepo := NewMockTxRefundRepo(gomock.NewController(t))
		inTx(mockRepo, ctx, mockTxRepo)

		succeeded := processing
		succeeded.Status = StatusSucceeded
		mockTxRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{succeeded}, nil)

		// when
		applied, err := service.ApplyGatewayResult(ctx, refundID, OutcomeSucceeded, nil)

		// then
		assert.NoError(t, err)
		assert.Equal(t, StatusSucceeded, applied.Status)
	})

	t.Run("should record an anomaly for a callback contradicting terminal state", func(t *testing.T) {
		// given
		service, mockRepo, _, _ := refundService(t)
		mockTxRepo := NewMockTxRefundRepo(gomock.NewController(t))
		inTx(mockRepo, ctx, mockTxRepo)

		succeeded := processing
		succeeded.Status = StatusSucceeded
		mockTxRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{succeeded}, nil)
		mockTxRepo.EXPECT().CreateRefundEvent(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, ev RefundEvent) error {
			assert.Equal(t, EventAnomaly, ev.Kind)
			assert.Equal(t, StatusSucceeded, ev.FromStatus)
			assert.Equal(t, StatusSucceeded, ev.ToStatus)
			return nil
		})

		// when
		applied, err := service.ApplyGatewayResult(ctx, refundID, OutcomeFailed, nil)

		// then
		assert.NoError(t, err)
		assert.Equal(t, StatusSucceeded, applied.Status)
	})

	t.Run("should reject any outcome for a pending refund", func(t *testing.T) {
		// a callback for a refund that was never submitted to the gateway
		// is bogus regardless of the reported outcome
		for _, outcome := range []Outcome{OutcomeSucceeded, OutcomeFailed} {
			// given
			service, mockRepo, _, _ := refundService(t)
			mockTxRepo := NewMockTxRefundRepo(gomock.NewController(t))
			inTx(mockRepo, ctx, mockTxRepo)

			notSubmitted := processing
			notSubmitted.Status = StatusPending
			mockTxRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{notSubmitted}, nil)

			// when
			_, err := service.ApplyGatewayResult(ctx, refundID, outcome, nil)

			// then
			assert.ErrorIs(t, err, ErrInvalidTransition)
		}
	})

	t.Run("should roll back when marking the resource fails", func(t *testing.T) {
		// given
		service, mockRepo, _, _ := refundService(t)
		mockTxRepo := NewMockTxRefundRepo(gomock.NewController(t))
		inTx(mockRepo, ctx, mockTxRepo)

		mockTxRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{processing}, nil)
		mockTxRepo.EXPECT().MarkResourceRefunded(ctx, ledger.KindBooking, "booking-9").Return(errors.New("row locked"))

		// when
		_, err := service.ApplyGatewayResult(ctx, refundID, OutcomeSucceeded, nil)

		// then
		assert.EqualError(t, err, "mark resource refunded: row locked")
	})
}

func TestRefundService_Cancel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	refundID := uuid.New().String()
	ownerID := uuid.New()

	pending := RefundRequest{
		ID:          refundID,
		Status:      StatusPending,
		RequestedBy: ownerID,
	}

	t.Run("should cancel a pending refund for its owner", func(t *testing.T) {
		// given
		service, mockRepo, _, _ := refundService(t)
		mockTxRepo := NewMockTxRefundRepo(gomock.NewController(t))
		inTx(mockRepo, ctx, mockTxRepo)

		mockTxRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{pending}, nil)
		mockTxRepo.EXPECT().UpdateRefund(ctx, gomock.Any()).Return(nil)
		mockTxRepo.EXPECT().CreateRefundEvent(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, ev RefundEvent) error {
			assert.Equal(t, EventCancelled, ev.Kind)
			return nil
		})

		// when
		cancelled, err := service.Cancel(ctx, refundID, ownerID)

		// then
		assert.NoError(t, err)
		assert.Equal(t, StatusCancelled, cancelled.Status)
	})

	t.Run("should refuse cancellation by another user", func(t *testing.T) {
		// given
		service, mockRepo, _, _ := refundService(t)
		mockTxRepo := NewMockTxRefundRepo(gomock.NewController(t))
		inTx(mockRepo, ctx, mockTxRepo)

		mockTxRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{pending}, nil)

		// when
		_, err := service.Cancel(ctx, refundID, uuid.New())

		// then
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("should refuse cancellation after submission", func(t *testing.T) {
		// given
		service, mockRepo, _, _ := refundService(t)
		mockTxRepo := NewMockTxRefundRepo(gomock.NewController(t))
		inTx(mockRepo, ctx, mockTxRepo)

		submitted := pending
		submitted.Status = StatusProcessing
		mockTxRepo.EXPECT().GetRefunds(ctx, byIDQuery(t, refundID)).Return([]RefundRequest{submitted}, nil)

		// when
		_, err := service.Cancel(ctx, refundID, ownerID)

		// then
		assert.ErrorIs(t, err, ErrNotCancellable)
	})
}

func TestRefundService_GetRefunds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should pass the query through to the repository", func(t *testing.T) {
		// given
		service, mockRepo, _, _ := refundService(t)
		query := RefundsQuery{Statuses: []Status{StatusPending}}
		expected := []RefundRequest{{ID: "ref-1", Status: StatusPending}}
		mockRepo.EXPECT().GetRefunds(ctx, &query).Return(expected, nil)

		// when
		result, err := service.GetRefunds(ctx, query)

		// then
		assert.NoError(t, err)
		assert.EqualValues(t, expected, result)
	})

	t.Run("should wrap repository errors", func(t *testing.T) {
		// given
		service, mockRepo, _, _ := refundService(t)
		mockRepo.EXPECT().GetRefunds(ctx, gomock.Any()).Return(nil, errors.New("database error"))

		// when
		_, err := service.GetRefunds(ctx, RefundsQuery{})

		// then
		assert.EqualError(t, err, "filter refunds: database error")
	})
}
