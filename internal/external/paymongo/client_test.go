package paymongo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-refund-service/internal/domain/refund"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SubmitRefund(t *testing.T) {
	t.Run("successful submission", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/refunds", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req submitReq
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "ext-pay-1", req.PaymentID)
			assert.Equal(t, 100.0, req.Amount)

			_ = json.NewEncoder(w).Encode(submitResp{ID: "gw-ref-1", Status: "processing"})
		}))
		defer server.Close()

		client := New(server.URL, "/v1/refunds", "test-key", &http.Client{Timeout: 5 * time.Second})

		result, err := client.SubmitRefund(context.Background(), refund.SubmissionRequest{
			ExternalPaymentID: "ext-pay-1",
			Amount:            100,
			Reason:            refund.ReasonCustomerRequest,
		})

		assert.NoError(t, err)
		assert.Equal(t, "gw-ref-1", result.ExternalRefundID)
	})

	t.Run("returns an error on a non-2xx response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"amount exceeds payment"}`))
		}))
		defer server.Close()

		client := New(server.URL, "/v1/refunds", "test-key", nil)

		_, err := client.SubmitRefund(context.Background(), refund.SubmissionRequest{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount exceeds payment")
	})

	t.Run("rejects an accepted response without an id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := New(server.URL, "/v1/refunds", "test-key", nil)

		_, err := client.SubmitRefund(context.Background(), refund.SubmissionRequest{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "without an id")
	})
}

func TestClient_GetRefund(t *testing.T) {
	t.Run("maps gateway statuses to outcomes", func(t *testing.T) {
		testCases := []struct {
			name            string
			body            string
			expectedOutcome *refund.Outcome
		}{
			{
				name:            "succeeded",
				body:            `{"id":"gw-ref-1","status":"succeeded"}`,
				expectedOutcome: outcomePtr(refund.OutcomeSucceeded),
			},
			{
				name:            "failed",
				body:            `{"id":"gw-ref-1","status":"failed","failure_reason":"issuer declined"}`,
				expectedOutcome: outcomePtr(refund.OutcomeFailed),
			},
			{
				name:            "still pending has no outcome",
				body:            `{"id":"gw-ref-1","status":"pending"}`,
				expectedOutcome: nil,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "/v1/refunds/gw-ref-1", r.URL.Path)
					_, _ = w.Write([]byte(tc.body))
				}))
				defer server.Close()

				client := New(server.URL, "/v1/refunds", "test-key", nil)

				status, err := client.GetRefund(context.Background(), "gw-ref-1")

				require.NoError(t, err)
				assert.Equal(t, "gw-ref-1", status.ExternalRefundID)
				assert.Equal(t, tc.expectedOutcome, status.Outcome)
			})
		}
	})

	t.Run("returns ErrRefundNotFound on 404", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := New(server.URL, "/v1/refunds", "test-key", nil)

		_, err := client.GetRefund(context.Background(), "gw-ref-404")

		assert.ErrorIs(t, err, ErrRefundNotFound)
	})
}

func TestClient_ListRefunds(t *testing.T) {
	t.Run("encodes non-zero filters into the query string", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "ext-pay-1", r.URL.Query().Get("payment_id"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			assert.False(t, r.URL.Query().Has("status"))

			_, _ = w.Write([]byte(`{"data":[{"id":"gw-ref-1","status":"succeeded"}]}`))
		}))
		defer server.Close()

		client := New(server.URL, "/v1/refunds", "test-key", nil)

		statuses, err := client.ListRefunds(context.Background(), ListRefundsQuery{
			PaymentID: "ext-pay-1",
			Limit:     1,
		})

		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.Equal(t, "gw-ref-1", statuses[0].ExternalRefundID)
		require.NotNil(t, statuses[0].Outcome)
		assert.Equal(t, refund.OutcomeSucceeded, *statuses[0].Outcome)
	})

	t.Run("returns an empty slice when the gateway has nothing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		client := New(server.URL, "/v1/refunds", "test-key", nil)

		statuses, err := client.ListRefunds(context.Background(), ListRefundsQuery{})

		require.NoError(t, err)
		assert.Empty(t, statuses)
	})
}

func outcomePtr(o refund.Outcome) *refund.Outcome {
	return &o
}
