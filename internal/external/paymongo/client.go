// Package paymongo is the narrow HTTP client for the payment gateway. It
// only submits refunds and reads their status; money movement and webhook
// delivery are entirely gateway-side.
package paymongo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/go-querystring/query"

	"booking-refund-service/internal/domain/refund"
)

var ErrRefundNotFound = errors.New("gateway refund not found")

type Client struct {
	BaseURL    string
	RefundsURL string
	APIKey     string
	HTTP       *http.Client
}

func New(baseURL, refundsPath, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		BaseURL:    baseURL,
		RefundsURL: baseURL + refundsPath,
		APIKey:     apiKey,
		HTTP:       httpClient,
	}
}

type submitReq struct {
	PaymentID string  `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Reason    string  `json:"reason,omitempty"`
}

type submitResp struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type refundResp struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	FailureReason *string `json:"failure_reason,omitempty"`
}

func (c *Client) SubmitRefund(ctx context.Context, req refund.SubmissionRequest) (refund.SubmissionResult, error) {
	body := submitReq{
		PaymentID: req.ExternalPaymentID,
		Amount:    req.Amount,
		Reason:    string(req.Reason),
	}

	j, err := json.Marshal(body)
	if err != nil {
		return refund.SubmissionResult{}, fmt.Errorf("marshal refund request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.RefundsURL, bytes.NewReader(j))
	if err != nil {
		return refund.SubmissionResult{}, fmt.Errorf("create refund request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return refund.SubmissionResult{}, fmt.Errorf("http refund request: %w", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 != 2 {
		return refund.SubmissionResult{}, fmt.Errorf("gateway %s: %s", resp.Status, string(raw))
	}

	var out submitResp
	if err := json.Unmarshal(raw, &out); err != nil {
		return refund.SubmissionResult{}, fmt.Errorf("unmarshal refund response: %w", err)
	}
	if out.ID == "" {
		return refund.SubmissionResult{}, fmt.Errorf("gateway accepted refund without an id: %s", string(raw))
	}

	return refund.SubmissionResult{ExternalRefundID: out.ID}, nil
}

// RefundStatus is what the gateway currently knows about a submitted
// refund. Pending means the gateway has not finished processing.
type RefundStatus struct {
	ExternalRefundID string
	Outcome          *refund.Outcome
	FailureReason    *string
}

func (c *Client) GetRefund(ctx context.Context, externalRefundID string) (RefundStatus, error) {
	url := c.RefundsURL + "/" + externalRefundID

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return RefundStatus{}, fmt.Errorf("create status request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return RefundStatus{}, fmt.Errorf("http status request: %w", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return RefundStatus{}, ErrRefundNotFound
	}
	if resp.StatusCode/100 != 2 {
		return RefundStatus{}, fmt.Errorf("gateway %s: %s", resp.Status, string(raw))
	}

	var out refundResp
	if err := json.Unmarshal(raw, &out); err != nil {
		return RefundStatus{}, fmt.Errorf("unmarshal status response: %w", err)
	}

	return statusFromResponse(out), nil
}

// ListRefundsQuery filters the gateway refund listing. Zero values are
// omitted from the encoded query string.
type ListRefundsQuery struct {
	PaymentID string `url:"payment_id,omitempty"`
	Status    string `url:"status,omitempty"`
	Limit     int    `url:"limit,omitempty"`
}

func (c *Client) ListRefunds(ctx context.Context, q ListRefundsQuery) ([]RefundStatus, error) {
	values, err := query.Values(q)
	if err != nil {
		return nil, fmt.Errorf("encode refund query: %w", err)
	}
	url := c.RefundsURL
	if encoded := values.Encode(); encoded != "" {
		url += "?" + encoded
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create list request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http list request: %w", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("gateway %s: %s", resp.Status, string(raw))
	}

	var out struct {
		Data []refundResp `json:"data"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshal list response: %w", err)
	}

	statuses := make([]RefundStatus, 0, len(out.Data))
	for _, item := range out.Data {
		statuses = append(statuses, statusFromResponse(item))
	}
	return statuses, nil
}

func statusFromResponse(out refundResp) RefundStatus {
	status := RefundStatus{ExternalRefundID: out.ID, FailureReason: out.FailureReason}
	switch out.Status {
	case "succeeded":
		outcome := refund.OutcomeSucceeded
		status.Outcome = &outcome
	case "failed":
		outcome := refund.OutcomeFailed
		status.Outcome = &outcome
	}
	return status
}
