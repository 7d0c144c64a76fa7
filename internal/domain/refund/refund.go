package refund

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"booking-refund-service/internal/domain/ledger"

	"github.com/google/uuid"
)

type RefundRequest struct {
	ID                string              `json:"refund_id"`
	ResourceKind      ledger.ResourceKind `json:"resource_kind"`
	ResourceID        string              `json:"resource_id"`
	PaymentID         string              `json:"payment_id"`
	RequestedBy       uuid.UUID           `json:"requested_by"`
	Amount            float64             `json:"amount"`
	OriginalAmount    float64             `json:"original_amount"`
	Reason            Reason              `json:"reason"`
	Notes             *string             `json:"notes,omitempty"`
	Status            Status              `json:"status"`
	ExternalRefundID  *string             `json:"external_refund_id,omitempty"`
	ExternalPaymentID string              `json:"external_payment_id"`
	ErrorMessage      *string             `json:"error_message,omitempty"`
	RetryCount        int                 `json:"retry_count"`
	RequestedAt       time.Time           `json:"requested_at"`
	ProcessedAt       *time.Time          `json:"processed_at,omitempty"`
	CompletedAt       *time.Time          `json:"completed_at,omitempty"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

var AvailableStatuses = []Status{StatusPending, StatusProcessing, StatusSucceeded, StatusFailed, StatusCancelled}

// ActiveStatuses are the statuses that block a new refund request for the
// same resource.
var ActiveStatuses = []Status{StatusPending, StatusProcessing}

func (s Status) CanBeUpdatedTo(newStatus Status) bool {
	switch s {
	case StatusPending:
		return slices.Contains([]Status{StatusProcessing, StatusFailed, StatusCancelled}, newStatus)
	case StatusProcessing:
		return slices.Contains([]Status{StatusSucceeded, StatusFailed}, newStatus)
	case StatusFailed:
		// retry path: a failed submission may be re-submitted
		return newStatus == StatusProcessing
	case StatusSucceeded, StatusCancelled:
		return false
	default:
		return false
	}
}

func (s Status) IsActive() bool {
	return slices.Contains(ActiveStatuses, s)
}

func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", errors.New("invalid refund status")
}

type Reason string

const (
	ReasonCustomerRequest Reason = "customer_request"
	ReasonDuplicate       Reason = "duplicate"
	ReasonFraud           Reason = "fraud"
	ReasonChangedMind     Reason = "changed_mind"
	ReasonWrongOrder      Reason = "wrong_order"
	ReasonUnavailable     Reason = "unavailable"
	ReasonBusinessIssue   Reason = "business_issue"
	ReasonOther           Reason = "other"
)

var AvailableReasons = []Reason{
	ReasonCustomerRequest, ReasonDuplicate, ReasonFraud, ReasonChangedMind,
	ReasonWrongOrder, ReasonUnavailable, ReasonBusinessIssue, ReasonOther,
}

func NewReason(raw string) (Reason, error) {
	if slices.Contains(AvailableReasons, Reason(raw)) {
		return Reason(raw), nil
	}
	return "", errors.New("invalid refund reason")
}

// Outcome is a final gateway result delivered by a webhook or the poller.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

func NewOutcome(raw string) (Outcome, error) {
	switch Outcome(raw) {
	case OutcomeSucceeded, OutcomeFailed:
		return Outcome(raw), nil
	}
	return "", errors.New("invalid gateway outcome")
}

func (o Outcome) Status() Status {
	if o == OutcomeSucceeded {
		return StatusSucceeded
	}
	return StatusFailed
}

type CreateRequest struct {
	ResourceKind      ledger.ResourceKind
	ResourceID        string
	PaymentID         string
	RequestedBy       uuid.UUID
	Amount            float64
	OriginalAmount    float64
	Reason            Reason
	Notes             *string
	ExternalPaymentID string
}

func (r *CreateRequest) Validate() error {
	if r.ResourceID == "" {
		return fmt.Errorf("%w: missing resource id", ErrInvalidRequest)
	}
	if r.Amount < 0 || r.OriginalAmount < 0 {
		return fmt.Errorf("%w: amount must be non-negative", ErrInvalidRequest)
	}
	if r.Amount > r.OriginalAmount {
		return fmt.Errorf("%w: amount exceeds original amount", ErrInvalidRequest)
	}
	if r.ExternalPaymentID == "" {
		return fmt.Errorf("%w: missing gateway payment id", ErrInvalidRequest)
	}
	if !slices.Contains(AvailableReasons, r.Reason) {
		return fmt.Errorf("%w: invalid reason", ErrInvalidRequest)
	}
	return nil
}

type Pagination struct {
	PageSize   int
	PageNumber int
}

type RefundsQuery struct {
	IDs          []string
	ResourceKind *ledger.ResourceKind
	ResourceIDs  []string
	RequestedBy  []string
	Statuses     []Status
	From         *time.Time
	To           *time.Time
	Pagination   *Pagination
	SortBy       *string
	SortOrder    *string
}

func (q *RefundsQuery) Validate() error {
	if q.SortBy != nil && *q.SortBy != "requested_at" && *q.SortBy != "updated_at" {
		return fmt.Errorf("invalid sort by: %s", *q.SortBy)
	}
	if q.SortOrder != nil && *q.SortOrder != "asc" && *q.SortOrder != "desc" {
		return fmt.Errorf("invalid sort order: %s", *q.SortOrder)
	}
	return nil
}

type RefundsQueryBuilder struct {
	query *RefundsQuery
}

func NewRefundsQueryBuilder() *RefundsQueryBuilder {
	return &RefundsQueryBuilder{
		query: &RefundsQuery{},
	}
}

func (b *RefundsQueryBuilder) Build() (*RefundsQuery, error) {
	if err := b.query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuery, err.Error())
	}
	return b.query, nil
}

func (b *RefundsQueryBuilder) WithIDs(ids ...string) *RefundsQueryBuilder {
	b.query.IDs = ids
	return b
}

func (b *RefundsQueryBuilder) WithResource(kind ledger.ResourceKind, resourceIDs ...string) *RefundsQueryBuilder {
	b.query.ResourceKind = &kind
	b.query.ResourceIDs = resourceIDs
	return b
}

func (b *RefundsQueryBuilder) WithRequestedBy(userIDs ...string) *RefundsQueryBuilder {
	b.query.RequestedBy = userIDs
	return b
}

func (b *RefundsQueryBuilder) WithStatuses(statuses ...Status) *RefundsQueryBuilder {
	b.query.Statuses = statuses
	return b
}

func (b *RefundsQueryBuilder) WithRequestedBetween(from, to time.Time) *RefundsQueryBuilder {
	b.query.From = &from
	b.query.To = &to
	return b
}

func (b *RefundsQueryBuilder) WithSort(sortBy, sortOrder string) *RefundsQueryBuilder {
	b.query.SortBy = &sortBy
	b.query.SortOrder = &sortOrder
	return b
}

func (b *RefundsQueryBuilder) WithPagination(pagination Pagination) *RefundsQueryBuilder {
	b.query.Pagination = &pagination
	return b
}

// StatusStat is one row of the admin stats query.
type StatusStat struct {
	Status Status  `json:"status"`
	Count  int64   `json:"count"`
	Sum    float64 `json:"sum"`
}

type Stats struct {
	From     time.Time    `json:"from"`
	To       time.Time    `json:"to"`
	ByStatus []StatusStat `json:"by_status"`
}
