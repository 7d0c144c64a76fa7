package refund

import (
	"encoding/json"
	"time"
)

type EventKind string

const (
	EventCreated   EventKind = "created"
	EventSubmitted EventKind = "submitted"
	EventCompleted EventKind = "completed"
	EventFailed    EventKind = "failed"
	EventCancelled EventKind = "cancelled"
	EventAnomaly   EventKind = "anomaly"
)

// RefundEvent is the persisted audit record of a lifecycle transition.
// Refund rows are never deleted and every transition leaves an event, so
// the pair forms the audit trail.
type RefundEvent struct {
	ID         string          `json:"event_id"`
	RefundID   string          `json:"refund_id"`
	Kind       EventKind       `json:"kind"`
	FromStatus Status          `json:"from_status"`
	ToStatus   Status          `json:"to_status"`
	Data       json.RawMessage `json:"data,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

