package availability

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// DateRange is a half-open stay range [Start, End): a checkout on day N
// and a check-in on day N do not conflict.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if !start.Before(end) {
		return DateRange{}, fmt.Errorf("%w: start date must be before end date", ErrInvalidRange)
	}
	return DateRange{Start: start, End: end}, nil
}

func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

type BookingStatus string

// Booking status literals follow the booking ledger's capitalized convention.
const (
	BookingPending    BookingStatus = "Pending"
	BookingConfirmed  BookingStatus = "Confirmed"
	BookingCheckedIn  BookingStatus = "Checked-in"
	BookingCheckedOut BookingStatus = "Checked-out"
	BookingCancelled  BookingStatus = "Cancelled"
	BookingRefunded   BookingStatus = "Refunded"
)

// ActiveBookingStatuses are the statuses that occupy a room. Checked-out,
// cancelled and refunded bookings stop blocking the range.
var ActiveBookingStatuses = []BookingStatus{BookingPending, BookingConfirmed, BookingCheckedIn}

func (s BookingStatus) IsActive() bool {
	return slices.Contains(ActiveBookingStatuses, s)
}

type BlockReason string

const (
	BlockMaintenance  BlockReason = "maintenance"
	BlockRenovation   BlockReason = "renovation"
	BlockPrivateEvent BlockReason = "private_event"
	BlockOther        BlockReason = "other"
)

var AvailableBlockReasons = []BlockReason{BlockMaintenance, BlockRenovation, BlockPrivateEvent, BlockOther}

func NewBlockReason(raw string) (BlockReason, error) {
	if slices.Contains(AvailableBlockReasons, BlockReason(raw)) {
		return BlockReason(raw), nil
	}
	return "", errors.New("invalid block reason")
}

// BlockedDateRange is an admin-created unavailability window, inclusive on
// both ends, independent of customer bookings.
type BlockedDateRange struct {
	ID         string      `json:"blocked_date_id"`
	RoomID     string      `json:"room_id"`
	BusinessID uuid.UUID   `json:"business_id"`
	StartDate  time.Time   `json:"start_date"`
	EndDate    time.Time   `json:"end_date"`
	Reason     BlockReason `json:"reason"`
	Notes      *string     `json:"notes,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// OverlapsRange tests the inclusive block window against a half-open query
// range.
func (b BlockedDateRange) OverlapsRange(r DateRange) bool {
	return b.StartDate.Before(r.End) && !r.Start.After(b.EndDate)
}

// OverlapsBlock tests two inclusive block windows against each other.
func (b BlockedDateRange) OverlapsBlock(other BlockedDateRange) bool {
	return !b.StartDate.After(other.EndDate) && !other.StartDate.After(b.EndDate)
}

type NewBlockedDate struct {
	RoomID     string
	BusinessID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Reason     BlockReason
	Notes      *string
}

func (n *NewBlockedDate) Validate() error {
	if n.RoomID == "" {
		return fmt.Errorf("%w: missing room id", ErrInvalidRange)
	}
	if n.EndDate.Before(n.StartDate) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidRange)
	}
	if !slices.Contains(AvailableBlockReasons, n.Reason) {
		return fmt.Errorf("%w: invalid block reason", ErrInvalidRange)
	}
	return nil
}

type ConflictStatus string

const (
	ConflictNone    ConflictStatus = "OK"
	ConflictBooking ConflictStatus = "BOOKING_CONFLICT"
	ConflictBlocked ConflictStatus = "BLOCKED"
)

// CheckResult is the outcome of a room availability check, carrying the id
// of whatever is occupying the range so the caller can decide what to do.
type CheckResult struct {
	Status         ConflictStatus `json:"status"`
	BookingID      *string        `json:"booking_id,omitempty"`
	BlockedRangeID *string        `json:"blocked_range_id,omitempty"`
}

func (c CheckResult) Available() bool {
	return c.Status == ConflictNone
}

// BlockError is one failed room in a bulk block operation.
type BlockError struct {
	RoomID string         `json:"room_id"`
	Status ConflictStatus `json:"status"`
	Reason string         `json:"reason"`
}

// BulkBlockResult is the partial-success summary of a bulk block: one
// conflicting room never prevents blocking the rest.
type BulkBlockResult struct {
	Total   int          `json:"total"`
	Success int          `json:"success"`
	Failed  int          `json:"failed"`
	Errors  []BlockError `json:"errors,omitempty"`
}

// BookingOverlap is the minimal projection of an active booking occupying
// a queried range.
type BookingOverlap struct {
	BookingID    string
	RoomID       string
	CheckInDate  time.Time
	CheckOutDate time.Time
	Status       BookingStatus
}
