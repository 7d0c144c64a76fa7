package availability

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source repo_port.go -destination mock_availability.go -package availability

type TxAvailabilityRepo interface {
	// GetActiveBookingOverlap returns the first active booking whose
	// half-open stay range overlaps the queried range, or nil.
	GetActiveBookingOverlap(ctx context.Context, roomID string, r DateRange) (*BookingOverlap, error)

	// GetBlockedOverlap returns the first blocked range overlapping the
	// queried half-open range, or nil.
	GetBlockedOverlap(ctx context.Context, roomID string, r DateRange) (*BlockedDateRange, error)

	CreateBlockedDate(ctx context.Context, blocked BlockedDateRange) error
	DeleteBlockedDate(ctx context.Context, id string) (bool, error)
	ListBlockedDates(ctx context.Context, roomID string) ([]BlockedDateRange, error)

	ListRoomIDs(ctx context.Context, businessID uuid.UUID) ([]string, error)
}

type AvailabilityRepo interface {
	TxAvailabilityRepo
	InTransaction(ctx context.Context, fn func(repo TxAvailabilityRepo) error) error
}
