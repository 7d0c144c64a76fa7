package availability

import "errors"

var (
	ErrInvalidRange = errors.New("invalid date range")

	// ErrBookingConflict is returned when an active booking occupies the range.
	ErrBookingConflict = errors.New("range conflicts with an active booking")

	// ErrBlockedConflict is returned when an existing blocked range overlaps.
	ErrBlockedConflict = errors.New("range conflicts with an existing blocked range")

	ErrRoomNotFound        = errors.New("room not found")
	ErrBlockedDateNotFound = errors.New("blocked date range not found")
)
