// Package apperror maps domain sentinel errors onto HTTP status codes so
// every handler resolves the same error to the same code.
package apperror

import (
	"errors"
	"net/http"

	"booking-refund-service/internal/domain/availability"
	"booking-refund-service/internal/domain/refund"
)

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, refund.ErrInvalidRequest),
		errors.Is(err, refund.ErrInvalidQuery),
		errors.Is(err, availability.ErrInvalidRange):
		return http.StatusBadRequest

	case errors.Is(err, refund.ErrNotOwner):
		return http.StatusForbidden

	case errors.Is(err, refund.ErrNotFound),
		errors.Is(err, refund.ErrResourceNotFound),
		errors.Is(err, availability.ErrRoomNotFound),
		errors.Is(err, availability.ErrBlockedDateNotFound):
		return http.StatusNotFound

	case errors.Is(err, refund.ErrActiveRefundExists),
		errors.Is(err, availability.ErrBookingConflict),
		errors.Is(err, availability.ErrBlockedConflict):
		return http.StatusConflict

	case errors.Is(err, refund.ErrInvalidTransition),
		errors.Is(err, refund.ErrNotEligible),
		errors.Is(err, refund.ErrNotCancellable):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}
