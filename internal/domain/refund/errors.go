package refund

import "errors"

var (
	// ErrActiveRefundExists is returned when a refund in pending or
	// processing already exists for the resource.
	ErrActiveRefundExists = errors.New("active refund already exists for resource")

	// ErrNotFound is returned when a refund id does not resolve.
	ErrNotFound = errors.New("refund not found")

	// ErrResourceNotFound is returned when the ledger resource does not resolve.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrNotOwner is returned when the requester does not own the resource.
	ErrNotOwner = errors.New("requester is not the resource owner")

	// ErrNotEligible is returned when the eligibility evaluator denies the request.
	ErrNotEligible = errors.New("resource is not eligible for refund")

	// ErrInvalidTransition is returned for a status change the state machine forbids.
	ErrInvalidTransition = errors.New("invalid refund status transition")

	// ErrNotCancellable is returned when cancel is called after gateway submission.
	ErrNotCancellable = errors.New("refund can only be cancelled while pending")

	ErrInvalidRequest = errors.New("invalid refund request")
	ErrInvalidQuery   = errors.New("invalid refunds query")
)
