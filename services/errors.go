package services

import "errors"

// Failure taxonomy surfaced to the transport layer. Handlers map these onto
// HTTP statuses with errors.Is; none of them is retried inside the services.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
	ErrUpstreamFailure = errors.New("upstream failure")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)
