package domain

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// ErrIdempotencyInFlight means another request holding the same
	// Idempotency-Key has not finished in time.
	ErrIdempotencyInFlight = errors.New("idempotency key in flight")
)
