package billing

import "errors"

var (
	// ErrNotFound indicates the requested resource does not exist at the
	// provider (unknown session, untagged license key, missing customer).
	ErrNotFound = errors.New("billing resource not found")

	// ErrUnavailable indicates the provider could not be reached or timed
	// out. Callers must never interpret it as a valid entitlement.
	ErrUnavailable = errors.New("billing provider unavailable")

	// ErrUnauthorized indicates the configured API key was rejected.
	ErrUnauthorized = errors.New("billing provider rejected credentials")
)
