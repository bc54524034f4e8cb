package service

import "errors"

var (
	// ErrSessionNotFound indicates the payment-session identifier is not
	// known to the billing provider.
	ErrSessionNotFound = errors.New("payment session not found")

	// ErrSessionNotPaid indicates the session exists but has not settled,
	// so no license key may be handed out for it yet.
	ErrSessionNotPaid = errors.New("payment session not completed")

	// ErrInvalidSalt indicates the caller-supplied salt is not valid
	// base64 or has the wrong length for key derivation.
	ErrInvalidSalt = errors.New("invalid vault salt")

	// ErrVersionIsNotSpecified indicates the application version was not
	// provided via configuration at startup.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
