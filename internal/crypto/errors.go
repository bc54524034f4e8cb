package crypto

import "errors"

var (
	// ErrKeyDerivationFailure indicates the underlying crypto primitive was
	// unavailable or rejected its inputs. The engine never downgrades cost
	// parameters to work around it.
	ErrKeyDerivationFailure = errors.New("key derivation failed")

	// ErrUnknownKdfVersion is returned for a version tag the engine does
	// not recognize. Guessing a scheme would produce a key that decrypts
	// nothing, so the call is rejected instead.
	ErrUnknownKdfVersion = errors.New("unknown kdf version")

	// ErrEmptyPassphrase rejects derivation from an empty passphrase.
	ErrEmptyPassphrase = errors.New("empty passphrase")

	// ErrEncryptionUnavailable is returned by Seal when no key is
	// configured. Sealing fails closed; it never falls back to plaintext.
	ErrEncryptionUnavailable = errors.New("encryption unavailable: no session key configured")

	// ErrInvalidKeySize is returned when a raw session key is not exactly
	// 32 bytes.
	ErrInvalidKeySize = errors.New("session key must be 32 bytes")
)
