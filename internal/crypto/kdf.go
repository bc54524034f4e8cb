// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// KdfVersion tags the derivation scheme that produced a key. The version is
// recorded alongside every ciphertext sealed under a passphrase-derived key
// so decryption can reconstruct the identical key later.
type KdfVersion string

const (
	// VersionArgon2id is the current default derivation scheme.
	VersionArgon2id KdfVersion = "argon2id-v1"

	// VersionPBKDF2 is the legacy scheme. Vaults encrypted under it must
	// remain decryptable indefinitely, so its parameters are frozen.
	VersionPBKDF2 KdfVersion = "pbkdf2-v1"
)

// ParseKdfVersion maps a wire tag to a KdfVersion. An empty tag selects the
// current default.
func ParseKdfVersion(s string) (KdfVersion, error) {
	switch KdfVersion(s) {
	case "":
		return VersionArgon2id, nil
	case VersionArgon2id, VersionPBKDF2:
		return KdfVersion(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKdfVersion, s)
	}
}

// DerivedKey is an AES-256-GCM key tagged with the KDF version that produced
// it. The key material lives only in process memory: the struct holds a
// ready-built AEAD instead of raw bytes, so the key is never serialized,
// logged, or reusable with another cipher.
type DerivedKey struct {
	version KdfVersion
	aead    cipher.AEAD
}

// Version returns the KDF version the key was derived under. Keys built
// from a raw session key carry an empty version.
func (k DerivedKey) Version() KdfVersion { return k.version }

// IsZero reports whether the key is unusable (no AEAD behind it).
func (k DerivedKey) IsZero() bool { return k.aead == nil }

// keyDerivationService is the private implementation of [KeyDerivationService].
type keyDerivationService struct {
	// Argon2id tuning parameters. Fixed at construction, never per call:
	// the same passphrase+salt must yield the same key across app versions
	// sharing the same default.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8

	// Legacy PBKDF2 iteration count. Frozen: changing it would orphan
	// every vault encrypted before the Argon2id migration.
	pbkdf2Iterations int
}

const derivedKeyLen = 32 // 256 bits, AES-256

// NewKeyDerivationService constructs a [KeyDerivationService] with the
// Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//
// and the frozen legacy PBKDF2 parameters (SHA-256, 100 000 iterations,
// 32-byte key).
func NewKeyDerivationService() KeyDerivationService {
	return &keyDerivationService{
		argonTime:        1,
		argonMemory:      64 * 1024, // 64 MiB
		argonThreads:     4,
		pbkdf2Iterations: 100_000,
	}
}

// GenerateSalt implements [KeyDerivationService]. It reads 16 random bytes
// from the OS CSPRNG. Returns an error if the random read fails.
func (s *keyDerivationService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivationFailure, err)
	}
	return salt, nil
}

// Derive implements [KeyDerivationService]. The raw derived bytes never
// leave this function: they are folded into an AES-256-GCM AEAD and zeroed.
func (s *keyDerivationService) Derive(passphrase string, salt []byte, version KdfVersion) (DerivedKey, KdfVersion, error) {
	if passphrase == "" {
		return DerivedKey{}, "", ErrEmptyPassphrase
	}
	if version == "" {
		version = VersionArgon2id
	}

	var raw []byte
	switch version {
	case VersionArgon2id:
		raw = argon2.IDKey([]byte(passphrase), salt, s.argonTime, s.argonMemory, s.argonThreads, derivedKeyLen)
	case VersionPBKDF2:
		raw = pbkdf2.Key([]byte(passphrase), salt, s.pbkdf2Iterations, derivedKeyLen, sha256.New)
	default:
		return DerivedKey{}, "", fmt.Errorf("%w: %q", ErrUnknownKdfVersion, version)
	}

	key, err := newDerivedKey(raw, version)
	if err != nil {
		return DerivedKey{}, "", err
	}
	return key, version, nil
}

// NewSessionKey builds a DerivedKey from 32 raw random bytes. Used for the
// process-wide session key, which is configured rather than derived; such
// keys carry no KDF version.
func NewSessionKey(raw []byte) (DerivedKey, error) {
	if len(raw) != derivedKeyLen {
		return DerivedKey{}, ErrInvalidKeySize
	}
	return newDerivedKey(raw, "")
}

func newDerivedKey(raw []byte, version KdfVersion) (DerivedKey, error) {
	block, err := aes.NewCipher(raw)
	if err != nil {
		return DerivedKey{}, fmt.Errorf("%w: %w", ErrKeyDerivationFailure, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return DerivedKey{}, fmt.Errorf("%w: %w", ErrKeyDerivationFailure, err)
	}

	// Best effort: the AEAD keeps its own key schedule internally.
	for i := range raw {
		raw[i] = 0
	}

	return DerivedKey{version: version, aead: gcm}, nil
}
