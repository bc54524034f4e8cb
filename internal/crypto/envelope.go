// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// Envelope wire format:
//
//	VGENC:<base64(nonce ‖ ciphertext ‖ tag)>              session-key sealed
//	VGENC:<kdf-version>:<base64(nonce ‖ ciphertext ‖ tag)>  passphrase sealed
//
// The nonce is 12 bytes and the GCM tag 16 bytes, both inside the base64
// body. The optional middle segment records the KDF version the key was
// derived under, so decryption never has to guess how to rebuild the key.
const (
	// EnvelopePrefix marks a value sealed by this service.
	EnvelopePrefix = "VGENC:"

	// legacyEnvelopePrefix is the marker used before the product rename.
	// Still recognized by IsSealed so migrations keep working; such blobs
	// are detectable but not necessarily decryptable here.
	legacyEnvelopePrefix = "PKENC:"
)

// IsSealed reports whether s carries an envelope prefix, current or legacy.
// It is a pure predicate: it does not validate the body.
func IsSealed(s string) bool {
	return strings.HasPrefix(s, EnvelopePrefix) || strings.HasPrefix(s, legacyEnvelopePrefix)
}

// SealedVersion returns the KDF version recorded in the envelope, if any.
// ok is false when s is not a current-format envelope or records no version
// (session-key sealed blobs).
func SealedVersion(s string) (KdfVersion, bool) {
	body, found := strings.CutPrefix(s, EnvelopePrefix)
	if !found {
		return "", false
	}
	version, _, found := strings.Cut(body, ":")
	if !found {
		return "", false
	}
	switch v := KdfVersion(version); v {
	case VersionArgon2id, VersionPBKDF2:
		return v, true
	default:
		return "", false
	}
}

// envelopeService is the private implementation of [EnvelopeService].
type envelopeService struct{}

// NewEnvelopeService constructs an [EnvelopeService]. The service is
// stateless; keys arrive per call.
func NewEnvelopeService() EnvelopeService {
	return envelopeService{}
}

// Seal implements [EnvelopeService]. A fresh random nonce is generated per
// call; reusing a nonce under the same key breaks GCM confidentiality, so
// failure to read randomness aborts the seal. A zero key fails with
// [ErrEncryptionUnavailable] rather than writing anything.
func (envelopeService) Seal(plaintext string, key DerivedKey) (string, error) {
	if key.IsZero() {
		return "", ErrEncryptionUnavailable
	}

	nonce := make([]byte, key.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// blob = nonce || ciphertext || tag
	blob := key.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	if key.version != "" {
		return EnvelopePrefix + string(key.version) + ":" + base64.StdEncoding.EncodeToString(blob), nil
	}
	return EnvelopePrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [EnvelopeService]. It never returns an error: any failure
// (tamper, wrong key, truncation, zero key) yields ("", false) so callers
// can treat the field as unreadable instead of crashing. A string without
// the current prefix passes through unchanged — older, never-encrypted
// files stay readable.
func (envelopeService) Open(envelope string, key DerivedKey) (string, bool) {
	if strings.HasPrefix(envelope, legacyEnvelopePrefix) {
		// Legacy blobs are recognized but use a cipher this service
		// cannot rebuild, so they are unreadable rather than pass-through.
		return "", false
	}

	body, found := strings.CutPrefix(envelope, EnvelopePrefix)
	if !found {
		return envelope, true
	}

	if version, _, ok := strings.Cut(body, ":"); ok {
		// Skip the recorded KDF version segment; the caller already used
		// it to rebuild the key.
		body = body[len(version)+1:]
	}

	if key.IsZero() {
		return "", false
	}

	blob, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return "", false
	}

	nonceSize := key.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", false
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := key.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// Auth-tag mismatch: wrong key or corrupted data.
		return "", false
	}

	return string(plaintext), true
}
