// SPDX-License-Identifier: Apache-2.0

package license

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base32"
	"errors"
	"regexp"
	"strings"
)

// License key format: "VG-XXXX-XXXX-XXXX-XXXX".
//
// The 16 code characters are the Crockford base32 encoding of the first
// 10 bytes of HMAC-SHA256(secret, sessionID). The mapping is deterministic
// (the same payment session always yields the same code) and one-way
// (neither the session identifier nor the secret can be recovered from the
// code). The Crockford alphabet drops I, L, O and U so the code stays
// human-typeable without ambiguous glyphs.
const keyPrefix = "VG"

var (
	// ErrEmptySecret rejects construction without a server-held secret: an
	// unkeyed derivation would let anyone mint valid-looking codes.
	ErrEmptySecret = errors.New("license secret must not be empty")

	crockford = base32.NewEncoding("0123456789ABCDEFGHJKMNPQRSTVWXYZ").WithPadding(base32.NoPadding)

	// keyPattern validates the structural shape only; a matching code says
	// nothing about entitlement.
	keyPattern = regexp.MustCompile(`^VG-[0-9A-HJKMNP-TV-Z]{4}-[0-9A-HJKMNP-TV-Z]{4}-[0-9A-HJKMNP-TV-Z]{4}-[0-9A-HJKMNP-TV-Z]{4}$`)
)

// Deriver maps opaque payment-session identifiers to license codes using a
// server-held secret. It performs no network calls and holds no state
// beyond the secret.
type Deriver struct {
	secret []byte
}

// NewDeriver constructs a Deriver keyed with secret.
func NewDeriver(secret string) (*Deriver, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Deriver{secret: []byte(secret)}, nil
}

// DeriveFromSession returns the license code for sessionID. Deterministic:
// two calls with the same identifier yield the same code.
func (d *Deriver) DeriveFromSession(sessionID string) string {
	mac := hmac.New(sha256.New, d.secret)
	mac.Write([]byte(sessionID))
	digest := mac.Sum(nil)

	code := crockford.EncodeToString(digest[:10]) // 80 bits -> 16 chars
	return keyPrefix + "-" + code[0:4] + "-" + code[4:8] + "-" + code[8:12] + "-" + code[12:16]
}

// IsValidFormat reports whether candidate is structurally a license code:
// right prefix, grouping, length, and character set. Case-insensitive.
func IsValidFormat(candidate string) bool {
	return keyPattern.MatchString(Normalize(candidate))
}

// Normalize upper-cases a candidate code for case-insensitive comparison.
func Normalize(candidate string) string {
	return strings.ToUpper(strings.TrimSpace(candidate))
}

// Equal compares two license codes case-insensitively.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
