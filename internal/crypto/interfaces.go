package crypto

// KeyDerivationService turns a low-entropy passphrase into a 256-bit
// symmetric key. It knows nothing about the network or storage; its only
// job is to produce keys that are stable across releases.
//
// Scheme of work:
//
//	salt      = GenerateSalt()                      (once per vault, stored alongside)
//	key, v    = Derive(passphrase, salt, version)   (every unlock)
//
// The salt is not a secret but must never be regenerated for an existing
// vault: a fresh salt silently produces a different key and makes all
// existing ciphertext unreadable.
type KeyDerivationService interface {
	// GenerateSalt returns a random 16-byte salt for a new vault.
	GenerateSalt() ([]byte, error)

	// Derive produces the symmetric key for passphrase and salt under the
	// given KDF version. An empty version selects the current default
	// (VersionArgon2id). The cost parameters of each version are fixed in
	// the implementation so the same inputs always yield the same key.
	// The returned key is bound to AES-256-GCM; raw key bytes are never
	// exposed to callers.
	Derive(passphrase string, salt []byte, version KdfVersion) (DerivedKey, KdfVersion, error)
}

// EnvelopeService wraps and unwraps plaintext with authenticated encryption.
//
// Seal and Open are deliberately asymmetric in failure behavior: Seal fails
// loudly when no key is available (silently writing plaintext where
// encryption was expected is worse than refusing to write), while Open fails
// quietly so callers can treat an unreadable blob as unrecoverable data
// instead of a fatal error.
type EnvelopeService interface {
	// Seal encrypts plaintext under key with a fresh random nonce and
	// returns the self-describing envelope string.
	Seal(plaintext string, key DerivedKey) (string, error)

	// Open reverses Seal. A string without the envelope prefix is returned
	// unchanged with ok=true (migration pass-through for never-encrypted
	// data). A prefixed string that fails to decode, decrypt, or
	// authenticate yields ("", false).
	Open(envelope string, key DerivedKey) (plaintext string, ok bool)
}
