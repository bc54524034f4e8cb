package crypto

import "sync"

// SessionKeychain holds the optional process-wide session key used to seal
// vault blobs when no passphrase travels with the request.
//
// The key is written once at startup or via the admin configuration
// endpoint and read by every seal/open call thereafter, so a read-mostly
// RWMutex guard is sufficient. An explicit keychain instance (rather than
// package-level state) keeps tests isolated.
type SessionKeychain struct {
	mu  sync.RWMutex
	key DerivedKey
}

// NewSessionKeychain returns an empty keychain. Sealing through an empty
// keychain fails with [ErrEncryptionUnavailable].
func NewSessionKeychain() *SessionKeychain {
	return &SessionKeychain{}
}

// Set installs raw as the session key. raw must be exactly 32 bytes; it is
// zeroed in place once the key schedule is built.
func (c *SessionKeychain) Set(raw []byte) error {
	key, err := NewSessionKey(raw)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = key
	return nil
}

// Get returns the configured key. ok is false when no key has been set.
func (c *SessionKeychain) Get() (DerivedKey, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.key, !c.key.IsZero()
}

// Clear drops the session key on teardown.
func (c *SessionKeychain) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = DerivedKey{}
}
