package models

// SealRequest is the body of POST /api/vault/seal.
//
// When Passphrase is set, the key is derived from it together with the
// caller's stored Salt (base64); KdfVersion selects the derivation scheme and
// defaults to the current one when empty. When Passphrase is empty, the
// process-wide session key is used and sealing fails if none is configured.
type SealRequest struct {
	Plaintext  string `json:"plaintext"`
	Passphrase string `json:"passphrase,omitempty"`
	Salt       string `json:"salt,omitempty"`
	KdfVersion string `json:"kdf_version,omitempty"`
}

// SealResponse carries the self-describing envelope string. The caller hands
// it to whatever persists it; this service never touches disk.
type SealResponse struct {
	Envelope string `json:"envelope"`
}

// OpenRequest is the body of POST /api/vault/open. The envelope records the
// KDF version it was sealed under, so only the passphrase and salt need to
// travel with the request for passphrase-derived keys.
type OpenRequest struct {
	Envelope   string `json:"envelope"`
	Passphrase string `json:"passphrase,omitempty"`
	Salt       string `json:"salt,omitempty"`
}

// OpenResponse returns the recovered plaintext. Readable reports whether
// decryption succeeded; a false value means the blob is unrecoverable with
// the presented key, which callers treat as unreadable rather than fatal.
type OpenResponse struct {
	Plaintext string `json:"plaintext"`
	Readable  bool   `json:"readable"`
}

// SessionKeyRequest configures the process-wide session key. Key is the
// base64 encoding of exactly 32 random bytes.
type SessionKeyRequest struct {
	Key string `json:"key"`
}
