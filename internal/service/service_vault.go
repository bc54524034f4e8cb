// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"vaultguard/internal/crypto"
	"vaultguard/internal/logger"
	"vaultguard/models"
)

type vaultService struct {
	kdf      crypto.KeyDerivationService
	envelope crypto.EnvelopeService
	keychain *crypto.SessionKeychain

	logger *logger.Logger
}

// NewVaultService constructs a [VaultService] over the key-derivation
// engine, the envelope codec, and the process-wide session keychain.
func NewVaultService(kdf crypto.KeyDerivationService, envelope crypto.EnvelopeService, keychain *crypto.SessionKeychain, log *logger.Logger) VaultService {
	return &vaultService{
		kdf:      kdf,
		envelope: envelope,
		keychain: keychain,
		logger:   log,
	}
}

// Seal implements [VaultService]. Key derivation is CPU and memory
// intensive on purpose; callers running on a request-dispatch path should
// budget for it.
func (s *vaultService) Seal(ctx context.Context, req models.SealRequest) (models.SealResponse, error) {
	key, err := s.sealKey(req)
	if err != nil {
		return models.SealResponse{}, err
	}

	sealed, err := s.envelope.Seal(req.Plaintext, key)
	if err != nil {
		return models.SealResponse{}, err
	}

	return models.SealResponse{Envelope: sealed}, nil
}

func (s *vaultService) sealKey(req models.SealRequest) (crypto.DerivedKey, error) {
	if req.Passphrase == "" {
		key, ok := s.keychain.Get()
		if !ok {
			return crypto.DerivedKey{}, crypto.ErrEncryptionUnavailable
		}
		return key, nil
	}

	version, err := crypto.ParseKdfVersion(req.KdfVersion)
	if err != nil {
		return crypto.DerivedKey{}, err
	}
	salt, err := decodeSalt(req.Salt)
	if err != nil {
		return crypto.DerivedKey{}, err
	}

	key, _, err := s.kdf.Derive(req.Passphrase, salt, version)
	return key, err
}

// Open implements [VaultService]. It never returns an error: the caller's
// policy for an unreadable blob is "treat as unrecoverable, not fatal", so
// every failure collapses to Readable=false.
func (s *vaultService) Open(ctx context.Context, req models.OpenRequest) models.OpenResponse {
	log := logger.FromContext(ctx)

	if !crypto.IsSealed(req.Envelope) {
		// Migration pass-through: never-encrypted data stays readable.
		return models.OpenResponse{Plaintext: req.Envelope, Readable: true}
	}

	key, err := s.openKey(req)
	if err != nil {
		log.Debug().Err(err).Msg("cannot rebuild key for sealed blob")
		return models.OpenResponse{}
	}

	plaintext, ok := s.envelope.Open(req.Envelope, key)
	if !ok {
		return models.OpenResponse{}
	}
	return models.OpenResponse{Plaintext: plaintext, Readable: true}
}

func (s *vaultService) openKey(req models.OpenRequest) (crypto.DerivedKey, error) {
	if req.Passphrase == "" {
		key, ok := s.keychain.Get()
		if !ok {
			return crypto.DerivedKey{}, crypto.ErrEncryptionUnavailable
		}
		return key, nil
	}

	// The envelope records the KDF version it was sealed under, so the
	// caller never has to remember it. Session-key blobs carry none; an
	// empty version falls back to the current default.
	version, _ := crypto.SealedVersion(req.Envelope)

	salt, err := decodeSalt(req.Salt)
	if err != nil {
		return crypto.DerivedKey{}, err
	}

	key, _, err := s.kdf.Derive(req.Passphrase, salt, version)
	return key, err
}

// SetSessionKey implements [VaultService]. The keychain rejects raw material
// that is not exactly 32 bytes.
func (s *vaultService) SetSessionKey(ctx context.Context, raw []byte) error {
	if err := s.keychain.Set(raw); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Msg("process session key replaced")
	return nil
}

func decodeSalt(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, ErrInvalidSalt
	}
	salt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSalt, err)
	}
	return salt, nil
}
