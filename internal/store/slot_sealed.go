// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-box-keeper/internal/crypto"
)

// sealedSlotStorage encrypts payloads before they reach the wrapped backend.
type sealedSlotStorage struct {
	inner  SlotStorage
	cipher crypto.SlotCipher
}

// NewSealedSlotStorage wraps inner so every saved payload is sealed with c.
// Plaintext payloads found on Load are passed through unchanged; the next
// Save seals them.
func NewSealedSlotStorage(inner SlotStorage, c crypto.SlotCipher) SlotStorage {
	return &sealedSlotStorage{inner: inner, cipher: c}
}

func (s *sealedSlotStorage) Load(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.inner.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if !s.cipher.IsSealed(payload) {
		return payload, nil
	}

	plaintext, err := s.cipher.Open(payload)
	if err != nil {
		return nil, fmt.Errorf("open slot %q: %w", key, err)
	}
	return plaintext, nil
}

func (s *sealedSlotStorage) Save(ctx context.Context, key string, payload []byte) error {
	sealed, err := s.cipher.Seal(payload)
	if err != nil {
		return fmt.Errorf("seal slot %q: %w", key, err)
	}
	return s.inner.Save(ctx, key, sealed)
}

func (s *sealedSlotStorage) Close() error {
	return s.inner.Close()
}
