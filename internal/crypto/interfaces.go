// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals inventory snapshots at rest.
//
// A sealed blob is laid out as
//
//	magic(4) ‖ salt(16) ‖ nonce(12) ‖ AES-256-GCM ciphertext
//
// where the key is derived from a passphrase with Argon2id and the salt.
// The salt travels with every blob, so any copy of the slot can be opened
// with the passphrase alone.
package crypto

// SlotCipher seals and opens slot payloads.
type SlotCipher interface {
	// Seal encrypts plaintext into a self-describing blob.
	Seal(plaintext []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. It returns ErrWrongPassphrase
	// when authentication fails and ErrMalformedBlob when blob is too short.
	Open(blob []byte) ([]byte, error)

	// IsSealed reports whether blob carries the sealed-blob header. Blobs
	// without it are plaintext snapshots written before encryption was on.
	IsSealed(blob []byte) bool
}
