// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrEmptyPassphrase is returned by [NewPassphraseCipher] for a blank
	// passphrase.
	ErrEmptyPassphrase = errors.New("empty passphrase")

	// ErrMalformedBlob is returned when a sealed blob is truncated.
	ErrMalformedBlob = errors.New("malformed sealed blob")

	// ErrWrongPassphrase is returned when the GCM tag does not verify:
	// either the passphrase differs or the blob was tampered with.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted blob")
)
