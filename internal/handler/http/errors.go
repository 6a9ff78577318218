// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding requests. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body is not a valid JSON
	// document of the expected shape, including unknown fields such as an
	// attempt to overwrite an id.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidGzipBody is returned when a request announces gzip content
	// encoding but the body is not gzip data.
	ErrInvalidGzipBody = errors.New("invalid gzip data")

	// ErrInvalidScanCode is returned when the scanned code cannot be decoded
	// from the request path.
	ErrInvalidScanCode = errors.New("invalid scan code")
)
