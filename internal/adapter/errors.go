// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrInvalidAddress is returned when the configured server address is
	// not a usable base URL.
	ErrInvalidAddress = errors.New("invalid server address")

	// ErrServerUnreachable wraps transport failures such as refused
	// connections and timeouts.
	ErrServerUnreachable = errors.New("server unreachable")

	// ErrServerError is returned for 5xx answers.
	ErrServerError = errors.New("server error")

	// ErrUnexpectedResponse is returned for statuses the adapter cannot map
	// and for bodies it cannot decode.
	ErrUnexpectedResponse = errors.New("unexpected server response")
)
