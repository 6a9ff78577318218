// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inventory

import (
	"errors"

	"github.com/MKhiriev/go-box-keeper/internal/validators"
)

// Sentinel errors returned by inventory operations. Use [errors.Is] to match
// them; returned errors usually wrap one of these with more context.
var (
	// ErrValidation is wrapped by every rejected input.
	ErrValidation = validators.ErrValidation

	// ErrBoxNotFound is returned when an operation references an unknown box.
	ErrBoxNotFound = errors.New("box not found")

	// ErrItemNotFound is returned when an operation references an unknown item.
	ErrItemNotFound = errors.New("item not found")

	// ErrBoxCapacityExceeded is returned by AddBox when the box ceiling is
	// reached.
	ErrBoxCapacityExceeded = errors.New("box capacity exceeded")

	// ErrItemCapacityExceeded is returned by AddItem when the target box is
	// full.
	ErrItemCapacityExceeded = errors.New("item capacity exceeded")

	// ErrPersistenceUnavailable marks failures of the durable slot. It is
	// logged, never returned by a mutation.
	ErrPersistenceUnavailable = errors.New("persistence unavailable")

	// ErrMissingSlotKey is returned by New when no slot key is configured.
	ErrMissingSlotKey = errors.New("slot key is required")

	// ErrIDExhausted is returned when no unique id could be drawn.
	ErrIDExhausted = errors.New("could not generate a unique id")
)
