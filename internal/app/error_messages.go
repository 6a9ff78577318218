// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer messages used by the
// terminal client.
//
// All Msg* constants are human-readable strings shown to the user when an
// inventory operation fails. [UserMessage] picks the right one for an error
// so the local store and the remote adapter read the same on screen.
package app

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-box-keeper/internal/adapter"
	"github.com/MKhiriev/go-box-keeper/internal/inventory"
)

const (
	// MsgBoxNotFound is shown when a box id or a scanned code matches no box.
	MsgBoxNotFound = "box not found"

	// MsgItemNotFound is shown when an item vanished before it was edited or
	// deleted.
	MsgItemNotFound = "item not found"

	// MsgBoxCapacityExceeded is shown when the configured box ceiling is
	// reached.
	MsgBoxCapacityExceeded = "box limit reached, delete a box first"

	// MsgItemCapacityExceeded is shown when the box already holds the
	// configured number of items.
	MsgItemCapacityExceeded = "this box is full"

	// MsgInvalidDataProvided prefixes validation failures.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgIDExhausted is shown when no unused box code could be generated.
	MsgIDExhausted = "could not generate a unique box code, try again"

	// MsgServerUnavailable is shown when the remote API cannot be reached.
	MsgServerUnavailable = "network is down or the server is unavailable"

	// MsgInternalError is shown for every other failure.
	MsgInternalError = "internal error"

	// MsgNothingToCopy is shown when there is no box code to copy.
	MsgNothingToCopy = "nothing to copy"
)

// UserMessage maps err to a message for the terminal UI. Validation errors
// keep the violated rule, e.g. "invalid data provided: name is required".
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, inventory.ErrValidation):
		return MsgInvalidDataProvided + validationDetail(err)
	case errors.Is(err, inventory.ErrBoxNotFound):
		return MsgBoxNotFound
	case errors.Is(err, inventory.ErrItemNotFound):
		return MsgItemNotFound
	case errors.Is(err, inventory.ErrBoxCapacityExceeded):
		return MsgBoxCapacityExceeded
	case errors.Is(err, inventory.ErrItemCapacityExceeded):
		return MsgItemCapacityExceeded
	case errors.Is(err, inventory.ErrIDExhausted):
		return MsgIDExhausted
	case errors.Is(err, adapter.ErrServerUnreachable), isNetworkError(err):
		return MsgServerUnavailable
	default:
		return MsgInternalError
	}
}

func validationDetail(err error) string {
	marker := inventory.ErrValidation.Error() + ": "
	s := err.Error()
	if i := strings.LastIndex(s, marker); i >= 0 {
		return ": " + s[i+len(marker):]
	}
	return ""
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
