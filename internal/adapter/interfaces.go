// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the terminal client drive a remote inventory through
// its HTTP API.
//
// [NewHTTPInventoryAdapter] returns a [ServerAdapter], which satisfies
// [inventory.Inventory]. HTTP status codes are mapped back to the inventory
// sentinel errors so callers use [errors.Is] the same way for the local store
// and the remote one (404 to ErrBoxNotFound or ErrItemNotFound, 409 to the
// capacity errors, 400 to ErrValidation).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-box-keeper/internal/inventory"
	"github.com/MKhiriev/go-box-keeper/models"
)

// ServerAdapter is a remote [inventory.Inventory].
type ServerAdapter interface {
	inventory.Inventory

	// GetBuildInfo returns the build metadata of the remote server.
	GetBuildInfo(ctx context.Context) (models.AppBuildInfo, error)
}
