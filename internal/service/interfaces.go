// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-box-keeper/internal/inventory"
	"github.com/MKhiriev/go-box-keeper/models"
)

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// InventoryWrapper defines middleware composition for inventory.Inventory.
// Implementations wrap an existing inventory to add behavior such as
// logging.
type InventoryWrapper interface {
	Wrap(inventory.Inventory) inventory.Inventory // returns a decorated inventory applying additional behavior
}
