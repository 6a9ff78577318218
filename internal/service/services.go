// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service assembles what the transport layer calls into: the
// inventory, decorated with cross-cutting behavior, and build metadata.
package service

import (
	"github.com/MKhiriev/go-box-keeper/internal/config"
	"github.com/MKhiriev/go-box-keeper/internal/inventory"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/models"
)

type Services struct {
	Inventory      inventory.Inventory
	AppInfoService AppInfoService
}

// NewServices wraps inv with operation logging and pairs it with build
// metadata.
func NewServices(inv inventory.Inventory, build models.AppBuildInfo, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		Inventory:      NewInventoryLoggingService(logger).Wrap(inv),
		AppInfoService: NewAppInfoService(cfg, build, logger),
	}
}
