// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal user interface of the inventory.
//
// It works on any [inventory.Inventory]: the local store or the remote HTTP
// adapter. Screens: box list with item counts, box detail with its items,
// box and item forms, search, scan, statistics and build info.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-box-keeper/internal/config"
	"github.com/MKhiriev/go-box-keeper/internal/inventory"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	inv            inventory.Inventory
	buildInfo      models.AppBuildInfo
	deepLinkScheme string
	logger         *logger.Logger
}

func New(inv inventory.Inventory, buildInfo models.AppBuildInfo, appCfg config.App, logger *logger.Logger) *TUI {
	return &TUI{
		inv:            inv,
		buildInfo:      buildInfo,
		deepLinkScheme: appCfg.DeepLinkScheme,
		logger:         logger,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.inv, t.buildInfo, t.deepLinkScheme, clipboard.WriteAll, t.logger)

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
