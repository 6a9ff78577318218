// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-box-keeper/internal/adapter"
	"github.com/MKhiriev/go-box-keeper/internal/config"
	"github.com/MKhiriev/go-box-keeper/internal/inventory"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/service"
	"github.com/MKhiriev/go-box-keeper/internal/store"
	"github.com/MKhiriev/go-box-keeper/internal/tui"
	"github.com/MKhiriev/go-box-keeper/models"
)

type App struct {
	inventory inventory.Inventory

	// store is set in local mode only; it must be closed on exit.
	store *inventory.Store

	tui    *tui.TUI
	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp builds the client. With an adapter address configured the TUI
// drives the remote API; otherwise it opens the local store.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	app := &App{logger: logger}

	if cfg.Adapter.IsRemote() {
		remote, err := adapter.NewHTTPInventoryAdapter(cfg.Adapter, logger)
		if err != nil {
			return nil, fmt.Errorf("create server adapter: %w", err)
		}

		if info, err := remote.GetBuildInfo(ctx); err != nil {
			logger.Warn().Err(err).Str("address", cfg.Adapter.HTTPAddress).Msg("remote inventory did not answer")
		} else {
			logger.Info().Str("server_version", info.BuildVersion()).Msg("using remote inventory")
		}

		app.inventory = remote
	} else {
		slots, err := store.NewSlotStorage(ctx, cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("create slot storage: %w", err)
		}

		local, err := inventory.New(ctx, slots, cfg.Storage.SlotKey, logger, inventory.WithPolicy(cfg.Inventory))
		if err != nil {
			return nil, errors.Join(fmt.Errorf("open inventory: %w", err), slots.Close())
		}

		app.inventory = local
		app.store = local
	}

	ops := service.NewInventoryLoggingService(logger).Wrap(app.inventory)
	app.tui = tui.New(ops, buildInfo, cfg.App, logger)
	return app, nil
}

// Run shows the TUI until the user quits or the process is terminated, then
// closes the store.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	runErr := a.tui.Run(ctx)
	return errors.Join(runErr, a.Close(context.WithoutCancel(ctx)))
}

// Close flushes pending writes and releases the slot. It is a no-op in
// remote mode.
func (a *App) Close(ctx context.Context) error {
	if a.store == nil {
		return nil
	}
	if err := a.store.Close(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Close").Msg("failed to close inventory")
		return fmt.Errorf("close inventory: %w", err)
	}
	return nil
}
