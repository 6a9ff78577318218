// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-box-keeper/internal/config"
	"github.com/MKhiriev/go-box-keeper/internal/crypto"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
)

// NewSlotStorage builds the backend selected by cfg.Driver. SQL backends are
// connected and migrated before they are returned. A configured passphrase
// wraps the backend with [NewSealedSlotStorage].
func NewSlotStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (SlotStorage, error) {
	log.Info().Str("driver", cfg.Driver).Bool("sealed", cfg.Passphrase != "").Msg("creating slot storage...")

	var c crypto.SlotCipher
	if cfg.Passphrase != "" {
		var err error
		if c, err = crypto.NewPassphraseCipher(cfg.Passphrase); err != nil {
			return nil, fmt.Errorf("create slot cipher: %w", err)
		}
	}

	backend, err := newBackend(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return NewSealedSlotStorage(backend, c), nil
	}
	return backend, nil
}

func newBackend(ctx context.Context, cfg config.Storage, log *logger.Logger) (SlotStorage, error) {
	switch cfg.Driver {
	case config.DriverFile:
		return NewFileSlotStorage(cfg.Files.Dir, log), nil

	case config.DriverMemory:
		return NewMemorySlotStorage(), nil

	case config.DriverSQLite, config.DriverPostgres:
		var (
			db  *DB
			err error
		)
		if cfg.Driver == config.DriverSQLite {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		}
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
		}

		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLSlotStorage(db), nil

	case config.DriverRedis:
		client, err := NewConnectRedis(ctx, cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		return NewRedisSlotStorage(client), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
