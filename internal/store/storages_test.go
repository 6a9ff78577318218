// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-box-keeper/internal/config"
	"github.com/MKhiriev/go-box-keeper/internal/crypto"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
)

func TestNewSlotStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		s, err := NewSlotStorage(ctx, config.Storage{Driver: config.DriverMemory}, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &memorySlotStorage{}, s)
	})

	t.Run("file", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewSlotStorage(ctx, config.Storage{Driver: config.DriverFile, Files: config.Files{Dir: dir}}, logger.Nop())
		require.NoError(t, err)
		require.IsType(t, &fileSlotStorage{}, s)
		assert.Equal(t, dir, s.(*fileSlotStorage).dir)
	})

	t.Run("sealed", func(t *testing.T) {
		cfg := config.Storage{Driver: config.DriverMemory, Passphrase: "pw"}
		s, err := NewSlotStorage(ctx, cfg, logger.Nop())
		require.NoError(t, err)
		require.IsType(t, &sealedSlotStorage{}, s)
		assert.IsType(t, &memorySlotStorage{}, s.(*sealedSlotStorage).inner)
	})

	t.Run("blank passphrase", func(t *testing.T) {
		cfg := config.Storage{Driver: config.DriverMemory, Passphrase: "  "}
		_, err := NewSlotStorage(ctx, cfg, logger.Nop())
		assert.ErrorIs(t, err, crypto.ErrEmptyPassphrase)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := NewSlotStorage(ctx, config.Storage{Driver: "mongo"}, logger.Nop())
		assert.ErrorIs(t, err, ErrUnknownDriver)
	})

	t.Run("unreachable redis", func(t *testing.T) {
		cfg := config.Storage{Driver: config.DriverRedis, Redis: config.Redis{Addr: "127.0.0.1:1"}}
		_, err := NewSlotStorage(ctx, cfg, logger.Nop())
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})
}
