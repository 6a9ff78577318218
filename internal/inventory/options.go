// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inventory

import (
	"time"

	"github.com/MKhiriev/go-box-keeper/internal/config"
	"github.com/MKhiriev/go-box-keeper/internal/utils"
	"github.com/MKhiriev/go-box-keeper/internal/validators"
)

// Option customises a [Store] built by [New].
type Option func(*Store)

// WithPolicy applies the capacity ceilings and the minimum quantity of cfg.
func WithPolicy(cfg config.Inventory) Option {
	return func(s *Store) {
		s.maxBoxes = cfg.MaxBoxes
		s.maxItemsPerBox = cfg.MaxItemsPerBox
		s.validator = validators.NewInventoryValidator(cfg.MinQuantity)
	}
}

// WithIDGenerator replaces the random UUID generator.
func WithIDGenerator(g utils.IDGenerator) Option {
	return func(s *Store) {
		s.ids = g
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}
