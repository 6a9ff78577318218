// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// The slot key has no default: a missing key is a startup error. In remote
// mode the storage section is not used and is not checked.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.IsRemote() {
		if cfg.Adapter.RequestTimeout <= 0 {
			return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
		}
	} else if err := cfg.Storage.validate(); err != nil {
		return err
	}

	inv := cfg.Inventory
	if inv.MaxBoxes < 0 || inv.MaxItemsPerBox < 0 || inv.MinQuantity < 0 {
		return ErrInvalidInventoryConfigs
	}

	return nil
}

func (s Storage) validate() error {
	if strings.TrimSpace(s.SlotKey) == "" {
		return fmt.Errorf("%w: slot key is required", ErrInvalidStorageConfigs)
	}

	switch s.Driver {
	case DriverFile:
		if s.Files.Dir == "" {
			return fmt.Errorf("%w: files dir is required", ErrInvalidStorageConfigs)
		}
	case DriverSQLite:
		if s.DB.DSN == "" || strings.Contains(s.DB.DSN, "memory") {
			return fmt.Errorf("%w: sqlite needs a file DSN", ErrInvalidStorageConfigs)
		}
	case DriverPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: postgres DSN is required", ErrInvalidStorageConfigs)
		}
	case DriverRedis:
		if s.Redis.Addr == "" {
			return fmt.Errorf("%w: redis address is required", ErrInvalidStorageConfigs)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, s.Driver)
	}

	return nil
}
