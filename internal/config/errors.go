// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, missing slot key or an unknown driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidInventoryConfigs indicates a negative capacity ceiling or
	// minimum quantity.
	ErrInvalidInventoryConfigs = errors.New("invalid inventory configuration")
	// ErrInvalidAdapterConfigs indicates remote mode without a request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
