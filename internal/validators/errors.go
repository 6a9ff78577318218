// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is wrapped by every rule violation below.
	ErrValidation = errors.New("validation failed")

	ErrEmptyName       = fmt.Errorf("%w: name is required", ErrValidation)
	ErrEmptyLocation   = fmt.Errorf("%w: location is required", ErrValidation)
	ErrInvalidCategory = fmt.Errorf("%w: unknown category", ErrValidation)
	ErrEmptyBoxID      = fmt.Errorf("%w: box id is required", ErrValidation)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity is below the minimum", ErrValidation)
	ErrNegativeValue   = fmt.Errorf("%w: value must not be negative", ErrValidation)
)
