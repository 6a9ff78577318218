// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	errInvalidQuantity = errors.New("quantity must be a whole number")
	errInvalidValue    = errors.New("value must be a number, e.g. 12.50")
)
