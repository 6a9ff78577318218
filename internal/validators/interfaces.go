// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks box and item input before the inventory mutates
// anything. Every violation wraps [ErrValidation], and only the first one
// found is reported.
//
// Field scoping lets callers check just the fields a partial update touches:
//
//	v.Validate(ctx, merged, FieldName, FieldQuantity)
package validators

import "context"

// Validator validates a value, optionally limited to the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
