// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a field of a partial update. It has three states:
//
//   - omitted: Set is false, the target field is left unchanged;
//   - cleared: Set and Null are true, the target field is reset;
//   - set:     Set is true and Null is false, Value replaces the target field.
//
// In JSON an absent key decodes as omitted and a literal null as cleared.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns an Optional that sets the field to v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Clear returns an Optional that resets the field.
func Clear[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// ApplyTo returns the value the field should hold after the update.
func (o Optional[T]) ApplyTo(current T) T {
	if !o.Set {
		return current
	}
	if o.Null {
		var zero T
		return zero
	}
	return o.Value
}

// IsZero reports whether the field was omitted. It makes `omitzero` drop
// omitted fields on encoding.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

// MarshalJSON implements json.Marshaler.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked for keys
// present in the input, which is what marks the field as set.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}

	o.Null = false
	return json.Unmarshal(b, &o.Value)
}
