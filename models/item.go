// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a single inventoried belonging. It always belongs to exactly one
// [Box], referenced by BoxID.
type Item struct {
	ID    string `json:"id"`
	BoxID string `json:"boxId"`
	Name  string `json:"name"`

	// Quantity is at least the configured minimum (1 by default).
	Quantity int `json:"quantity"`

	// QuantityUnit is a display-only unit label such as "pair" or "set".
	QuantityUnit string `json:"quantityUnit,omitempty"`

	Description string `json:"description,omitempty"`

	// PhotoURI references an externally stored image. It is never
	// interpreted by the inventory.
	PhotoURI string `json:"photoUri,omitempty"`

	// Value is an optional non-negative monetary amount.
	Value *decimal.Decimal `json:"value,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewItem holds the user-supplied fields of an item that is about to be
// created.
type NewItem struct {
	BoxID        string           `json:"boxId"`
	Name         string           `json:"name"`
	Quantity     int              `json:"quantity"`
	QuantityUnit string           `json:"quantityUnit,omitempty"`
	Description  string           `json:"description,omitempty"`
	PhotoURI     string           `json:"photoUri,omitempty"`
	Value        *decimal.Decimal `json:"value,omitempty"`
}

// ItemUpdate is a partial update of an item. BoxID is not updatable.
type ItemUpdate struct {
	Name         Optional[string]          `json:"name,omitzero"`
	Quantity     Optional[int]             `json:"quantity,omitzero"`
	QuantityUnit Optional[string]          `json:"quantityUnit,omitzero"`
	Description  Optional[string]          `json:"description,omitzero"`
	PhotoURI     Optional[string]          `json:"photoUri,omitzero"`
	Value        Optional[decimal.Decimal] `json:"value,omitzero"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u ItemUpdate) IsEmpty() bool {
	return !u.Name.Set && !u.Quantity.Set && !u.QuantityUnit.Set &&
		!u.Description.Set && !u.PhotoURI.Set && !u.Value.Set
}

// Apply merges u into it and returns the result.
func (u ItemUpdate) Apply(it Item) Item {
	it.Name = u.Name.ApplyTo(it.Name)
	it.Quantity = u.Quantity.ApplyTo(it.Quantity)
	it.QuantityUnit = u.QuantityUnit.ApplyTo(it.QuantityUnit)
	it.Description = u.Description.ApplyTo(it.Description)
	it.PhotoURI = u.PhotoURI.ApplyTo(it.PhotoURI)

	switch {
	case !u.Value.Set:
	case u.Value.Null:
		it.Value = nil
	default:
		v := u.Value.Value
		it.Value = &v
	}

	return it
}

// Clone returns a copy of it that shares no memory with the original.
func (it Item) Clone() Item {
	if it.Value != nil {
		v := *it.Value
		it.Value = &v
	}
	return it
}
