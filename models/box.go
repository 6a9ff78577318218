// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Box is a physical storage container tracked by the inventory.
//
// ID, QRCodeID and CreatedAt are assigned once at creation and never change.
// UpdatedAt advances on every change to the box itself and whenever one of
// its items is added, updated or removed.
type Box struct {
	// ID is the opaque unique identifier of the box.
	ID string `json:"id"`

	// Name is the non-empty display name.
	Name string `json:"name"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Location describes where the box physically is (e.g. "Garage, Shelf A").
	Location string `json:"location"`

	// Category is one of [Categories].
	Category BoxCategory `json:"category"`

	// Color is a presentation swatch. Unknown values are kept verbatim;
	// see [BoxColor.Swatch].
	Color BoxColor `json:"color"`

	// QRCodeID is the human-readable code printed on the physical label.
	QRCodeID string `json:"qrCodeId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewBox holds the user-supplied fields of a box that is about to be created.
type NewBox struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Location    string      `json:"location"`
	Category    BoxCategory `json:"category"`
	Color       BoxColor    `json:"color"`
}

// BoxUpdate is a partial update of a box. Fields left unset are not touched.
// Identity fields are deliberately absent.
type BoxUpdate struct {
	Name        Optional[string]      `json:"name,omitzero"`
	Description Optional[string]      `json:"description,omitzero"`
	Location    Optional[string]      `json:"location,omitzero"`
	Category    Optional[BoxCategory] `json:"category,omitzero"`
	Color       Optional[BoxColor]    `json:"color,omitzero"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u BoxUpdate) IsEmpty() bool {
	return !u.Name.Set && !u.Description.Set && !u.Location.Set && !u.Category.Set && !u.Color.Set
}

// Apply merges u into b and returns the result. Cleared optional fields are
// reset to their zero value; cleared required fields are reset too and are
// expected to be rejected by validation afterwards.
func (u BoxUpdate) Apply(b Box) Box {
	b.Name = u.Name.ApplyTo(b.Name)
	b.Description = u.Description.ApplyTo(b.Description)
	b.Location = u.Location.ApplyTo(b.Location)
	b.Category = u.Category.ApplyTo(b.Category)
	b.Color = u.Color.ApplyTo(b.Color)
	return b
}
