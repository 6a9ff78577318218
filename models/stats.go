// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Stats summarises the inventory.
type Stats struct {
	// TotalBoxes is the number of boxes.
	TotalBoxes int `json:"totalBoxes"`

	// TotalItems is the sum of item quantities across all boxes.
	TotalItems int `json:"totalItems"`

	// Boxes holds one entry per box, in box creation order.
	Boxes []BoxStats `json:"boxes"`
}

// BoxStats summarises a single box.
type BoxStats struct {
	BoxID     string `json:"boxId"`
	Name      string `json:"name"`
	ItemCount int    `json:"itemCount"`
	Quantity  int    `json:"quantity"`
}
