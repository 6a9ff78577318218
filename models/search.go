// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SearchResult is the outcome of a text search over the inventory.
// Items keep creation order. Boxes are deduplicated; their order carries no
// meaning.
type SearchResult struct {
	Boxes []Box  `json:"boxes"`
	Items []Item `json:"items"`
}

// IsEmpty reports whether nothing matched.
func (r SearchResult) IsEmpty() bool {
	return len(r.Boxes) == 0 && len(r.Items) == 0
}
