// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BoxCategory classifies a box.
type BoxCategory string

const (
	CategoryKitchen  BoxCategory = "Kitchen"
	CategorySeasonal BoxCategory = "Seasonal"
	CategoryClothing BoxCategory = "Clothing"
	CategoryTools    BoxCategory = "Tools"
	CategoryBooks    BoxCategory = "Books"
	CategoryToys     BoxCategory = "Toys"
	CategoryOther    BoxCategory = "Other"
)

// Categories lists every accepted category in display order.
var Categories = []BoxCategory{
	CategoryKitchen,
	CategorySeasonal,
	CategoryClothing,
	CategoryTools,
	CategoryBooks,
	CategoryToys,
	CategoryOther,
}

// IsValid reports whether c is one of [Categories].
func (c BoxCategory) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c BoxCategory) String() string {
	return string(c)
}
