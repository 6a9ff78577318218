// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// BoxColor is a presentation swatch, stored as a hex color string.
type BoxColor string

const (
	ColorBlue   BoxColor = "#E8F4FD"
	ColorGreen  BoxColor = "#E6F7ED"
	ColorOrange BoxColor = "#FEF3E2"
	ColorPink   BoxColor = "#FCE8F0"
	ColorPurple BoxColor = "#F3E8FD"
	ColorGray   BoxColor = "#F0F0F2"
)

// FallbackColor is shown for any color outside [Colors], such as swatches
// saved by older versions of the app.
const FallbackColor = ColorGray

// Colors is the active swatch palette.
var Colors = []BoxColor{
	ColorBlue,
	ColorGreen,
	ColorOrange,
	ColorPink,
	ColorPurple,
	ColorGray,
}

// IsKnown reports whether c belongs to the active palette. The comparison
// ignores hex letter case.
func (c BoxColor) IsKnown() bool {
	for _, known := range Colors {
		if strings.EqualFold(string(c), string(known)) {
			return true
		}
	}
	return false
}

// Swatch returns the color consumers should render for c.
func (c BoxColor) Swatch() BoxColor {
	if c.IsKnown() {
		return c
	}
	return FallbackColor
}

func (c BoxColor) String() string {
	return string(c)
}
