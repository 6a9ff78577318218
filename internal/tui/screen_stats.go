// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
)

func (m model) viewStats() string {
	var b strings.Builder
	s := m.stats

	fmt.Fprintf(&b, "Boxes: %d\n", s.TotalBoxes)
	fmt.Fprintf(&b, "Items: %d\n\n", s.TotalItems)

	for _, bs := range s.Boxes {
		fmt.Fprintf(&b, "%-28s %3d %-5s %5d in total\n",
			fitText(bs.Name, 28), bs.ItemCount, plural(bs.ItemCount, "item", "items"), bs.Quantity)
	}

	return renderPage("STATISTICS", b.String(), "esc: back")
}
