// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) currentItem() (models.Item, bool) {
	if len(m.items) == 0 || m.itemIdx < 0 || m.itemIdx >= len(m.items) {
		return models.Item{}, false
	}
	return m.items[m.itemIdx], true
}

func (m model) updateBox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	it, ok := m.currentItem()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.screen = screenBoxes
		return m, m.cmdLoadBoxes()
	case key.Matches(msg, keys.up):
		if m.itemIdx > 0 {
			m.itemIdx--
		}
	case key.Matches(msg, keys.down):
		if m.itemIdx < len(m.items)-1 {
			m.itemIdx++
		}
	case key.Matches(msg, keys.newItem):
		return m.openForm(newItemForm(m.box.ID, nil))
	case key.Matches(msg, keys.edit), key.Matches(msg, keys.enter):
		if ok {
			return m.openForm(newItemForm(m.box.ID, &it))
		}
	case key.Matches(msg, keys.editBox):
		box := m.box
		return m.openForm(newBoxForm(&box))
	case key.Matches(msg, keys.delete):
		if ok {
			m.confirm = &deleteTarget{kind: targetItem, id: it.ID, name: it.Name}
		}
	case key.Matches(msg, keys.copy):
		return m.copyQRCode(m.box)
	}

	return m, nil
}

func (m model) viewBox() string {
	var b strings.Builder
	box := m.box

	fmt.Fprintf(&b, "Code:        %s\n", box.QRCodeID)
	fmt.Fprintf(&b, "Location:    %s\n", valueOrDash(box.Location))
	fmt.Fprintf(&b, "Category:    %s\n", box.Category)
	fmt.Fprintf(&b, "Color:       %s %s\n", swatch(box.Color.Swatch().String()), box.Color)
	fmt.Fprintf(&b, "Description: %s\n", valueOrDash(box.Description))
	fmt.Fprintf(&b, "Updated:     %s\n", box.UpdatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "\n%d %s, %d in total\n\n", len(m.items), plural(len(m.items), "item", "items"), m.quantity)

	if len(m.items) == 0 {
		b.WriteString("Empty box. Press a to add an item.\n")
	}
	for i, it := range m.items {
		qty := fmt.Sprintf("×%d", it.Quantity)
		if it.QuantityUnit != "" {
			qty += " " + it.QuantityUnit
		}
		line := fmt.Sprintf("%s%-28s %-12s %s", cursor(i == m.itemIdx), fitText(it.Name, 28), qty, decimalOrDash(it.Value))
		if i == m.itemIdx {
			line = selectedStyle.Render(line)
			if it.Description != "" {
				line += "\n    " + helpStyle.Render(fitText(it.Description, 60))
			}
		}
		b.WriteString(line + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("BOX "+strings.ToUpper(box.Name), b.String(),
		"a: add item  e/enter: edit item  d: delete item  b: edit box  c: copy code  esc: back")
}
