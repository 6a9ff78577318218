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

func (m model) currentBox() (models.Box, bool) {
	if len(m.boxes) == 0 || m.boxIdx < 0 || m.boxIdx >= len(m.boxes) {
		return models.Box{}, false
	}
	return m.boxes[m.boxIdx], true
}

func (m model) updateBoxes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b, ok := m.currentBox()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.boxIdx > 0 {
			m.boxIdx--
		}
	case key.Matches(msg, keys.down):
		if m.boxIdx < len(m.boxes)-1 {
			m.boxIdx++
		}
	case key.Matches(msg, keys.enter):
		if ok {
			return m, m.cmdLoadBox(b.ID)
		}
	case key.Matches(msg, keys.newBox):
		return m.openForm(newBoxForm(nil))
	case key.Matches(msg, keys.edit):
		if ok {
			return m.openForm(newBoxForm(&b))
		}
	case key.Matches(msg, keys.delete):
		if ok {
			m.confirm = &deleteTarget{kind: targetBox, id: b.ID, name: b.Name}
		}
	case key.Matches(msg, keys.copy):
		if ok {
			return m.copyQRCode(b)
		}
	case key.Matches(msg, keys.search):
		return m.openSearch()
	case key.Matches(msg, keys.scan):
		return m.openScan()
	case key.Matches(msg, keys.stats):
		return m, m.cmdLoadStats()
	case key.Matches(msg, keys.version):
		m.back, m.screen = m.screen, screenBuildInfo
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.cmdLoadBoxes()
	}

	return m, nil
}

func (m model) viewBoxes() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.boxes) == 0:
		b.WriteString("No boxes yet. Press n to add one.\n")
	default:
		for i, box := range m.boxes {
			n := m.counts[box.ID]
			line := fmt.Sprintf("%s%s %-24s %-20s %-9s %3d %-5s %s",
				cursor(i == m.boxIdx),
				swatch(box.Color.Swatch().String()),
				fitText(box.Name, 24),
				fitText(box.Location, 20),
				box.Category,
				n, plural(n, "item", "items"),
				box.QRCodeID,
			)
			if i == m.boxIdx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("BOXES", b.String(),
		"enter: open  n: new  e: edit  d: delete  c: copy code  /: search  s: scan  t: stats  v: about  q: quit")
}
