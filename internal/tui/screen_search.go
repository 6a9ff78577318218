// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchEntry is one selectable search hit; items open their owning box.
type searchEntry struct {
	label string
	boxID string
}

func (m model) openSearch() (tea.Model, tea.Cmd) {
	in := textinput.New()
	in.Placeholder = "name, description or location"
	in.Width = 40

	m.query = in
	m.searched = ""
	m.result.Boxes, m.result.Items = nil, nil
	m.resultIdx = 0
	m.back, m.screen = m.screen, screenSearch
	cmd := m.query.Focus()
	return m, cmd
}

func (m model) searchEntries() []searchEntry {
	names := make(map[string]string, len(m.result.Boxes))
	out := make([]searchEntry, 0, len(m.result.Boxes)+len(m.result.Items))

	for _, b := range m.result.Boxes {
		names[b.ID] = b.Name
		out = append(out, searchEntry{label: "[box]  " + b.Name + " · " + b.Location, boxID: b.ID})
	}
	for _, it := range m.result.Items {
		label := fmt.Sprintf("[item] %s ×%d", it.Name, it.Quantity)
		if owner, ok := names[it.BoxID]; ok {
			label += " in " + owner
		}
		out = append(out, searchEntry{label: label, boxID: it.BoxID})
	}
	return out
}

// updateSearch runs a search on enter; once results for the typed query are
// shown, enter opens the selected hit instead.
func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.searchEntries()

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenBoxes
		return m, nil
	case key.Matches(msg, keys.prevField):
		if m.resultIdx > 0 {
			m.resultIdx--
		}
		return m, nil
	case key.Matches(msg, keys.nextField):
		if m.resultIdx < len(entries)-1 {
			m.resultIdx++
		}
		return m, nil
	case key.Matches(msg, keys.enter):
		q := strings.TrimSpace(m.query.Value())
		if q == m.searched && len(entries) > 0 {
			return m, m.cmdLoadBox(entries[m.resultIdx].boxID)
		}
		return m, m.cmdSearch(q)
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

func (m model) viewSearch() string {
	var b strings.Builder

	b.WriteString(m.query.View())
	b.WriteString("\n\n")

	entries := m.searchEntries()
	switch {
	case m.searched == "" && len(entries) == 0:
		b.WriteString("Type and press enter.\n")
	case len(entries) == 0:
		b.WriteString("Nothing found.\n")
	default:
		for i, e := range entries {
			line := cursor(i == m.resultIdx) + e.label
			if i == m.resultIdx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	return renderPage("SEARCH", b.String(), "enter: search / open  ↑/↓: select  esc: back")
}
