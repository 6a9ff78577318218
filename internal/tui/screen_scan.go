// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// openScan shows an input for a code decoded by an external scanner. Both
// printed codes and deep links are accepted.
func (m model) openScan() (tea.Model, tea.Cmd) {
	in := textinput.New()
	in.Placeholder = "BOX-1A2B3C4D or " + m.deepLinkScheme + "://box/..."
	in.Width = 54

	m.code = in
	m.back, m.screen = m.screen, screenScan
	cmd := m.code.Focus()
	return m, cmd
}

func (m model) updateScan(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = m.back
		return m, nil
	case key.Matches(msg, keys.enter):
		code := strings.TrimSpace(m.code.Value())
		if code == "" {
			return m, nil
		}
		return m, m.cmdScan(code)
	}

	var cmd tea.Cmd
	m.code, cmd = m.code.Update(msg)
	return m, cmd
}

func (m model) viewScan() string {
	return renderPage("SCAN", "Type or paste the scanned code:\n\n"+m.code.View(), "enter: open box  esc: back")
}
