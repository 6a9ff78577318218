// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formKind int

const (
	formNewBox formKind = iota
	formEditBox
	formNewItem
	formEditItem
)

// field is either a text input or, when options is set, a choice cycled
// with left and right.
type field struct {
	label   string
	input   textinput.Model
	options []string
	choice  int
}

func newTextField(label, value, placeholder string) field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 40
	in.SetValue(value)
	in.CursorEnd()
	return field{label: label, input: in}
}

// newChoiceField preselects current. A value outside options is appended so
// that editing never rewrites it silently.
func newChoiceField(label string, options []string, current string) field {
	idx := slices.Index(options, current)
	if idx < 0 && current != "" {
		options = append(slices.Clone(options), current)
		idx = len(options) - 1
	}
	return field{label: label, options: options, choice: max(idx, 0)}
}

func (f field) isChoice() bool {
	return len(f.options) > 0
}

func (f field) value() string {
	if f.isChoice() {
		return f.options[f.choice]
	}
	return strings.TrimSpace(f.input.Value())
}

type formModel struct {
	kind  formKind
	title string

	// targetID is the edited box or item, or the owning box of a new item.
	targetID string

	fields     []field
	focus      int
	err        string
	submitting bool
}

func (f *formModel) focusFirst() tea.Cmd {
	f.focus = 0
	return f.fields[0].input.Focus()
}

func (f *formModel) move(delta int) tea.Cmd {
	n := len(f.fields)
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + n) % n
	if f.fields[f.focus].isChoice() {
		return nil
	}
	return f.fields[f.focus].input.Focus()
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	cur := &f.fields[f.focus]

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.nextField):
			cmd := f.move(1)
			return f, cmd
		case key.Matches(k, keys.prevField):
			cmd := f.move(-1)
			return f, cmd
		case cur.isChoice() && key.Matches(k, keys.left):
			cur.choice = (cur.choice - 1 + len(cur.options)) % len(cur.options)
			return f, nil
		case cur.isChoice() && key.Matches(k, keys.right):
			cur.choice = (cur.choice + 1) % len(cur.options)
			return f, nil
		}
	}

	if cur.isChoice() {
		return f, nil
	}

	var cmd tea.Cmd
	cur.input, cmd = cur.input.Update(msg)
	return f, cmd
}

func (f formModel) view() string {
	var b strings.Builder

	for i, fl := range f.fields {
		b.WriteString(cursor(i == f.focus))
		b.WriteString(fmt.Sprintf("%-12s ", fl.label))
		if fl.isChoice() {
			b.WriteString("‹ " + fl.value() + " ›")
		} else {
			b.WriteString(fl.input.View())
		}
		b.WriteString("\n")
	}

	if f.submitting {
		b.WriteString("\nSaving...\n")
	}
	if f.err != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+f.err) + "\n")
	}

	return renderPage(f.title, b.String(), "tab/shift+tab: field  ←/→: choose  enter: save  esc: cancel")
}
