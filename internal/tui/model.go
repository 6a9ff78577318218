// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-box-keeper/internal/app"
	"github.com/MKhiriev/go-box-keeper/internal/inventory"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenBoxes screen = iota
	screenBox
	screenForm
	screenSearch
	screenScan
	screenStats
	screenBuildInfo
)

type targetKind int

const (
	targetBox targetKind = iota
	targetItem
)

type deleteTarget struct {
	kind targetKind
	id   string
	name string
}

// model is the whole terminal application. Screens share one model so that
// navigating back keeps the list position.
type model struct {
	ctx            context.Context
	inv            inventory.Inventory
	buildInfo      models.AppBuildInfo
	deepLinkScheme string
	copyText       func(string) error
	logger         *logger.Logger

	screen screen
	back   screen

	boxes   []models.Box
	counts  map[string]int
	boxIdx  int
	loading bool

	box      models.Box
	items    []models.Item
	quantity int
	itemIdx  int

	form formModel

	query     textinput.Model
	searched  string
	result    models.SearchResult
	resultIdx int

	code textinput.Model

	stats models.Stats

	confirm *deleteTarget
	errMsg  string
	status  string
}

func newModel(ctx context.Context, inv inventory.Inventory, buildInfo models.AppBuildInfo, deepLinkScheme string,
	copyText func(string) error, logger *logger.Logger) model {
	return model{
		ctx:            ctx,
		inv:            inv,
		buildInfo:      buildInfo,
		deepLinkScheme: deepLinkScheme,
		copyText:       copyText,
		logger:         logger,
		loading:        true,
		counts:         map[string]int{},
	}
}

func (m model) Init() tea.Cmd {
	return m.cmdLoadBoxes()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boxesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.boxes, m.counts = msg.boxes, msg.counts
		m.boxIdx = clamp(m.boxIdx, len(m.boxes))
		return m, nil

	case boxLoadedMsg:
		if msg.err != nil {
			m = m.fail(msg.err)
			if errors.Is(msg.err, inventory.ErrBoxNotFound) && m.screen == screenBox {
				m.screen = screenBoxes
				return m, m.cmdLoadBoxes()
			}
			return m, nil
		}
		if msg.box.ID != m.box.ID {
			m.itemIdx = 0
		}
		m.box, m.items, m.quantity = msg.box, msg.items, msg.quantity
		m.itemIdx = clamp(m.itemIdx, len(m.items))
		m.screen = screenBox
		return m, nil

	case boxSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.err = app.UserMessage(msg.err)
			m.logError(msg.err)
			return m, nil
		}
		m.status = "Box saved"
		return m, m.cmdLoadBox(msg.box.ID)

	case itemSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.err = app.UserMessage(msg.err)
			m.logError(msg.err)
			return m, nil
		}
		m.status = "Item saved"
		return m, m.cmdLoadBox(msg.item.BoxID)

	case deletedMsg:
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.status = "Deleted \"" + msg.target.name + "\""
		if msg.target.kind == targetBox {
			m.screen = screenBoxes
			return m, m.cmdLoadBoxes()
		}
		return m, m.cmdLoadBox(m.box.ID)

	case searchDoneMsg:
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.searched, m.result, m.resultIdx = msg.query, msg.result, 0
		return m, nil

	case scanDoneMsg:
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		return m, m.cmdLoadBox(msg.box.ID)

	case statsLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.stats = msg.stats
		m.back, m.screen = m.screen, screenStats
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.errMsg != "" {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.errMsg = ""
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			target := *m.confirm
			m.confirm = nil
			return m, m.cmdDelete(target)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	switch m.screen {
	case screenBoxes:
		return m.updateBoxes(msg)
	case screenBox:
		return m.updateBox(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenSearch:
		return m.updateSearch(msg)
	case screenScan:
		return m.updateScan(msg)
	case screenStats, screenBuildInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.quit) {
			m.screen = m.back
		}
		return m, nil
	}

	return m, nil
}

// updateInputs forwards non-key messages, such as cursor blinks, to the
// focused input.
func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenForm:
		m.form, cmd = m.form.update(msg)
	case screenSearch:
		m.query, cmd = m.query.Update(msg)
	case screenScan:
		m.code, cmd = m.code.Update(msg)
	}
	return m, cmd
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = m.back
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m model) submitForm() (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.form.kind {
	case formNewBox:
		cmd = m.cmdAddBox(m.form.newBox())
	case formEditBox:
		cmd = m.cmdUpdateBox(m.form.targetID, m.form.boxUpdate())
	case formNewItem:
		ni, err := m.form.newItem()
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		cmd = m.cmdAddItem(ni)
	case formEditItem:
		u, err := m.form.itemUpdate()
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		cmd = m.cmdUpdateItem(m.form.targetID, u)
	}

	m.form.err = ""
	m.form.submitting = true
	return m, cmd
}

func (m model) openForm(f formModel) (tea.Model, tea.Cmd) {
	m.form = f
	m.back, m.screen = m.screen, screenForm
	cmd := m.form.focusFirst()
	return m, cmd
}

func (m model) copyQRCode(b models.Box) (tea.Model, tea.Cmd) {
	if b.QRCodeID == "" {
		m.status = app.MsgNothingToCopy
		return m, nil
	}
	if err := m.copyText(b.QRCodeID); err != nil {
		m.logError(err)
		m.errMsg = "copy failed: " + err.Error()
		return m, nil
	}
	m.status = "Copied " + b.QRCodeID
	return m, clearStatusAfter(statusTTL)
}

func (m model) fail(err error) model {
	m.logError(err)
	m.errMsg = app.UserMessage(err)
	return m
}

func (m model) logError(err error) {
	m.logger.Err(err).Str("func", "tui.model").Msg("inventory operation failed")
}

func (m model) View() string {
	if m.errMsg != "" {
		return appStyle.Render(errorOverlayModel{message: m.errMsg}.View())
	}
	if m.confirm != nil {
		return appStyle.Render(confirmModel{message: m.confirm.name}.View())
	}

	var page string
	switch m.screen {
	case screenBoxes:
		page = m.viewBoxes()
	case screenBox:
		page = m.viewBox()
	case screenForm:
		page = m.form.view()
	case screenSearch:
		page = m.viewSearch()
	case screenScan:
		page = m.viewScan()
	case screenStats:
		page = m.viewStats()
	case screenBuildInfo:
		page = renderBuildInfoWindow(m.buildInfo)
	}
	return appStyle.Render(page)
}

func clamp(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	return max(idx, 0)
}
