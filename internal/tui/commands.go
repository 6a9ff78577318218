// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-box-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// cmdLoadBoxes loads every box together with its item count.
func (m model) cmdLoadBoxes() tea.Cmd {
	ctx, inv := m.ctx, m.inv
	return func() tea.Msg {
		boxes, err := inv.Boxes(ctx)
		if err != nil {
			return boxesLoadedMsg{err: err}
		}

		counts := make(map[string]int, len(boxes))
		for _, b := range boxes {
			n, err := inv.GetItemCount(ctx, b.ID)
			if err != nil {
				return boxesLoadedMsg{err: err}
			}
			counts[b.ID] = n
		}

		return boxesLoadedMsg{boxes: boxes, counts: counts}
	}
}

func (m model) cmdLoadBox(id string) tea.Cmd {
	ctx, inv := m.ctx, m.inv
	return func() tea.Msg {
		box, err := inv.GetBoxByID(ctx, id)
		if err != nil {
			return boxLoadedMsg{err: err}
		}
		items, err := inv.GetItemsByBoxID(ctx, id)
		if err != nil {
			return boxLoadedMsg{err: err}
		}
		quantity, err := inv.GetBoxItemQuantity(ctx, id)
		if err != nil {
			return boxLoadedMsg{err: err}
		}
		return boxLoadedMsg{box: box, items: items, quantity: quantity}
	}
}

func (m model) cmdAddBox(nb models.NewBox) tea.Cmd {
	ctx, inv := m.ctx, m.inv
	return func() tea.Msg {
		box, err := inv.AddBox(ctx, nb)
		return boxSavedMsg{box: box, err: err}
	}
}

func (m model) cmdUpdateBox(id string, update models.BoxUpdate) tea.Cmd {
	ctx, inv := m.ctx, m.inv
	return func() tea.Msg {
		box, err := inv.UpdateBox(ctx, id, update)
		return boxSavedMsg{box: box, err: err}
	}
}

func (m model) cmdAddItem(ni models.NewItem) tea.Cmd {
	ctx, inv := m.ctx, m.inv
	return func() tea.Msg {
		item, err := inv.AddItem(ctx, ni)
		return itemSavedMsg{item: item, err: err}
	}
}

func (m model) cmdUpdateItem(id string, update models.ItemUpdate) tea.Cmd {
	ctx, inv := m.ctx, m.inv
	return func() tea.Msg {
		item, err := inv.UpdateItem(ctx, id, update)
		return itemSavedMsg{item: item, err: err}
	}
}

func (m model) cmdDelete(target deleteTarget) tea.Cmd {
	ctx, inv := m.ctx, m.inv
	return func() tea.Msg {
		var err error
		if target.kind == targetBox {
			err = inv.DeleteBox(ctx, target.id)
		} else {
			err = inv.DeleteItem(ctx, target.id)
		}
		return deletedMsg{target: target, err: err}
	}
}

func (m model) cmdSearch(query string) tea.Cmd {
	ctx, inv := m.ctx, m.inv
	return func() tea.Msg {
		result, err := inv.Search(ctx, query)
		return searchDoneMsg{query: query, result: result, err: err}
	}
}

// cmdScan resolves a scanned or typed code. Deep links are reduced to the
// box id first.
func (m model) cmdScan(code string) tea.Cmd {
	ctx, inv, scheme := m.ctx, m.inv, m.deepLinkScheme
	return func() tea.Msg {
		box, err := inv.GetBoxByQrID(ctx, models.ParseDeepLink(scheme, code))
		return scanDoneMsg{box: box, err: err}
	}
}

func (m model) cmdLoadStats() tea.Cmd {
	ctx, inv := m.ctx, m.inv
	return func() tea.Msg {
		stats, err := inv.Stats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
