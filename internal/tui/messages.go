// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-box-keeper/models"

type boxesLoadedMsg struct {
	boxes  []models.Box
	counts map[string]int
	err    error
}

type boxLoadedMsg struct {
	box      models.Box
	items    []models.Item
	quantity int
	err      error
}

type boxSavedMsg struct {
	box models.Box
	err error
}

type itemSavedMsg struct {
	item models.Item
	err  error
}

type deletedMsg struct {
	target deleteTarget
	err    error
}

type searchDoneMsg struct {
	query  string
	result models.SearchResult
	err    error
}

type scanDoneMsg struct {
	box models.Box
	err error
}

type statsLoadedMsg struct {
	stats models.Stats
	err   error
}

type clearStatusMsg struct{}
