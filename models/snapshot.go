// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Snapshot is the persisted form of the whole inventory:
//
//	{ "boxes": [ ... ], "items": [ ... ] }
type Snapshot struct {
	Boxes []Box  `json:"boxes"`
	Items []Item `json:"items"`
}
