// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package inventory keeps the household inventory: boxes, the items inside
// them and the derived views over both. [Store] is the in-process
// implementation; the terminal UI and the HTTP API consume it through the
// [Inventory] interface, which the REST adapter satisfies as well.
package inventory

import (
	"context"

	"github.com/MKhiriev/go-box-keeper/models"
)

// Inventory is the contract shared by the local store and the REST adapter.
type Inventory interface {
	BoxService
	ItemService
	ViewService
}

// BoxService groups box operations.
type BoxService interface {
	// AddBox creates a box and assigns its id, code and timestamps.
	AddBox(ctx context.Context, box models.NewBox) (models.Box, error)

	// UpdateBox merges the set fields of update into the box.
	UpdateBox(ctx context.Context, id string, update models.BoxUpdate) (models.Box, error)

	// DeleteBox removes the box together with every item inside it.
	DeleteBox(ctx context.Context, id string) error

	GetBoxByID(ctx context.Context, id string) (models.Box, error)

	// GetBoxByQrID resolves a scanned code. The code matches a box's
	// qrCodeId ignoring case, or its id exactly.
	GetBoxByQrID(ctx context.Context, code string) (models.Box, error)

	// Boxes lists every box in creation order.
	Boxes(ctx context.Context) ([]models.Box, error)
}

// ItemService groups item operations.
type ItemService interface {
	// AddItem creates an item inside an existing box.
	AddItem(ctx context.Context, item models.NewItem) (models.Item, error)

	UpdateItem(ctx context.Context, id string, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, id string) error
	GetItemByID(ctx context.Context, id string) (models.Item, error)

	// GetItemsByBoxID lists the items of a box in creation order. An unknown
	// box has no items.
	GetItemsByBoxID(ctx context.Context, boxID string) ([]models.Item, error)

	// Items lists every item in creation order.
	Items(ctx context.Context) ([]models.Item, error)
}

// ViewService groups the derived read-only queries.
type ViewService interface {
	// GetItemCount returns the number of item records in a box.
	GetItemCount(ctx context.Context, boxID string) (int, error)

	// GetBoxItemQuantity returns the sum of item quantities in a box.
	GetBoxItemQuantity(ctx context.Context, boxID string) (int, error)

	// GetTotalItemCount returns the sum of quantities across all items.
	GetTotalItemCount(ctx context.Context) (int, error)

	Search(ctx context.Context, query string) (models.SearchResult, error)
	Stats(ctx context.Context) (models.Stats, error)
}
