// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-box-keeper/internal/inventory"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/rs/zerolog"
)

// InventoryLoggingService records every call to the wrapped inventory with
// its duration and outcome. Mutations are logged at info level, reads at
// debug level, failures at warn level.
type InventoryLoggingService struct {
	inner  inventory.Inventory
	logger *logger.Logger
}

func NewInventoryLoggingService(logger *logger.Logger) InventoryWrapper {
	return &InventoryLoggingService{logger: logger}
}

func (s *InventoryLoggingService) Wrap(inner inventory.Inventory) inventory.Inventory {
	s.inner = inner
	return s
}

func (s *InventoryLoggingService) AddBox(ctx context.Context, box models.NewBox) (result models.Box, err error) {
	defer s.observe(ctx, "AddBox", true, time.Now(), &err)
	return s.inner.AddBox(ctx, box)
}

func (s *InventoryLoggingService) UpdateBox(ctx context.Context, id string, update models.BoxUpdate) (result models.Box, err error) {
	defer s.observe(ctx, "UpdateBox", true, time.Now(), &err)
	return s.inner.UpdateBox(ctx, id, update)
}

func (s *InventoryLoggingService) DeleteBox(ctx context.Context, id string) (err error) {
	defer s.observe(ctx, "DeleteBox", true, time.Now(), &err)
	return s.inner.DeleteBox(ctx, id)
}

func (s *InventoryLoggingService) GetBoxByID(ctx context.Context, id string) (result models.Box, err error) {
	defer s.observe(ctx, "GetBoxByID", false, time.Now(), &err)
	return s.inner.GetBoxByID(ctx, id)
}

func (s *InventoryLoggingService) GetBoxByQrID(ctx context.Context, code string) (result models.Box, err error) {
	defer s.observe(ctx, "GetBoxByQrID", false, time.Now(), &err)
	return s.inner.GetBoxByQrID(ctx, code)
}

func (s *InventoryLoggingService) Boxes(ctx context.Context) (result []models.Box, err error) {
	defer s.observe(ctx, "Boxes", false, time.Now(), &err)
	return s.inner.Boxes(ctx)
}

func (s *InventoryLoggingService) AddItem(ctx context.Context, item models.NewItem) (result models.Item, err error) {
	defer s.observe(ctx, "AddItem", true, time.Now(), &err)
	return s.inner.AddItem(ctx, item)
}

func (s *InventoryLoggingService) UpdateItem(ctx context.Context, id string, update models.ItemUpdate) (result models.Item, err error) {
	defer s.observe(ctx, "UpdateItem", true, time.Now(), &err)
	return s.inner.UpdateItem(ctx, id, update)
}

func (s *InventoryLoggingService) DeleteItem(ctx context.Context, id string) (err error) {
	defer s.observe(ctx, "DeleteItem", true, time.Now(), &err)
	return s.inner.DeleteItem(ctx, id)
}

func (s *InventoryLoggingService) GetItemByID(ctx context.Context, id string) (result models.Item, err error) {
	defer s.observe(ctx, "GetItemByID", false, time.Now(), &err)
	return s.inner.GetItemByID(ctx, id)
}

func (s *InventoryLoggingService) GetItemsByBoxID(ctx context.Context, boxID string) (result []models.Item, err error) {
	defer s.observe(ctx, "GetItemsByBoxID", false, time.Now(), &err)
	return s.inner.GetItemsByBoxID(ctx, boxID)
}

func (s *InventoryLoggingService) Items(ctx context.Context) (result []models.Item, err error) {
	defer s.observe(ctx, "Items", false, time.Now(), &err)
	return s.inner.Items(ctx)
}

func (s *InventoryLoggingService) GetItemCount(ctx context.Context, boxID string) (result int, err error) {
	defer s.observe(ctx, "GetItemCount", false, time.Now(), &err)
	return s.inner.GetItemCount(ctx, boxID)
}

func (s *InventoryLoggingService) GetBoxItemQuantity(ctx context.Context, boxID string) (result int, err error) {
	defer s.observe(ctx, "GetBoxItemQuantity", false, time.Now(), &err)
	return s.inner.GetBoxItemQuantity(ctx, boxID)
}

func (s *InventoryLoggingService) GetTotalItemCount(ctx context.Context) (result int, err error) {
	defer s.observe(ctx, "GetTotalItemCount", false, time.Now(), &err)
	return s.inner.GetTotalItemCount(ctx)
}

func (s *InventoryLoggingService) Search(ctx context.Context, query string) (result models.SearchResult, err error) {
	defer s.observe(ctx, "Search", false, time.Now(), &err)
	return s.inner.Search(ctx, query)
}

func (s *InventoryLoggingService) Stats(ctx context.Context) (result models.Stats, err error) {
	defer s.observe(ctx, "Stats", false, time.Now(), &err)
	return s.inner.Stats(ctx)
}

func (s *InventoryLoggingService) observe(ctx context.Context, op string, mutation bool, start time.Time, err *error) {
	log := logger.FromContextOr(ctx, s.logger)

	var event *zerolog.Event
	switch {
	case *err != nil:
		event = log.Warn().Err(*err)
	case mutation:
		event = log.Info()
	default:
		event = log.Debug()
	}

	event.Str("func", "Inventory."+op).Dur("duration", time.Since(start)).Msg("inventory call")
}
