// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inventory

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/models"
)

func (s *Store) AddItem(ctx context.Context, newItem models.NewItem) (models.Item, error) {
	if err := s.validator.Validate(ctx, newItem); err != nil {
		return models.Item{}, fmt.Errorf("add item: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.boxIndex(newItem.BoxID) < 0 {
		return models.Item{}, fmt.Errorf("add item to box %q: %w", newItem.BoxID, ErrBoxNotFound)
	}
	if s.maxItemsPerBox > 0 && s.countItems(newItem.BoxID) >= s.maxItemsPerBox {
		return models.Item{}, fmt.Errorf("%w: box %q holds the limit of %d items",
			ErrItemCapacityExceeded, newItem.BoxID, s.maxItemsPerBox)
	}

	id, err := s.newID(func(id string) bool { return s.itemIndex(id) >= 0 })
	if err != nil {
		return models.Item{}, fmt.Errorf("add item: %w", err)
	}

	now := s.now().UTC()
	item := models.Item{
		ID:           id,
		BoxID:        newItem.BoxID,
		Name:         newItem.Name,
		Quantity:     newItem.Quantity,
		QuantityUnit: newItem.QuantityUnit,
		Description:  newItem.Description,
		PhotoURI:     newItem.PhotoURI,
		Value:        newItem.Value,
		CreatedAt:    now,
		UpdatedAt:    now,
	}.Clone()
	s.items = append(s.items, item)
	s.touchBox(item.BoxID)
	s.persist(ctx)

	logger.FromContextOr(ctx, s.logger).Debug().Str("func", "Store.AddItem").
		Str("item_id", item.ID).Str("box_id", item.BoxID).Msg("item added")
	return item.Clone(), nil
}

func (s *Store) UpdateItem(ctx context.Context, id string, update models.ItemUpdate) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return models.Item{}, fmt.Errorf("update item %q: %w", id, ErrItemNotFound)
	}

	updated := update.Apply(s.items[i].Clone())
	if err := s.validator.Validate(ctx, updated); err != nil {
		return models.Item{}, fmt.Errorf("update item %q: %w", id, err)
	}
	updated.UpdatedAt = s.stamp(s.items[i].UpdatedAt)

	s.items[i] = updated
	s.touchBox(updated.BoxID)
	s.persist(ctx)

	logger.FromContextOr(ctx, s.logger).Debug().Str("func", "Store.UpdateItem").
		Str("item_id", id).Msg("item updated")
	return updated.Clone(), nil
}

func (s *Store) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return fmt.Errorf("delete item %q: %w", id, ErrItemNotFound)
	}

	boxID := s.items[i].BoxID
	s.items = slices.Delete(s.items, i, i+1)
	s.touchBox(boxID)
	s.persist(ctx)

	logger.FromContextOr(ctx, s.logger).Debug().Str("func", "Store.DeleteItem").
		Str("item_id", id).Str("box_id", boxID).Msg("item deleted")
	return nil
}

func (s *Store) GetItemByID(ctx context.Context, id string) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.itemIndex(id)
	if i < 0 {
		return models.Item{}, fmt.Errorf("get item %q: %w", id, ErrItemNotFound)
	}
	return s.items[i].Clone(), nil
}

func (s *Store) GetItemsByBoxID(ctx context.Context, boxID string) ([]models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Item, 0)
	for _, it := range s.items {
		if it.BoxID == boxID {
			items = append(items, it.Clone())
		}
	}
	return items, nil
}

func (s *Store) Items(ctx context.Context) ([]models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneItems(s.items), nil
}

func (s *Store) countItems(boxID string) int {
	n := 0
	for _, it := range s.items {
		if it.BoxID == boxID {
			n++
		}
	}
	return n
}
