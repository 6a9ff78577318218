// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inventory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/models"
)

func (s *Store) AddBox(ctx context.Context, newBox models.NewBox) (models.Box, error) {
	if err := s.validator.Validate(ctx, newBox); err != nil {
		return models.Box{}, fmt.Errorf("add box: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxBoxes > 0 && len(s.boxes) >= s.maxBoxes {
		return models.Box{}, fmt.Errorf("%w: limit is %d boxes", ErrBoxCapacityExceeded, s.maxBoxes)
	}

	id, err := s.newID(func(id string) bool {
		return s.boxIndex(id) >= 0 || s.qrCodeIndex(models.QRCodeID(id)) >= 0
	})
	if err != nil {
		return models.Box{}, fmt.Errorf("add box: %w", err)
	}

	now := s.now().UTC()
	box := models.Box{
		ID:          id,
		Name:        newBox.Name,
		Description: newBox.Description,
		Location:    newBox.Location,
		Category:    newBox.Category,
		Color:       newBox.Color,
		QRCodeID:    models.QRCodeID(id),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.boxes = append(s.boxes, box)
	s.persist(ctx)

	logger.FromContextOr(ctx, s.logger).Debug().Str("func", "Store.AddBox").
		Str("box_id", box.ID).Str("qr_code_id", box.QRCodeID).Msg("box added")
	return box, nil
}

func (s *Store) UpdateBox(ctx context.Context, id string, update models.BoxUpdate) (models.Box, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.boxIndex(id)
	if i < 0 {
		return models.Box{}, fmt.Errorf("update box %q: %w", id, ErrBoxNotFound)
	}

	updated := update.Apply(s.boxes[i])
	if err := s.validator.Validate(ctx, updated); err != nil {
		return models.Box{}, fmt.Errorf("update box %q: %w", id, err)
	}
	updated.UpdatedAt = s.stamp(s.boxes[i].UpdatedAt)

	s.boxes[i] = updated
	s.persist(ctx)

	logger.FromContextOr(ctx, s.logger).Debug().Str("func", "Store.UpdateBox").
		Str("box_id", id).Msg("box updated")
	return updated, nil
}

func (s *Store) DeleteBox(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.boxIndex(id)
	if i < 0 {
		return fmt.Errorf("delete box %q: %w", id, ErrBoxNotFound)
	}

	s.boxes = slices.Delete(s.boxes, i, i+1)
	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(it models.Item) bool { return it.BoxID == id })
	s.persist(ctx)

	logger.FromContextOr(ctx, s.logger).Debug().Str("func", "Store.DeleteBox").
		Str("box_id", id).Int("items_removed", before-len(s.items)).Msg("box deleted")
	return nil
}

func (s *Store) GetBoxByID(ctx context.Context, id string) (models.Box, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.boxIndex(id)
	if i < 0 {
		return models.Box{}, fmt.Errorf("get box %q: %w", id, ErrBoxNotFound)
	}
	return s.boxes[i], nil
}

func (s *Store) GetBoxByQrID(ctx context.Context, code string) (models.Box, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if code != "" {
		for _, b := range s.boxes {
			if strings.EqualFold(b.QRCodeID, code) || b.ID == code {
				return b, nil
			}
		}
	}
	return models.Box{}, fmt.Errorf("scan code %q: %w", code, ErrBoxNotFound)
}

func (s *Store) Boxes(ctx context.Context) ([]models.Box, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.boxes), nil
}

func (s *Store) qrCodeIndex(code string) int {
	return slices.IndexFunc(s.boxes, func(b models.Box) bool { return strings.EqualFold(b.QRCodeID, code) })
}
