// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inventory

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-box-keeper/models"
)

// Aggregates are recomputed from the live collections on every call.

func (s *Store) GetItemCount(ctx context.Context, boxID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.countItems(boxID), nil
}

func (s *Store) GetBoxItemQuantity(ctx context.Context, boxID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sumQuantity(boxID), nil
}

func (s *Store) GetTotalItemCount(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total, nil
}

// Search matches query case-insensitively as a substring. Items match on
// name or description; boxes match on name, location or category, and a box
// also matches when any of its items does. An empty query matches nothing.
// Both result lists keep creation order.
func (s *Store) Search(ctx context.Context, query string) (models.SearchResult, error) {
	result := models.SearchResult{Boxes: []models.Box{}, Items: []models.Item{}}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return result, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	owners := make(map[string]struct{})
	for _, it := range s.items {
		if contains(it.Name, q) || contains(it.Description, q) {
			result.Items = append(result.Items, it.Clone())
			owners[it.BoxID] = struct{}{}
		}
	}

	for _, b := range s.boxes {
		_, owner := owners[b.ID]
		if owner || contains(b.Name, q) || contains(b.Location, q) || contains(string(b.Category), q) {
			result.Boxes = append(result.Boxes, b)
		}
	}

	return result, nil
}

func (s *Store) Stats(ctx context.Context) (models.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.Stats{
		TotalBoxes: len(s.boxes),
		Boxes:      make([]models.BoxStats, 0, len(s.boxes)),
	}
	for _, b := range s.boxes {
		quantity := s.sumQuantity(b.ID)
		stats.TotalItems += quantity
		stats.Boxes = append(stats.Boxes, models.BoxStats{
			BoxID:     b.ID,
			Name:      b.Name,
			ItemCount: s.countItems(b.ID),
			Quantity:  quantity,
		})
	}
	return stats, nil
}

func (s *Store) sumQuantity(boxID string) int {
	total := 0
	for _, it := range s.items {
		if it.BoxID == boxID {
			total += it.Quantity
		}
	}
	return total
}

// contains reports whether the lower-cased field contains q, which must
// already be lower-case.
func contains(field, q string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), q)
}
