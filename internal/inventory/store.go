// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/store"
	"github.com/MKhiriev/go-box-keeper/internal/utils"
	"github.com/MKhiriev/go-box-keeper/internal/validators"
	"github.com/MKhiriev/go-box-keeper/internal/workers"
	"github.com/MKhiriev/go-box-keeper/models"
)

// maxIDAttempts bounds the redraws when a generated id or its derived code
// is already taken.
const maxIDAttempts = 16

// Store is the in-memory inventory backed by one durable slot.
//
// Every mutation runs under a single write lock: it validates, applies the
// change, encodes the whole snapshot and hands it to a background
// [workers.SnapshotWriter]. Callers never wait for the durable write; use
// Flush to do so. Reads take the read lock and return copies.
type Store struct {
	mu    sync.RWMutex
	boxes []models.Box
	items []models.Item

	slotKey string
	slots   store.SlotStorage
	writer  *workers.SnapshotWriter
	closed  bool

	validator      validators.Validator
	ids            utils.IDGenerator
	now            func() time.Time
	maxBoxes       int
	maxItemsPerBox int

	logger *logger.Logger
}

var _ Inventory = (*Store)(nil)

// New loads the snapshot stored under slotKey and starts the background
// writer. An absent slot yields an empty inventory. An unreadable or
// malformed slot is logged and also yields an empty inventory: startup never
// fails because of the slot contents.
func New(ctx context.Context, slots store.SlotStorage, slotKey string, log *logger.Logger, opts ...Option) (*Store, error) {
	if slotKey == "" {
		return nil, ErrMissingSlotKey
	}

	s := &Store{
		boxes:     []models.Box{},
		items:     []models.Item{},
		slotKey:   slotKey,
		slots:     slots,
		validator: validators.NewInventoryValidator(1),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    log,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.load(ctx)

	s.writer = workers.NewSnapshotWriter(s.save, log)
	s.writer.Start(context.WithoutCancel(ctx))

	return s, nil
}

// Flush blocks until every snapshot submitted so far is durably written or
// ctx is done.
func (s *Store) Flush(ctx context.Context) error {
	return s.writer.Flush(ctx)
}

// Close flushes pending writes, stops the writer and closes the slot. Later
// mutations still change the in-memory state but are no longer persisted.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	flushErr := s.writer.Flush(ctx)
	s.writer.Stop()

	if err := s.slots.Close(); err != nil {
		return errors.Join(flushErr, fmt.Errorf("close slot storage: %w", err))
	}
	return flushErr
}

// load reads the slot into s. It must be called with s.mu held or before the
// store is shared.
func (s *Store) load(ctx context.Context) {
	log := logger.FromContextOr(ctx, s.logger)

	payload, err := s.slots.Load(ctx, s.slotKey)
	if errors.Is(err, store.ErrSlotNotFound) {
		log.Info().Str("func", "Store.load").Str("slot", s.slotKey).Msg("no stored inventory, starting empty")
		return
	}
	if err != nil {
		log.Err(fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)).Str("func", "Store.load").
			Str("slot", s.slotKey).Msg("failed to read stored inventory, starting empty")
		return
	}

	var snapshot models.Snapshot
	if err = json.Unmarshal(payload, &snapshot); err != nil {
		log.Err(fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)).Str("func", "Store.load").
			Str("slot", s.slotKey).Msg("stored inventory is malformed, starting empty")
		return
	}

	if snapshot.Boxes != nil {
		s.boxes = snapshot.Boxes
	}
	if snapshot.Items != nil {
		s.items = snapshot.Items
	}

	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(it models.Item) bool {
		return s.boxIndex(it.BoxID) < 0
	})
	if dropped := before - len(s.items); dropped > 0 {
		log.Warn().Str("func", "Store.load").Int("dropped", dropped).Msg("dropped items of unknown boxes")
	}

	log.Info().Str("func", "Store.load").Int("boxes", len(s.boxes)).Int("items", len(s.items)).
		Msg("inventory loaded")
}

// persist encodes the current state and submits it to the writer. It must be
// called with s.mu held so snapshots are submitted in mutation order.
func (s *Store) persist(ctx context.Context) {
	log := logger.FromContextOr(ctx, s.logger)
	if s.closed {
		log.Warn().Str("func", "Store.persist").Msg("store is closed, change kept in memory only")
		return
	}

	payload, err := json.Marshal(models.Snapshot{Boxes: s.boxes, Items: s.items})
	if err != nil {
		log.Err(fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)).Str("func", "Store.persist").
			Msg("failed to encode inventory snapshot")
		return
	}

	s.writer.Submit(payload)
}

func (s *Store) save(ctx context.Context, payload []byte) error {
	if err := s.slots.Save(ctx, s.slotKey, payload); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}
	return nil
}

// stamp returns the current UTC time, strictly after prev.
func (s *Store) stamp(prev time.Time) time.Time {
	now := s.now().UTC()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}

// newID draws an id accepted by taken. It gives up after maxIDAttempts.
func (s *Store) newID(taken func(id string) bool) (string, error) {
	for range maxIDAttempts {
		id := s.ids.Generate()
		if id != "" && !taken(id) {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

func (s *Store) boxIndex(id string) int {
	return slices.IndexFunc(s.boxes, func(b models.Box) bool { return b.ID == id })
}

func (s *Store) itemIndex(id string) int {
	return slices.IndexFunc(s.items, func(it models.Item) bool { return it.ID == id })
}

// touchBox advances the updatedAt of the box with the given id, if any.
func (s *Store) touchBox(id string) {
	if i := s.boxIndex(id); i >= 0 {
		s.boxes[i].UpdatedAt = s.stamp(s.boxes[i].UpdatedAt)
	}
}

func cloneItems(items []models.Item) []models.Item {
	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		out = append(out, it.Clone())
	}
	return out
}
