// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

type memorySlotStorage struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemorySlotStorage returns a [SlotStorage] that lives only as long as
// the process.
func NewMemorySlotStorage() SlotStorage {
	return &memorySlotStorage{slots: make(map[string][]byte)}
}

func (m *memorySlotStorage) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payload, ok := m.slots[key]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return append([]byte(nil), payload...), nil
}

func (m *memorySlotStorage) Save(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[key] = append([]byte(nil), payload...)
	return nil
}

func (m *memorySlotStorage) Close() error {
	return nil
}
