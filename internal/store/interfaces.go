// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/slot_storage_mock.go -package=mock

// Package store holds the durable key-value slots the inventory snapshot is
// written to. Every backend stores an opaque payload under a string key and
// reports a missing key with [ErrSlotNotFound].
package store

import "context"

// SlotStorage is a durable key-value slot.
type SlotStorage interface {
	// Load returns the payload stored under key, or ErrSlotNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the payload stored under key.
	Save(ctx context.Context, key string, payload []byte) error

	// Close releases the underlying connection or file handles.
	Close() error
}

// ErrorClassificator interprets driver errors of one SQL dialect.
type ErrorClassificator interface {
	// Classify decides whether a failed operation may succeed if attempted
	// again.
	Classify(err error) ErrorClassification

	// IsMissingTable reports whether err means the slots table is absent.
	IsMissingTable(err error) bool
}
