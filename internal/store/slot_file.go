// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-box-keeper/internal/logger"
)

const slotFileExt = ".json"

// fileSlotStorage keeps one file per slot key under dir. Writes go to a
// temporary file in the same directory that is then renamed over the old
// one, so a crash never leaves a half-written slot behind.
type fileSlotStorage struct {
	dir    string
	logger *logger.Logger

	mu sync.Mutex
}

// NewFileSlotStorage returns a [SlotStorage] rooted at dir. The directory is
// created on first save.
func NewFileSlotStorage(dir string, log *logger.Logger) SlotStorage {
	return &fileSlotStorage{dir: dir, logger: log}
}

func (s *fileSlotStorage) Load(ctx context.Context, key string) ([]byte, error) {
	path := s.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("read slot file: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "fileSlotStorage.Load").
		Str("path", path).
		Int("bytes", len(data)).
		Msg("slot loaded")

	return data, nil
}

func (s *fileSlotStorage) Save(ctx context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".slot-*")
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write slot file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close slot file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod slot file: %w", err)
	}

	if err = os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace slot file: %w", err)
	}

	return nil
}

func (s *fileSlotStorage) Close() error {
	return nil
}

func (s *fileSlotStorage) path(key string) string {
	return filepath.Join(s.dir, slotFileName(key))
}

// slotFileName maps an arbitrary key such as "@boxtrack_data" to a safe file
// name. Letters, digits, '-', '_' and '.' are kept; everything else becomes
// '_'. A leading dot is replaced so the slot never becomes a hidden file.
func slotFileName(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	name := b.String()
	if name == "" || strings.HasPrefix(name, ".") {
		name = "_" + name
	}
	return name + slotFileExt
}
