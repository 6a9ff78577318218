// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-box-keeper/internal/logger"
)

const (
	saveAttempts     = 3
	saveRetryBackoff = 50 * time.Millisecond
)

// sqlSlotStorage keeps slots as rows of the "slots" table. It serves both
// SQLite and PostgreSQL; the dialect only changes placeholders and error
// classification.
type sqlSlotStorage struct {
	*DB
	now func() time.Time
}

// NewSQLSlotStorage returns a [SlotStorage] over an already migrated db.
func NewSQLSlotStorage(db *DB) SlotStorage {
	return &sqlSlotStorage{DB: db, now: time.Now}
}

func (s *sqlSlotStorage) Load(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadSlotQuery(s.dialect, key)
	if err != nil {
		log.Err(err).Str("func", "sqlSlotStorage.Load").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload []byte
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&payload)
	switch {
	case err == nil:
		return payload, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrSlotNotFound
	case s.errorClassificator.IsMissingTable(err):
		log.Warn().Str("func", "sqlSlotStorage.Load").Msg("slots table is missing, treating slot as empty")
		return nil, ErrSlotNotFound
	case s.errorClassificator.Classify(err) == Retryable:
		return nil, fmt.Errorf("%w: %w", ErrSlotUnavailable, err)
	default:
		log.Err(err).
			Str("func", "sqlSlotStorage.Load").
			Str("slot_key", key).
			Msg("failed to read slot row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
}

// Save upserts the slot row. Errors the dialect classifies as retryable are
// attempted again a few times with a growing pause.
func (s *sqlSlotStorage) Save(ctx context.Context, key string, payload []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveSlotQuery(s.dialect, key, payload, s.now())
	if err != nil {
		log.Err(err).Str("func", "sqlSlotStorage.Save").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		_, err = s.DB.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}

		if attempt >= saveAttempts || s.errorClassificator.Classify(err) != Retryable {
			break
		}

		log.Warn().Err(err).
			Str("func", "sqlSlotStorage.Save").
			Int("attempt", attempt).
			Msg("retrying slot write")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * saveRetryBackoff):
		}
	}

	log.Err(err).
		Str("func", "sqlSlotStorage.Save").
		Str("slot_key", key).
		Msg("failed to write slot row")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func (s *sqlSlotStorage) Close() error {
	return s.DB.Close()
}
