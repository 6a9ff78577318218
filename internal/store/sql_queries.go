// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-box-keeper/migrations"
)

const (
	slotsTable = "slots"

	columnSlotKey   = "slot_key"
	columnPayload   = "payload"
	columnUpdatedAt = "updated_at"

	upsertSlotSuffix = "ON CONFLICT (slot_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at"
)

// statementBuilder returns a squirrel builder with the placeholder format of
// dialect: $n for PostgreSQL, ? for SQLite.
func statementBuilder(dialect string) sq.StatementBuilderType {
	if dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func buildLoadSlotQuery(dialect, key string) (string, []any, error) {
	return statementBuilder(dialect).
		Select(columnPayload).
		From(slotsTable).
		Where(sq.Eq{columnSlotKey: key}).
		ToSql()
}

// buildSaveSlotQuery binds payload as bytes: sealed snapshots are not valid
// UTF-8, and the payload column is BYTEA on PostgreSQL.
func buildSaveSlotQuery(dialect, key string, payload []byte, at time.Time) (string, []any, error) {
	return statementBuilder(dialect).
		Insert(slotsTable).
		Columns(columnSlotKey, columnPayload, columnUpdatedAt).
		Values(key, payload, at.UTC()).
		Suffix(upsertSlotSuffix).
		ToSql()
}
