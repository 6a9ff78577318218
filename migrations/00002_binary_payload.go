// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upBinaryPayload, downBinaryPayload)
}

// Sealed snapshots are arbitrary bytes, which a PostgreSQL TEXT column
// rejects. SQLite stores blobs in a TEXT column as they are, so only
// PostgreSQL changes the column type.
func upBinaryPayload(ctx context.Context, tx *sql.Tx) error {
	return alterPayloadType(ctx, tx, activeDialect, true)
}

func downBinaryPayload(ctx context.Context, tx *sql.Tx) error {
	return alterPayloadType(ctx, tx, activeDialect, false)
}

func alterPayloadType(ctx context.Context, tx *sql.Tx, dialect string, binary bool) error {
	if dialect != DialectPostgres {
		return nil
	}

	stmt := `ALTER TABLE slots ALTER COLUMN payload TYPE BYTEA USING convert_to(payload, 'UTF8')`
	if !binary {
		stmt = `ALTER TABLE slots ALTER COLUMN payload TYPE TEXT USING convert_from(payload, 'UTF8')`
	}
	_, err := tx.ExecContext(ctx, stmt)
	return err
}
