// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"database/sql/driver"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-box-keeper/internal/crypto"
	"github.com/MKhiriev/go-box-keeper/migrations"
)

func Test_buildLoadSlotQuery(t *testing.T) {
	tests := []struct {
		name        string
		dialect     string
		placeholder string
	}{
		{name: "sqlite uses question marks", dialect: migrations.DialectSQLite, placeholder: "?"},
		{name: "postgres uses dollar placeholders", dialect: migrations.DialectPostgres, placeholder: "$1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildLoadSlotQuery(tt.dialect, "@boxtrack_data")
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.Contains(t, q, "select payload")
			require.Contains(t, q, "from slots")
			require.Contains(t, q, "slot_key = "+tt.placeholder)
			require.Equal(t, []any{"@boxtrack_data"}, args)
		})
	}
}

func Test_buildSaveSlotQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))

	t.Run("postgres", func(t *testing.T) {
		query, args, err := buildSaveSlotQuery(migrations.DialectPostgres, "k", []byte("payload"), at)
		require.NoError(t, err)

		q := strings.ToLower(query)
		require.Contains(t, q, "insert into slots (slot_key,payload,updated_at)")
		require.Contains(t, query, "$1")
		require.Contains(t, query, "$2")
		require.Contains(t, query, "$3")
		require.Contains(t, q, "on conflict (slot_key) do update")

		require.Len(t, args, 3)
		require.Equal(t, "k", args[0])
		require.Equal(t, []byte("payload"), args[1])
		require.Equal(t, at.UTC(), args[2])
	})

	t.Run("sqlite", func(t *testing.T) {
		query, args, err := buildSaveSlotQuery(migrations.DialectSQLite, "k", []byte("payload"), at)
		require.NoError(t, err)

		require.Contains(t, query, "VALUES (?,?,?)")
		require.NotContains(t, query, "$1")
		require.Len(t, args, 3)
	})
}

func Test_buildSaveSlotQuery_SealedPayloadIsBoundAsBytes(t *testing.T) {
	c, err := crypto.NewPassphraseCipher("secret")
	require.NoError(t, err)

	// a NUL byte is the case PostgreSQL refuses in a text parameter
	var sealed []byte
	for range 20 {
		sealed, err = c.Seal([]byte(`{"boxes":[],"items":[]}`))
		require.NoError(t, err)
		if !utf8.Valid(sealed) || bytes.IndexByte(sealed, 0) >= 0 {
			break
		}
	}

	_, args, err := buildSaveSlotQuery(migrations.DialectPostgres, "k", sealed, time.Now())
	require.NoError(t, err)

	require.IsType(t, []byte(nil), args[1])
	assert.Equal(t, sealed, args[1])
}

// bytesArg matches a []byte driver value and keeps a copy of it.
type bytesArg struct{ got *[]byte }

func (a bytesArg) Match(v driver.Value) bool {
	b, ok := v.([]byte)
	if ok {
		*a.got = bytes.Clone(b)
	}
	return ok
}

func TestSQLSlotStorage_SealedRoundTrip(t *testing.T) {
	s, mock := newTestSQLSlot(t, migrations.DialectPostgres)
	c, err := crypto.NewPassphraseCipher("secret")
	require.NoError(t, err)
	sealedSlots := NewSealedSlotStorage(s, c)
	ctx := context.Background()

	var stored []byte
	mock.ExpectExec("INSERT INTO slots").
		WithArgs("k", bytesArg{got: &stored}, fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, sealedSlots.Save(ctx, "k", []byte(`{"boxes":[]}`)))
	require.True(t, c.IsSealed(stored))

	mock.ExpectQuery(loadSlotSQL).
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(stored))

	got, err := sealedSlots.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"boxes":[]}`), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
