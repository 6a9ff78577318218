// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by slot backends. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrSlotNotFound is returned by Load when nothing was ever saved under
	// the key. For the SQL backends this also covers a missing slots table.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotUnavailable is returned when the backend cannot be reached.
	ErrSlotUnavailable = errors.New("slot storage unavailable")

	// ErrUnknownDriver is returned by [NewSlotStorage] for a driver name it
	// does not know.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL backend when a statement fails before any payload is handled.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing the upsert fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning the payload column fails.
	ErrScanningRow = errors.New("failed to scan slot row")
)
