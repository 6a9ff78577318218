// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-box-keeper/internal/inventory"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	inventory.ErrValidation:           http.StatusBadRequest,
	inventory.ErrBoxNotFound:          http.StatusNotFound,
	inventory.ErrItemNotFound:         http.StatusNotFound,
	inventory.ErrBoxCapacityExceeded:  http.StatusConflict,
	inventory.ErrItemCapacityExceeded: http.StatusConflict,
	inventory.ErrIDExhausted:          http.StatusServiceUnavailable,

	ErrInvalidJSON:     http.StatusBadRequest,
	ErrInvalidGzipBody: http.StatusBadRequest,
	ErrInvalidScanCode: http.StatusBadRequest,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Client errors carry
// the error text; server errors are logged and answered generically.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}
