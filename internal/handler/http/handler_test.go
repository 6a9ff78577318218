// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-box-keeper/internal/config"
	"github.com/MKhiriev/go-box-keeper/internal/inventory"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/service"
	"github.com/MKhiriev/go-box-keeper/internal/store"
	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresSettings(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, config.Server{RequestTimeout: 5 * time.Second}, config.App{DeepLinkScheme: "boxkeeper"}, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, "boxkeeper", h.deepLinkScheme)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestAPI builds the full router over an in-memory inventory.
func newTestAPI(t *testing.T, policy config.Inventory) http.Handler {
	t.Helper()

	inv, err := inventory.New(context.Background(), store.NewMemorySlotStorage(), "test", logger.Nop(),
		inventory.WithPolicy(policy))
	require.NoError(t, err)
	t.Cleanup(func() { _ = inv.Close(context.Background()) })

	svcs := service.NewServices(inv, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"),
		config.App{DeepLinkScheme: "boxkeeper"}, logger.Nop())

	h := NewHandler(svcs, config.Server{RequestTimeout: 5 * time.Second}, config.App{DeepLinkScheme: "boxkeeper"}, logger.Nop())
	return h.Init()
}

func defaultPolicy() config.Inventory {
	return config.Inventory{MinQuantity: 1}
}

func doRequest(t *testing.T, api http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func createBox(t *testing.T, api http.Handler, nb models.NewBox) models.Box {
	t.Helper()

	rr := doRequest(t, api, http.MethodPost, "/api/boxes", nb)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeBody[models.Box](t, rr)
}

func shedBox() models.NewBox {
	return models.NewBox{Name: "Tools", Location: "Shed", Category: models.CategoryTools, Color: models.ColorBlue}
}
