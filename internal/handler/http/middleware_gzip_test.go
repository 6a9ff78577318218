// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func echoBody(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		_, _ = w.Write(body)
	})
}

func TestWithGzipBody_InflatesRequest(t *testing.T) {
	h := withGzipBody(echoBody(t))

	// two rounds so the second one reuses a pooled reader
	for _, payload := range []string{`{"name":"Tools"}`, `{"name":"Books"}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/boxes", bytes.NewReader(gzipped(t, payload)))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()

		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, payload, rr.Body.String())
	}
}

func TestWithGzipBody_PlainRequestUntouched(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/boxes", strings.NewReader(`{"name":"Tools"}`))
	rr := httptest.NewRecorder()

	withGzipBody(echoBody(t)).ServeHTTP(rr, req)

	assert.Equal(t, `{"name":"Tools"}`, rr.Body.String())
}

func TestWithGzipBody_InvalidBody(t *testing.T) {
	called := false
	h := withGzipBody(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

	req := httptest.NewRequest(http.MethodPost, "/api/boxes", strings.NewReader("plain text"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), ErrInvalidGzipBody.Error())
}

func TestAPI_GzipRoundTrip(t *testing.T) {
	api := newTestAPI(t, defaultPolicy())

	req := httptest.NewRequest(http.MethodPost, "/api/boxes",
		bytes.NewReader(gzipped(t, `{"name":"Tools","location":"Shed","category":"Tools"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/boxes", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr = httptest.NewRecorder()
	api.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"name":"Tools"`)
}

func TestAPI_NoContentIsNotCompressed(t *testing.T) {
	api := newTestAPI(t, defaultPolicy())
	box := createBox(t, api, shedBox())

	req := httptest.NewRequest(http.MethodDelete, "/api/boxes/"+box.ID, nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}
