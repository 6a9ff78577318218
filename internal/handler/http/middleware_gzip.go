// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
)

var gzipReaders sync.Pool

// withGzipBody inflates request bodies sent with Content-Encoding: gzip.
// Scanners on slow links post compressed batches; response compression is
// left to chi's Compress middleware.
func withGzipBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.EqualFold(strings.TrimSpace(r.Header.Get("Content-Encoding")), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr, _ := gzipReaders.Get().(*gzip.Reader)
		var err error
		if zr == nil {
			zr, err = gzip.NewReader(r.Body)
		} else {
			err = zr.Reset(r.Body)
		}
		if err != nil {
			if zr != nil {
				gzipReaders.Put(zr)
			}
			writeError(w, r, ErrInvalidGzipBody, "withGzipBody")
			return
		}

		body := &gzipBody{Reader: zr, raw: r.Body}
		defer body.release()

		r.Body = body
		r.Header.Del("Content-Encoding")
		r.Header.Del("Content-Length")
		r.ContentLength = -1
		next.ServeHTTP(w, r)
	})
}

// gzipBody returns its reader to the pool once the handler is done.
type gzipBody struct {
	*gzip.Reader
	raw interface{ Close() error }

	released bool
}

func (b *gzipBody) Close() error {
	return b.raw.Close()
}

func (b *gzipBody) release() {
	if b.released {
		return
	}
	b.released = true
	_ = b.Reader.Close()
	gzipReaders.Put(b.Reader)
}
