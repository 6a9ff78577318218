// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-box-keeper/internal/logger"
)

// SaveFunc durably writes one encoded snapshot.
type SaveFunc func(ctx context.Context, payload []byte) error

// SnapshotWriter performs durable snapshot writes off the caller's path.
//
// Submissions coalesce: while a write is in flight only the newest pending
// payload is kept, so a burst of mutations costs at most two writes. Writes
// happen one at a time in submission order. A failing write is logged and
// dropped; the next submission is written as usual.
type SnapshotWriter struct {
	save   SaveFunc
	logger *logger.Logger

	mu         sync.Mutex
	pending    []byte
	hasPending bool
	writing    bool
	idle       []chan struct{}

	wake   chan struct{}
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSnapshotWriter creates an idle writer. Call Start to begin writing.
func NewSnapshotWriter(save SaveFunc, l *logger.Logger) *SnapshotWriter {
	return &SnapshotWriter{
		save:   save,
		logger: l,
		wake:   make(chan struct{}, 1),
	}
}

// Start implements Worker. It stops any previously running loop and launches
// a new one. Payloads submitted before Start are written once it runs.
func (w *SnapshotWriter) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go w.loop(loopCtx)
}

// Stop implements Worker. The pending payload, if any, is written before the
// loop exits.
func (w *SnapshotWriter) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Submit replaces the pending payload and returns without waiting.
func (w *SnapshotWriter) Submit(payload []byte) {
	w.mu.Lock()
	w.pending = payload
	w.hasPending = true
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Flush blocks until no payload is pending or being written, or ctx is done.
// A payload submitted while the writer is stopped keeps Flush waiting until
// the writer is started again.
func (w *SnapshotWriter) Flush(ctx context.Context) error {
	w.mu.Lock()
	if !w.hasPending && !w.writing {
		w.mu.Unlock()
		return nil
	}
	done := make(chan struct{})
	w.idle = append(w.idle, done)
	w.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *SnapshotWriter) loop(ctx context.Context) {
	defer w.wg.Done()

	// A write that has started is never interrupted by shutdown.
	writeCtx := context.WithoutCancel(ctx)
	for {
		select {
		case <-ctx.Done():
			w.drain(writeCtx)
			return
		case <-w.wake:
			w.drain(writeCtx)
		}
	}
}

func (w *SnapshotWriter) drain(ctx context.Context) {
	for {
		w.mu.Lock()
		if !w.hasPending {
			w.writing = false
			for _, ch := range w.idle {
				close(ch)
			}
			w.idle = nil
			w.mu.Unlock()
			return
		}
		payload := w.pending
		w.pending = nil
		w.hasPending = false
		w.writing = true
		w.mu.Unlock()

		if err := w.save(ctx, payload); err != nil {
			w.logger.Err(err).
				Int("bytes", len(payload)).
				Msg("snapshot write failed")
			continue
		}
		w.logger.Debug().Int("bytes", len(payload)).Msg("snapshot written")
	}
}
