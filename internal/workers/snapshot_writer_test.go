// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSaver collects written payloads. When gate is non-nil every write
// announces itself on started and waits for gate before returning.
type recordingSaver struct {
	mu      sync.Mutex
	written []string
	err     error

	started chan struct{}
	gate    chan struct{}
}

func (r *recordingSaver) save(ctx context.Context, payload []byte) error {
	if r.started != nil {
		r.started <- struct{}{}
	}
	if r.gate != nil {
		<-r.gate
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.written = append(r.written, string(payload))
	return r.err
}

func (r *recordingSaver) payloads() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.written...)
}

func flushCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestSnapshotWriter_WritesSubmittedPayload(t *testing.T) {
	saver := &recordingSaver{}
	w := NewSnapshotWriter(saver.save, logger.Nop())
	w.Start(context.Background())
	defer w.Stop()

	w.Submit([]byte("one"))
	require.NoError(t, w.Flush(flushCtx(t)))

	assert.Equal(t, []string{"one"}, saver.payloads())
}

func TestSnapshotWriter_CoalescesWhileWriting(t *testing.T) {
	saver := &recordingSaver{
		started: make(chan struct{}, 3),
		gate:    make(chan struct{}),
	}
	w := NewSnapshotWriter(saver.save, logger.Nop())
	w.Start(context.Background())
	defer w.Stop()

	w.Submit([]byte("first"))
	<-saver.started

	w.Submit([]byte("second"))
	w.Submit([]byte("third"))

	close(saver.gate)
	require.NoError(t, w.Flush(flushCtx(t)))

	assert.Equal(t, []string{"first", "third"}, saver.payloads())
}

func TestSnapshotWriter_FlushWhenIdle(t *testing.T) {
	w := NewSnapshotWriter((&recordingSaver{}).save, logger.Nop())
	require.NoError(t, w.Flush(context.Background()))
}

func TestSnapshotWriter_FlushHonoursContext(t *testing.T) {
	saver := &recordingSaver{
		started: make(chan struct{}, 1),
		gate:    make(chan struct{}),
	}
	w := NewSnapshotWriter(saver.save, logger.Nop())
	w.Start(context.Background())

	w.Submit([]byte("slow"))
	<-saver.started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.Flush(ctx), context.Canceled)

	close(saver.gate)
	w.Stop()
}

func TestSnapshotWriter_ErrorIsLoggedAndSwallowed(t *testing.T) {
	var buf bytes.Buffer
	saver := &recordingSaver{err: errors.New("disk full")}
	w := NewSnapshotWriter(saver.save, logger.New(&buf, "test"))
	w.Start(context.Background())
	defer w.Stop()

	w.Submit([]byte("doomed"))
	require.NoError(t, w.Flush(flushCtx(t)))

	assert.Contains(t, buf.String(), "disk full")
	assert.Contains(t, buf.String(), "snapshot write failed")

	saver.mu.Lock()
	saver.err = nil
	saver.mu.Unlock()

	w.Submit([]byte("recovered"))
	require.NoError(t, w.Flush(flushCtx(t)))
	assert.Equal(t, []string{"doomed", "recovered"}, saver.payloads())
}

func TestSnapshotWriter_SubmitBeforeStart(t *testing.T) {
	saver := &recordingSaver{}
	w := NewSnapshotWriter(saver.save, logger.Nop())

	w.Submit([]byte("early"))
	w.Start(context.Background())
	defer w.Stop()

	require.NoError(t, w.Flush(flushCtx(t)))
	assert.Equal(t, []string{"early"}, saver.payloads())
}

func TestSnapshotWriter_StopDrainsPending(t *testing.T) {
	saver := &recordingSaver{}
	w := NewSnapshotWriter(saver.save, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	w.Submit([]byte("last"))
	cancel()
	w.Stop()

	assert.Equal(t, []string{"last"}, saver.payloads())
}

func TestSnapshotWriter_StopIsIdempotent(t *testing.T) {
	w := NewSnapshotWriter((&recordingSaver{}).save, logger.Nop())
	w.Stop()
	w.Start(context.Background())
	w.Stop()
	w.Stop()
}
