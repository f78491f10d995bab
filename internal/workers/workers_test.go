// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
	err      error
	block    bool
}

func (m *mockWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	if m.block {
		<-ctx.Done()
	}
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	require.NoError(t, ws.Run(context.Background()))

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not block or fail on empty workers list
	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_ErrorCancelsOthers(t *testing.T) {
	failure := errors.New("worker failed")
	blocking := &mockWorker{block: true}
	failing := &mockWorker{err: failure}

	done := make(chan error, 1)
	go func() {
		done <- NewWorkers(blocking, failing).Run(context.Background())
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, failure)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "blocking worker was not cancelled")
	}
}

func TestWorkers_Run_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := &mockWorker{block: true}

	done := make(chan error, 1)
	go func() {
		done <- NewWorkers(w).Run(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "workers did not stop after cancel")
	}
}
