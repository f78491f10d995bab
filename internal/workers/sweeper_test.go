package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

func newTestSweeper(queueSize int, drainTimeout time.Duration) *SessionSweeper {
	return NewSessionSweeper(config.Workers{SweepQueueSize: queueSize, DrainTimeout: drainTimeout}, logger.Nop())
}

func TestSessionSweeper_ScheduleNeverBlocks(t *testing.T) {
	s := newTestSweeper(2, time.Second)
	job := func(context.Context) {}

	assert.True(t, s.Schedule(job))
	assert.True(t, s.Schedule(job))
	assert.False(t, s.Schedule(job), "a full queue must reject the job")
}

func TestSessionSweeper_RunsJobs(t *testing.T) {
	s := newTestSweeper(8, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		_ = s.Run(ctx)
		close(done)
	}()

	ran := make(chan struct{}, 3)
	for range 3 {
		require.True(t, s.Schedule(func(context.Context) { ran <- struct{}{} }))
	}

	for i := range 3 {
		select {
		case <-ran:
		case <-time.After(2 * time.Second):
			require.FailNowf(t, "job did not run", "job %d", i)
		}
	}

	cancel()
	<-done
}

func TestSessionSweeper_DrainsOnShutdown(t *testing.T) {
	s := newTestSweeper(8, time.Second)
	var ran atomic.Int32
	for range 5 {
		s.Schedule(func(ctx context.Context) {
			// drained jobs get a live context
			if ctx.Err() == nil {
				ran.Add(1)
			}
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, s.Run(ctx))
	assert.Equal(t, int32(5), ran.Load())
}

func TestSessionSweeper_DropsAfterDrainTimeout(t *testing.T) {
	s := newTestSweeper(8, 50*time.Millisecond)
	var ran atomic.Int32
	for range 4 {
		s.Schedule(func(ctx context.Context) {
			ran.Add(1)
			<-ctx.Done()
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	require.NoError(t, s.Run(ctx))

	assert.Equal(t, int32(1), ran.Load(), "only the first job runs before the timeout")
	assert.Less(t, time.Since(start), time.Second)
	assert.Len(t, s.jobs, 3, "the remaining jobs are dropped")
}

func TestSessionSweeper_RefusesJobsAfterStop(t *testing.T) {
	s := newTestSweeper(8, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "sweeper did not stop after cancel")
	}

	var ran atomic.Bool
	assert.False(t, s.Schedule(func(context.Context) { ran.Store(true) }), "a stopped sweeper must refuse jobs")
	assert.Empty(t, s.jobs)
	assert.False(t, ran.Load())
}
