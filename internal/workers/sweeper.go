package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// SessionSweeper runs session sweeps queued by the request path on a single
// goroutine. The queue is bounded: Schedule never blocks and reports false
// when the queue is full or the sweeper has stopped.
type SessionSweeper struct {
	jobs chan func(ctx context.Context)

	mu     sync.RWMutex
	closed bool

	drainTimeout time.Duration
	logger       *logger.Logger
}

func NewSessionSweeper(cfg config.Workers, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		jobs:         make(chan func(ctx context.Context), cfg.SweepQueueSize),
		drainTimeout: cfg.DrainTimeout,
		logger:       logger,
	}
}

// Schedule queues job without blocking.
func (s *SessionSweeper) Schedule(job func(ctx context.Context)) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.jobs <- job:
		return true
	default:
		return false
	}
}

// Run executes queued jobs until ctx is cancelled. From then on Schedule
// refuses new jobs; jobs already queued are run within the drain timeout and
// the rest are dropped.
func (s *SessionSweeper) Run(ctx context.Context) error {
	s.logger.Info().Int("queue_size", cap(s.jobs)).Msg("session sweeper started")

	for {
		if ctx.Err() != nil {
			s.close()
			s.drain()
			return nil
		}

		select {
		case <-ctx.Done():
		case job := <-s.jobs:
			job(ctx)
		}
	}
}

func (s *SessionSweeper) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *SessionSweeper) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), s.drainTimeout)
	defer cancel()

	drained := 0
	for {
		if ctx.Err() != nil {
			if dropped := len(s.jobs); dropped > 0 {
				s.logger.Warn().Int("drained", drained).Int("dropped", dropped).Msg("drain timeout reached, session sweeps dropped")
			}
			return
		}

		select {
		case job := <-s.jobs:
			job(ctx)
			drained++
		default:
			s.logger.Info().Int("drained", drained).Msg("session sweeper stopped")
			return
		}
	}
}
