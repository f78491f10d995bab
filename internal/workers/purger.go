package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// SessionPurger periodically removes expired sessions of all users.
// A non-positive interval disables it.
type SessionPurger struct {
	purger   ExpiredSessionPurger
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionPurger(purger ExpiredSessionPurger, cfg config.Workers, logger *logger.Logger) *SessionPurger {
	return &SessionPurger{
		purger:   purger,
		interval: cfg.PurgeInterval,
		logger:   logger,
	}
}

// Run purges once per interval until ctx is cancelled. Purge failures are
// logged and retried on the next tick.
func (p *SessionPurger) Run(ctx context.Context) error {
	if p.interval <= 0 {
		p.logger.Debug().Msg("session purger is disabled")
		return nil
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			purged, err := p.purger.PurgeExpired(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				p.logger.Err(err).Msg("error purging expired sessions")
				continue
			}
			p.logger.Info().Int64("purged", purged).Msg("expired sessions purged")
		}
	}
}
