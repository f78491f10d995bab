package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	runner     Runner

	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewServer builds the HTTP server from handlers. runner, usually the
// background workers, runs next to it and may be nil.
func NewServer(handlers *handler.Handlers, runner Runner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		runner:          runner,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

// RunServer serves until ctx is cancelled or SIGTERM, SIGINT or SIGQUIT
// arrives. The first failure of the HTTP server or of the runner stops both.
//
// The runner is stopped only after the HTTP server has shut down, so work
// queued by in-flight requests still reaches it.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	runnerCtx, stopRunner := context.WithCancel(context.WithoutCancel(ctx))
	defer stopRunner()

	s.logger.Info().Msg("Launching HTTP server")
	g.Go(s.httpServer.RunServer)

	if s.runner != nil {
		s.logger.Info().Msg("Launching workers")
		g.Go(func() error {
			return s.runner.Run(runnerCtx)
		})
	}

	// listen for stop signals
	g.Go(func() error {
		<-gctx.Done()
		defer stopRunner()

		shutdownCtx, cancel := s.shutdownContext()
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *server) shutdownContext() (context.Context, context.CancelFunc) {
	if s.shutdownTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.shutdownTimeout)
}
