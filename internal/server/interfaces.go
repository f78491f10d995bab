package server

import "context"

// Server defines the lifecycle contract of the note keeper process.
//
// Implementations block in [RunServer] until ctx is cancelled or a
// termination signal arrives, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A clean shutdown returns nil.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server within the deadline of ctx.
	Shutdown(ctx context.Context) error
}

// Runner is a background task that lives as long as the server.
type Runner interface {
	Run(ctx context.Context) error
}
