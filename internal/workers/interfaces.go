// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way, plus the session
// maintenance workers of the note keeper.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Run blocks until ctx is cancelled or the worker fails. A worker that has
// nothing to do may return nil immediately.
type Worker interface {
	Run(ctx context.Context) error
}

// ExpiredSessionPurger removes the expired sessions of every user.
type ExpiredSessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}
