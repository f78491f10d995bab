// Package server wires and runs the note keeper's HTTP server together with
// its background workers.
//
// It owns the process lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured shutdown timeout.
package server
