package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
//
// [RunServer] blocks until a termination signal arrives or the listener
// fails. [Shutdown] stops accepting connections and waits for in-flight
// requests until ctx is done.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context) error
}
