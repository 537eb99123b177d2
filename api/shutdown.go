// File: api/shutdown.go
// Package api defines unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown unifies teardown across components that own goroutines
// or other resources requiring an ordered stop.
type GracefulShutdown interface {
	// Shutdown performs an orderly stop of all internal services and
	// releases resources. Returns an error on failure.
	Shutdown() error
}
