// File: pool/options.go
// Package pool defines functional options for pool construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/rs/zerolog"

// Option customizes pool initialization. Options apply before any worker
// starts, so they may touch fields that are immutable afterwards.
type Option func(*Pool)

// WithLogger attaches a logger for pool lifecycle events. The default is
// zerolog.Nop(), keeping the pool silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Pool) {
		p.logger = logger
	}
}

// WithAffinity pins each worker to its own OS thread and binds that thread
// to a logical CPU (worker id modulo CPU count). Best effort: on platforms
// without affinity support the workers run unpinned and a warning is
// logged.
func WithAffinity() Option {
	return func(p *Pool) {
		p.pinWorkers = true
	}
}

// WithPanicHandler installs fn as the handler for panics recovered from
// jobs, replacing the default log-and-continue behavior. fn runs on the
// worker goroutine that recovered the panic.
func WithPanicHandler(fn func(recovered any)) Option {
	return func(p *Pool) {
		p.panicHandler = fn
	}
}
