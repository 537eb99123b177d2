// File: api/pool.go
// Package api defines the worker pool contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Job is the unit of work submitted to a pool: a closure carrying both the
// callable and whatever data it needs. Multi-argument calls are packed by
// the caller into the closure.
type Job func()

// Pool abstracts a fixed-size worker pool draining an unbounded FIFO queue.
type Pool interface {
	// Submit appends a job to the queue. Never blocks the caller.
	// Returns ErrPoolClosed once Close has been called.
	Submit(job Job) error

	// Wait blocks until the queue is empty and no worker is executing a job.
	Wait()

	// Pause stops workers from picking up new jobs. Jobs already executing
	// run to completion. Jobs may still be submitted while paused.
	Pause()

	// Resume lifts a previous Pause and wakes all parked workers.
	Resume()

	// NumWorking reports how many workers are executing a job right now.
	// The value is approximate; it is stale the moment it is returned.
	NumWorking() int

	// Close stops the pool: queued-but-unstarted jobs are discarded,
	// in-flight jobs run to completion, and all workers are joined.
	Close()

	GracefulShutdown
}
