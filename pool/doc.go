// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-size worker pool over an unbounded FIFO job queue.
// Workers are long-lived goroutines coordinated through a single invariant-
// checked mutex and condition variables: no busy-waiting, no lost wakeups.
// The pool supports draining (Wait), pausing without teardown (Pause/Resume)
// and orderly shutdown that abandons queued-but-unstarted jobs (Close).
// See pool.go, worker.go, jobqueue.go for implementation details.
package pool
