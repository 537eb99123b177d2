// File: pool/jobqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unbounded FIFO of pending jobs, backed by eapache/queue's growable ring.
// The ring is not safe for concurrent use; every method here must be called
// with the owning Pool's mutex held.

package pool

import (
	"github.com/eapache/queue"

	"github.com/momentics/threadpool/api"
)

// jobQueue holds jobs in submission order. Dequeue order is FIFO; there is
// no capacity limit, so push always succeeds.
type jobQueue struct {
	ring *queue.Queue
}

func newJobQueue() *jobQueue {
	return &jobQueue{ring: queue.New()}
}

// push appends a job to the tail.
func (q *jobQueue) push(job api.Job) {
	q.ring.Add(job)
}

// pop removes and returns the head. Callers must check empty first.
func (q *jobQueue) pop() api.Job {
	return q.ring.Remove().(api.Job)
}

func (q *jobQueue) len() int {
	return q.ring.Length()
}

func (q *jobQueue) empty() bool {
	return q.ring.Length() == 0
}

// drop discards all pending jobs and reports how many were thrown away.
func (q *jobQueue) drop() int {
	n := q.ring.Length()
	for i := 0; i < n; i++ {
		q.ring.Remove()
	}
	return n
}
