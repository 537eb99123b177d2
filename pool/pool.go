// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool owns the job queue, the fixed worker set and all shared
// synchronization state. One mutex guards the queue and the pause/closed
// flags; three condition variables built on it cover the suspension points:
// jobReady (a worker waiting for work), unpaused (a worker parked by Pause)
// and drained (a caller inside Wait). The mutex is never held across a
// job's execution, so a slow job cannot starve Submit or Wait.

package pool

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/jacobsa/syncutil"
	"github.com/rs/zerolog"

	"github.com/momentics/threadpool/api"
)

// Pool is a fixed-size worker pool. The worker count is set at construction
// and never changes. Create with New; a zero Pool is not usable.
type Pool struct {
	// mu guards queue, paused and closed. Invariant checking fires on
	// every Lock/Unlock when syncutil.EnableInvariantChecking is on.
	mu syncutil.InvariantMutex

	// GUARDED_BY(mu)
	queue *jobQueue

	// GUARDED_BY(mu)
	paused bool

	// GUARDED_BY(mu); monotonic false->true, never reset.
	closed bool

	// Written only with mu held; read lock-free by observers.
	alive   atomic.Int32
	working atomic.Int32

	jobReady *sync.Cond // signaled on Submit while running
	unpaused *sync.Cond // broadcast on Resume
	drained  *sync.Cond // broadcast when the pool drains

	size      int
	startup   sync.WaitGroup
	wg        sync.WaitGroup
	closeOnce sync.Once

	submitted atomic.Uint64
	completed atomic.Uint64
	discarded atomic.Uint64

	logger       zerolog.Logger
	panicHandler func(recovered any)
	pinWorkers   bool
}

var _ api.Pool = (*Pool)(nil)

// New starts a pool with numWorkers long-lived workers and blocks until
// every worker has come up. If numWorkers <= 0, runtime.NumCPU() is used.
func New(numWorkers int, opts ...Option) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	p := &Pool{
		size:   numWorkers,
		queue:  newJobQueue(),
		logger: zerolog.Nop(),
	}
	p.mu = syncutil.NewInvariantMutex(p.checkInvariants)
	p.jobReady = sync.NewCond(&p.mu)
	p.unpaused = sync.NewCond(&p.mu)
	p.drained = sync.NewCond(&p.mu)

	for _, opt := range opts {
		opt(p)
	}

	p.startup.Add(numWorkers)
	p.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		w := &worker{id: i, pool: p}
		go w.run()
	}
	p.startup.Wait()

	p.logger.Debug().
		Int("workers", numWorkers).
		Bool("affinity", p.pinWorkers).
		Msg("worker pool started")
	return p
}

// Submit appends job to the queue and, unless the pool is paused, wakes one
// idle worker. Never blocks: the queue has no upper bound. While paused the
// job is queued silently and no worker is woken; Resume does the waking.
func (p *Pool) Submit(job api.Job) error {
	if job == nil {
		return api.ErrNilJob
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return api.ErrPoolClosed
	}
	p.queue.push(job)
	p.submitted.Add(1)
	if !p.paused {
		p.jobReady.Signal()
	}
	p.mu.Unlock()
	return nil
}

// Wait blocks until the queue is empty and no worker is executing a job,
// both observed under the same lock the workers update. The predicate is
// re-checked after every wakeup, so a job finishing between the check and
// the suspend cannot be missed.
//
// Queue emptiness alone is not enough: a job may be dequeued but still
// running, which is why the working count is part of the predicate.
func (p *Pool) Wait() {
	p.mu.Lock()
	for !(p.queue.empty() && p.working.Load() == 0) {
		p.drained.Wait()
	}
	p.mu.Unlock()
}

// Pause prevents workers from dequeuing further jobs. Jobs already
// executing are unaffected and run to completion. Idempotent.
func (p *Pool) Pause() {
	p.mu.Lock()
	if !p.paused && !p.closed {
		p.paused = true
		p.logger.Debug().Msg("worker pool paused")
	}
	p.mu.Unlock()
}

// Resume lifts a Pause and wakes every parked worker so queued jobs start
// draining again. Idempotent.
func (p *Pool) Resume() {
	p.mu.Lock()
	if p.paused {
		p.paused = false
		// Workers park on either cond depending on what they last saw,
		// so both must be woken.
		p.unpaused.Broadcast()
		p.jobReady.Broadcast()
		p.logger.Debug().Msg("worker pool resumed")
	}
	p.mu.Unlock()
}

// Close shuts the pool down: queued-but-unstarted jobs are discarded
// without execution, jobs already running finish, and Close returns only
// after every worker has exited. Submitting after Close returns
// ErrPoolClosed. Safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		dropped := p.queue.drop()
		p.discarded.Add(uint64(dropped))
		p.jobReady.Broadcast()
		p.unpaused.Broadcast()
		p.drained.Broadcast()
		p.mu.Unlock()

		p.wg.Wait()

		p.logger.Debug().
			Int("discarded", dropped).
			Msg("worker pool closed")
	})
}

// Shutdown implements api.GracefulShutdown. It never fails.
func (p *Pool) Shutdown() error {
	p.Close()
	return nil
}

// NumWorking reports how many workers are executing a job right now,
// without taking the pool lock. Approximate, for observability only.
func (p *Pool) NumWorking() int {
	return int(p.working.Load())
}

// NumWorkers returns the fixed worker count the pool was built with.
func (p *Pool) NumWorkers() int {
	return p.size
}

// QueueLen returns the number of queued-but-unstarted jobs.
func (p *Pool) QueueLen() int {
	p.mu.Lock()
	n := p.queue.len()
	p.mu.Unlock()
	return n
}

// Stats is a point-in-time snapshot of pool counters.
type Stats struct {
	Submitted uint64
	Completed uint64
	Discarded uint64
	Pending   int
	Workers   int
	Working   int
	Paused    bool
}

// Stats returns basic pool metrics.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	s := Stats{
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Discarded: p.discarded.Load(),
		Pending:   p.queue.len(),
		Workers:   int(p.alive.Load()),
		Working:   int(p.working.Load()),
		Paused:    p.paused,
	}
	p.mu.Unlock()
	return s
}

// checkInvariants panics if the counter ordering 0 <= working <= alive <=
// size is violated. Runs on every Lock/Unlock of mu when invariant checking
// is enabled (tests turn it on via syncutil.EnableInvariantChecking).
func (p *Pool) checkInvariants() {
	working := int(p.working.Load())
	alive := int(p.alive.Load())
	if working < 0 || working > alive || alive > p.size {
		panic(fmt.Sprintf(
			"pool counters out of order: working=%d alive=%d size=%d",
			working, alive, p.size))
	}
}

func (p *Pool) handlePanic(recovered any) {
	if p.panicHandler != nil {
		p.panicHandler(recovered)
		return
	}
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	p.logger.Error().
		Interface("panic", recovered).
		Bytes("stack", buf[:n]).
		Msg("job panicked")
}
