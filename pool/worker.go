// File: pool/worker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Worker loop: wait for (job available AND not paused) OR shutdown, dequeue
// one job, run it outside the lock, update counters, repeat. A panicking
// job is contained here; it never takes the worker down.

package pool

import (
	"github.com/momentics/threadpool/api"
	"github.com/momentics/threadpool/internal/concurrency"
)

type worker struct {
	id   int
	pool *Pool
}

// run is the whole life of one worker goroutine.
func (w *worker) run() {
	p := w.pool
	defer p.wg.Done()

	if p.pinWorkers {
		cpu := w.id % concurrency.NumCPUs()
		if err := concurrency.PinCurrentThread(cpu); err != nil {
			p.logger.Warn().
				Err(err).
				Int("worker", w.id).
				Msg("cpu pinning unavailable")
		}
	}

	p.mu.Lock()
	p.alive.Add(1)
	p.mu.Unlock()
	p.startup.Done()

	p.mu.Lock()
	for {
		// Predicate re-check: every wakeup falls back into this loop, so
		// spurious or stale signals cannot dequeue from an empty queue or
		// bypass a pause.
		for !p.closed && (p.paused || p.queue.empty()) {
			if p.paused {
				p.unpaused.Wait()
			} else {
				p.jobReady.Wait()
			}
		}
		if p.closed {
			// Queued-but-unstarted jobs are abandoned on shutdown.
			break
		}

		job := p.queue.pop()
		p.working.Add(1)
		p.mu.Unlock()

		w.invoke(job)

		p.mu.Lock()
		p.working.Add(-1)
		p.completed.Add(1)
		if p.working.Load() == 0 && p.queue.empty() {
			p.drained.Broadcast()
		}
	}
	p.alive.Add(-1)
	p.mu.Unlock()
}

// invoke runs the job, swallowing a panic so the worker survives. The
// caller's counter bookkeeping happens after invoke returns, so it runs
// whether or not the job failed.
func (w *worker) invoke(job api.Job) {
	defer func() {
		if r := recover(); r != nil {
			w.pool.handlePanic(r)
		}
	}()
	job()
}
