// File: pool/example_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool_test

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/threadpool/pool"
)

func ExampleNew() {
	p := pool.New(4)
	defer p.Close()

	var processed atomic.Int32
	for i := 0; i < 10; i++ {
		_ = p.Submit(func() {
			processed.Add(1)
		})
	}
	p.Wait()

	fmt.Println("processed", processed.Load(), "jobs")
	// Output: processed 10 jobs
}

func ExamplePool_Pause() {
	p := pool.New(2)
	defer p.Close()

	p.Pause()
	for i := 0; i < 3; i++ {
		_ = p.Submit(func() {})
	}
	fmt.Println("queued while paused:", p.QueueLen())

	p.Resume()
	p.Wait()
	fmt.Println("queued after resume:", p.QueueLen())
	// Output:
	// queued while paused: 3
	// queued after resume: 0
}
