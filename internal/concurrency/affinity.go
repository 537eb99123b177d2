// File: internal/concurrency/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// live in separate files (affinity_linux.go, affinity_stub.go) guarded by
// build tags.

package concurrency

import "runtime"

// PinCurrentThread locks the calling goroutine to its OS thread and binds
// that thread to the given logical CPU. The goroutine stays locked for its
// lifetime; when it exits, the runtime discards the wired thread.
// On unsupported platforms returns an error and leaves the thread unlocked.
func PinCurrentThread(cpuID int) error {
	runtime.LockOSThread()
	if err := setAffinityPlatform(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// NumCPUs returns the number of logical CPUs.
func NumCPUs() int {
	return runtime.NumCPU()
}
