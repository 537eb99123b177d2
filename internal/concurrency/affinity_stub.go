//go:build !linux
// +build !linux

// File: internal/concurrency/affinity_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub implementation for platforms without sched_setaffinity.

package concurrency

// setAffinityPlatform reports unavailability on non-Linux platforms.
func setAffinityPlatform(cpuID int) error {
	return ErrAffinityNotSupported
}
