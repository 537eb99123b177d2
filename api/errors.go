// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values shared across the threadpool library.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrPoolClosed is returned by Submit once Close has been called.
	ErrPoolClosed = fmt.Errorf("pool is closed")

	// ErrNilJob is returned when a nil job is submitted.
	ErrNilJob = fmt.Errorf("job must not be nil")
)
