// Package concurrency
// Author: momentics <momentics@gmail.com>
//
// OS-thread helpers for the worker pool: CPU affinity pinning with
// per-platform implementations behind build tags, and CPU topology queries.
package concurrency
