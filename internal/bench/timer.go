// Package bench reimplements the single-core measurement harness that
// accompanies the collector: a monotonic timer, resident-memory sampling
// around a workload, CPU-core pinning, and the three reference workloads
// (matrix multiply, chunked deep recursion, short-checksum loop).
package bench

import "time"

// Timer measures elapsed wall time from its creation, using the runtime's
// monotonic clock.
type Timer struct {
	start time.Time
}

// NewTimer starts a timer.
func NewTimer() Timer {
	return Timer{start: time.Now()}
}

// Elapsed returns the time since the timer started.
func (t Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Ms returns the elapsed time in milliseconds.
func (t Timer) Ms() float64 {
	return float64(t.Elapsed()) / float64(time.Millisecond)
}
