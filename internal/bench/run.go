package bench

import "time"

// Result is one measured workload run: elapsed time, the workload checksum,
// and resident memory sampled immediately before and after.
type Result struct {
	Name        string
	Elapsed     time.Duration
	Checksum    int16
	MemBeforeKB int64
	MemAfterKB  int64
}

// MemDeltaKB returns the resident-memory growth across the run.
func (r Result) MemDeltaKB() int64 {
	return r.MemAfterKB - r.MemBeforeKB
}

// Measure samples resident memory, times fn, and samples again. Sampling
// errors are ignored — a missing /proc leaves the memory columns at zero
// without invalidating the timing.
func Measure(name string, fn func() int16) Result {
	before, _ := ResidentKB()

	t := NewTimer()
	checksum := fn()
	elapsed := t.Elapsed()

	after, _ := ResidentKB()

	return Result{
		Name:        name,
		Elapsed:     elapsed,
		Checksum:    checksum,
		MemBeforeKB: before,
		MemAfterKB:  after,
	}
}
