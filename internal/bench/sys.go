package bench

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// PinToCore restricts the calling thread's scheduling to a single CPU core,
// reducing run-to-run variance for the single-core workloads. The caller
// should hold the OS thread (runtime.LockOSThread) for the pin to stick to
// the goroutine doing the work.
func PinToCore(core int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(core)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("pin to core %d: %w", core, err)
	}
	return nil
}

// ResidentKB returns the process's current resident set size in KB, read
// from /proc/self/statm.
func ResidentKB() (int64, error) {
	data, err := os.ReadFile("/proc/self/statm")
	if err != nil {
		return 0, fmt.Errorf("read statm: %w", err)
	}
	fields := strings.Fields(string(data))
	if len(fields) < 2 {
		return 0, fmt.Errorf("malformed statm: %q", data)
	}
	pages, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse statm resident field: %w", err)
	}
	return pages * int64(os.Getpagesize()) / 1024, nil
}

// PeakRSSKB returns the process's peak resident set size in KB, from
// getrusage.
func PeakRSSKB() (int64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, fmt.Errorf("getrusage: %w", err)
	}
	return ru.Maxrss, nil
}
