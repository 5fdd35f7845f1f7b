// Copyright (c) 2026 The cellbench developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package perftime provides the high-resolution elapsed-time
// measurement used by the benchmarks.
//
// On platforms with a per-process CPU-time clock, measurements are
// based on CPU time consumed by the process, which isolates the
// results from scheduler noise caused by other processes and I/O
// waits.  Platforms without such a clock fall back to wall-clock
// measurement, which is portable but noisier.  Both variants expose
// the same two-operation contract, so callers are agnostic to which
// one is active; the choice is made at build time.
//
// A working clock is a precondition for every reported measurement,
// so a failure of the underlying time source panics rather than
// returning an error.
package perftime

// Stopwatch marks an instant from which elapsed time is measured.
// Each independently-timed region should start its own stopwatch;
// the zero value is not meaningful.
type Stopwatch struct {
	start uint64
}

// Start captures the current instant and returns a stopwatch
// measuring from it.
func Start() Stopwatch {
	return Stopwatch{start: nowNanos()}
}

// ElapsedNanos returns the number of nanoseconds between the instant
// the stopwatch was started and now.  The result is limited by the
// native resolution of the active time source.
func (s Stopwatch) ElapsedNanos() uint64 {
	return nowNanos() - s.start
}

// ElapsedMicros returns the number of whole microseconds between the
// instant the stopwatch was started and now.
func (s Stopwatch) ElapsedMicros() uint64 {
	return s.ElapsedNanos() / 1000
}

// Source returns the name of the active time source, either
// "process-cpu" or "wall-clock".
func Source() string {
	return sourceName
}
