// Copyright (c) 2026 The cellbench developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package perftime

import (
	"testing"
)

// busyWork burns CPU so both the CPU-time and wall-clock sources
// observe a nonzero duration.  The return value prevents the compiler
// from eliminating the loop.
func busyWork(rounds int) uint64 {
	var acc uint64 = 0x9e3779b97f4a7c15
	for i := 0; i < rounds; i++ {
		acc ^= acc << 13
		acc ^= acc >> 7
		acc ^= acc << 17
	}
	return acc
}

// TestImmediateElapsed ensures that reading a stopwatch immediately
// after starting it yields a value close to zero, bounded by clock
// resolution rather than anything resembling real work.
func TestImmediateElapsed(t *testing.T) {
	// 10ms is enormous compared to either source's resolution.
	const maxImmediate = 10_000_000

	for i := 0; i < 10; i++ {
		sw := Start()
		got := sw.ElapsedNanos()
		if got > maxImmediate {
			t.Fatalf("immediate elapsed reading too large: %d ns", got)
		}
	}
}

// TestElapsedNondecreasing ensures repeated readings of the same
// stopwatch never go backwards and that readings grow as work is
// performed between them.
func TestElapsedNondecreasing(t *testing.T) {
	sw := Start()
	var prev uint64
	var sink uint64
	for i := 0; i < 5; i++ {
		sink += busyWork(1 << 20)
		got := sw.ElapsedNanos()
		if got < prev {
			t.Fatalf("elapsed went backwards: %d after %d", got, prev)
		}
		prev = got
	}
	if prev == 0 {
		t.Fatal("elapsed still zero after busy work")
	}
	_ = sink
}

// TestIndependentStopwatches ensures two stopwatches measure from
// their own start instants rather than any shared baseline.
func TestIndependentStopwatches(t *testing.T) {
	outer := Start()
	sink := busyWork(1 << 21)
	inner := Start()
	innerElapsed := inner.ElapsedNanos()
	outerElapsed := outer.ElapsedNanos()
	if innerElapsed > outerElapsed {
		t.Fatalf("inner stopwatch (%d ns) exceeds outer (%d ns)",
			innerElapsed, outerElapsed)
	}
	_ = sink
}

// TestElapsedMicros ensures the microsecond reading is the truncated
// nanosecond reading.
func TestElapsedMicros(t *testing.T) {
	sw := Start()
	sink := busyWork(1 << 21)
	us := sw.ElapsedMicros()
	ns := sw.ElapsedNanos()
	if us > ns/1000 {
		t.Fatalf("micros %d inconsistent with later nanos %d", us, ns)
	}
	_ = sink
}

// TestSource ensures the active time source reports one of the two
// known variants.
func TestSource(t *testing.T) {
	switch got := Source(); got {
	case "process-cpu", "wall-clock":
	default:
		t.Fatalf("unknown time source %q", got)
	}
}
