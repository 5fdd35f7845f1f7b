// Copyright (c) 2026 The cellbench developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build linux || darwin || freebsd || netbsd || openbsd

package perftime

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// sourceName identifies the active time source for diagnostics.
const sourceName = "process-cpu"

// nowNanos returns the CPU time consumed by the process as an opaque
// monotonic nanosecond count.  The absolute value is only meaningful
// relative to another reading.
func nowNanos() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		// A broken process clock means no measurement can be
		// trusted, so treat it as unrecoverable.
		panic(fmt.Sprintf("perftime: process cpu clock failed: %v", err))
	}
	return uint64(ts.Sec)*1e9 + uint64(ts.Nsec)
}
