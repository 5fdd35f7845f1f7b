// Copyright (c) 2026 The cellbench developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package perftime

import "time"

// sourceName identifies the active time source for diagnostics.
const sourceName = "wall-clock"

// epoch anchors the wall-clock fallback so readings fit the same
// opaque monotonic nanosecond contract as the CPU-time variant.
var epoch = time.Now()

// nowNanos returns wall time elapsed since process start, quantized
// to microsecond resolution expressed in nanosecond units.
func nowNanos() uint64 {
	return uint64(time.Since(epoch).Microseconds()) * 1000
}
