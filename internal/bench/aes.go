// Copyright (c) 2026 The cellbench developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"io"

	"github.com/cellbench/cellbench/internal/cellcipher"
	"github.com/cellbench/cellbench/internal/perftime"
)

const (
	// sweepByteBudget is the approximate total number of bytes
	// encrypted per tested block size.  Holding the byte volume
	// constant makes the per-byte figures comparable across sizes.
	sweepByteBudget = 1 << 24

	// sweepMaxBlockSize is the largest block size in the sweep, which
	// covers sizes 1, 2, 4, ... by doubling.
	sweepMaxBlockSize = 8192
)

// sweepIters returns the number of encryption calls performed for the
// provided block size so that sweepIters(size) * size stays within a
// factor of two of the byte budget.
func sweepIters(blockSize int) int {
	return sweepByteBudget / blockSize
}

// benchAES measures the average per-byte cost of encrypting
// fixed-size buffers across a geometric sequence of block sizes.  A
// single cipher context keyed outside the timed regions is reused for
// the whole sweep, and the source and destination buffers are
// allocated per size so the working set matches the size under test.
func benchAES(w io.Writer) {
	c := cellcipher.New()
	for size := 1; size <= sweepMaxBlockSize; size *= 2 {
		iters := sweepIters(size)
		if iters == 0 {
			// Only reachable if the sweep range is ever extended past
			// the byte budget; such sizes are skipped rather than
			// clamped to a single untrustworthy iteration.
			log.Warnf("Skipping %d byte blocks: size exceeds byte budget",
				size)
			continue
		}
		src := make([]byte, size)
		dst := make([]byte, size)
		sw := perftime.Start()
		for i := 0; i < iters; i++ {
			c.Encrypt(dst, src)
		}
		elapsed := sw.ElapsedNanos()
		fmt.Fprintf(w, "%d bytes: %.2f nsec per byte\n", size,
			float64(elapsed)/float64(iters*size))
	}
}
