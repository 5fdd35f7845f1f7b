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
	// cellPayloadLen models the fixed payload length of a relay cell.
	cellPayloadLen = 509

	// cellIters is the number of in-place encryptions timed per
	// misalignment offset.
	cellIters = 1 << 16

	// cellMaxMisalign is the largest tested offset of the payload
	// start relative to the backing buffer.
	cellMaxMisalign = 15
)

// benchCellAES measures how sensitive in-place encryption throughput
// is to buffer misalignment.  One buffer with enough slack for the
// maximum offset is allocated up front and the payload window slides
// across it one byte at a time, so only the start offset changes
// between runs.  The cipher context and key are shared across all
// offsets and created outside the timed regions.
func benchCellAES(w io.Writer) {
	c := cellcipher.New()
	buf := make([]byte, cellPayloadLen+cellMaxMisalign)
	for misalign := 0; misalign <= cellMaxMisalign; misalign++ {
		payload := buf[misalign : misalign+cellPayloadLen]
		sw := perftime.Start()
		for i := 0; i < cellIters; i++ {
			c.EncryptInPlace(payload)
		}
		elapsed := sw.ElapsedNanos()
		fmt.Fprintf(w, "%d bytes, misaligned by %d: %.2f nsec per byte\n",
			cellPayloadLen, misalign,
			float64(elapsed)/float64(cellIters*cellPayloadLen))
	}
}
