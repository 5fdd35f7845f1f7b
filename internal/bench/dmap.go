// Copyright (c) 2026 The cellbench developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"io"

	"github.com/decred/dcrd/crypto/rand"

	"github.com/cellbench/cellbench/container/dmap"
	"github.com/cellbench/cellbench/container/dset"
	"github.com/cellbench/cellbench/internal/perftime"
)

const (
	// dmapNumElements is the number of random digests in each sample
	// pool and the capacity hint for the probabilistic set.
	dmapNumElements = 4000

	// dmapNumIters is the number of passes over the sample pools per
	// timed phase.  Re-inserting the same keys repeatedly measures
	// sustained insert cost rather than growth cost.
	dmapNumIters = 10000

	// dmapNumFPProbes is the number of fresh random digests queried
	// against the loaded set to estimate its false-positive rate.
	dmapNumFPProbes = 1000000
)

// randomDigests returns n independently drawn random digests.  The
// pools drawn for the member and non-member samples are not checked
// for overlap; collisions in a 20-byte space are treated as
// statistical noise.
func randomDigests(n int) []dmap.Digest {
	digests := make([]dmap.Digest, n)
	for i := range digests {
		rand.Read(digests[i][:])
	}
	return digests
}

// benchDMap compares insertion and lookup cost of the exact digest
// map against the probabilistic digest set, then empirically
// estimates the set's false-positive rate with fresh random probes.
//
// Output is positional: the set's bit-table size, four integer phase
// durations in microseconds (map insert, map lookup, set insert, set
// lookup), the lookup liveness accumulator prefixed with "--", and
// the estimated false-positive fraction prefixed with "++".
func benchDMap(w io.Writer) {
	samplesA := randomDigests(dmapNumElements)
	samplesB := randomDigests(dmapNumElements)

	m := dmap.NewMap[int]()
	set := dset.NewSet(dmapNumElements)
	fmt.Fprintf(w, "nbits=%d\n", set.NBits())

	sw := perftime.Start()
	for i := 0; i < dmapNumIters; i++ {
		for j := range samplesA {
			m.Put(samplesA[j], 1)
		}
	}
	mapInsert := sw.ElapsedMicros()

	// Pool B holds digests that were never inserted, exercising the
	// negative lookup path.
	sw = perftime.Start()
	for i := 0; i < dmapNumIters; i++ {
		for j := range samplesA {
			m.Get(samplesA[j])
		}
		for j := range samplesB {
			m.Get(samplesB[j])
		}
	}
	mapLookup := sw.ElapsedMicros()

	sw = perftime.Start()
	for i := 0; i < dmapNumIters; i++ {
		for j := range samplesA {
			set.Add(samplesA[j][:])
		}
	}
	setInsert := sw.ElapsedMicros()

	// The accumulator is a liveness signal only; it is never compared
	// against an expected count.
	var positives uint64
	sw = perftime.Start()
	for i := 0; i < dmapNumIters; i++ {
		for j := range samplesA {
			if set.Contains(samplesA[j][:]) {
				positives++
			}
		}
		for j := range samplesB {
			if set.Contains(samplesB[j][:]) {
				positives++
			}
		}
	}
	setLookup := sw.ElapsedMicros()

	// None of the fresh probes were ever inserted (up to negligible
	// random collisions), so the positive fraction estimates the
	// set's false-positive rate.
	var falsePositives int
	var probe [dmap.DigestSize]byte
	for i := 0; i < dmapNumFPProbes; i++ {
		rand.Read(probe[:])
		if set.Contains(probe[:]) {
			falsePositives++
		}
	}

	fmt.Fprintf(w, "%d\n", mapInsert)
	fmt.Fprintf(w, "%d\n", mapLookup)
	fmt.Fprintf(w, "%d\n", setInsert)
	fmt.Fprintf(w, "%d\n", setLookup)
	fmt.Fprintf(w, "-- %d\n", positives)
	fmt.Fprintf(w, "++ %f\n", float64(falsePositives)/dmapNumFPProbes)
}
