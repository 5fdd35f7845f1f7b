// Copyright (c) 2026 The cellbench developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dset implements a space-efficient probabilistic set for
// digest-sized keys.
package dset

import (
	"math/bits"

	"github.com/dchest/siphash"
	"github.com/decred/dcrd/crypto/rand"
)

// References:
//   [LHSP] Less Hashing, Same Performance: Building a Better Bloom Filter
//      (Kirsch, Mitzenmacher)
//
//   [BFPV] Bloom Filters in Probabilistic Verification (Dillinger, Manolis)

const (
	// numProbes is the number of filter bits set and tested per key.
	numProbes = 4

	// bitsPerElementShift sizes the bit table at 32 bits per element
	// of the target capacity, rounded to a power of two.
	bitsPerElementShift = 5
)

// Set is a probabilistic membership structure for short binary keys.
// Membership tests may report false positives at a rate determined by
// the table size relative to the number of distinct keys added, but
// never report false negatives.  Unlike an aging filter, keys are
// never expired.
//
// The bit table size is fixed at construction from a target capacity
// hint and the probe indices are derived from a keyed siphash, so two
// sets constructed independently place the same key at different
// bits.
//
// Set is not safe for concurrent access.  NewSet must be used to
// create a usable set since the zero value of this struct is not
// valid.
type Set struct {
	// key0 and key1 seed the hash function so probe positions are not
	// predictable across instances.
	key0, key1 uint64

	// mask reduces derived indices onto the power-of-two bit table.
	mask uint64

	// data is the packed bit table.
	data []byte
}

// NewSet returns an empty set sized to hold approximately maxElements
// keys at a low false-positive rate.  The bit table is sized at 32
// bits per element of the capacity hint, rounded down to a power of
// two elements, which yields a false positive rate on the order of
// 0.2% or better at the hinted capacity.
func NewSet(maxElements int) *Set {
	if maxElements < 1 {
		maxElements = 1
	}
	log2 := uint(bits.Len(uint(maxElements))) - 1
	nbits := uint64(1) << (log2 + bitsPerElementShift)
	return &Set{
		key0: rand.Uint64(),
		key1: rand.Uint64(),
		mask: nbits - 1,
		data: make([]byte, nbits>>3),
	}
}

// NBits returns the size of the internal bit table in bits.  It is
// exposed for diagnostics and is always a power of two.
func (s *Set) NBits() uint64 {
	return s.mask + 1
}

// setBit unconditionally sets the bit at the provided index in the
// bit table.
func (s *Set) setBit(bit uint64) {
	s.data[bit>>3] |= 1 << (bit & 7)
}

// isBitSet returns whether or not the bit at the provided index in
// the bit table is set.
func (s *Set) isBitSet(bit uint64) bool {
	return s.data[bit>>3]&(1<<(bit&7)) != 0
}

// Add inserts the provided key into the set.  Adding a key that is
// already a member is a no-op at the bit level and is permitted.
//
// The probe indices are generated from a single 128-bit hash via
// enhanced double hashing, "f(i) = hash1 + i*hash2 + (i^3 - i)/6",
// which comes close to the accuracy of independent hash functions
// per [LHSP] while avoiding the observable accuracy limit of plain
// double hashing noted in [BFPV].  The closed formula is evaluated
// incrementally across the probes.
func (s *Set) Add(key []byte) {
	hash1, hash2 := siphash.Hash128(s.key0, s.key1, key)
	derivedIdx, acc := hash1, hash2
	for i := uint64(0); i < numProbes; i++ {
		s.setBit(derivedIdx & s.mask)
		derivedIdx += acc
		acc += i + 1
	}
}

// Contains returns the result of a probabilistic membership test for
// the provided key: true is returned for every key previously added,
// and with the false-positive probability of the table for keys that
// were never added.
func (s *Set) Contains(key []byte) bool {
	hash1, hash2 := siphash.Hash128(s.key0, s.key1, key)
	derivedIdx, acc := hash1, hash2
	for i := uint64(0); i < numProbes; i++ {
		if !s.isBitSet(derivedIdx & s.mask) {
			return false
		}
		derivedIdx += acc
		acc += i + 1
	}
	return true
}
