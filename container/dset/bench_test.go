// Copyright (c) 2026 The cellbench developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dset

import (
	"encoding/binary"
	"fmt"
	"testing"
)

// BenchmarkAdd benchmarks adding keys to sets with various capacity
// hints.
func BenchmarkAdd(b *testing.B) {
	for _, capacity := range []int{1000, 4000, 100000} {
		b.Run(fmt.Sprintf("capacity=%d", capacity), func(b *testing.B) {
			set := NewSet(capacity)

			b.ResetTimer()
			b.ReportAllocs()
			var key [20]byte
			for i := 0; i < b.N; i++ {
				binary.LittleEndian.PutUint32(key[:4], uint32(i))
				set.Add(key[:])
			}
		})
	}
}

// BenchmarkContains benchmarks membership queries against a set
// loaded to its capacity hint for both member and non-member keys.
func BenchmarkContains(b *testing.B) {
	const capacity = 4000
	set := NewSet(capacity)
	var key [20]byte
	for i := 0; i < capacity; i++ {
		binary.LittleEndian.PutUint32(key[:4], uint32(i))
		set.Add(key[:])
	}

	b.Run("member", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			binary.LittleEndian.PutUint32(key[:4], uint32(i%capacity))
			set.Contains(key[:])
		}
	})
	b.Run("nonmember", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			binary.LittleEndian.PutUint32(key[:4], uint32(i))
			key[19] = 0xff
			set.Contains(key[:])
		}
	})
}
