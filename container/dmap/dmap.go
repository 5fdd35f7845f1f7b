// Copyright (c) 2026 The cellbench developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dmap provides an exact-membership associative container
// keyed by digest-sized identifiers.
package dmap

// DigestSize is the length in bytes of the identifiers used as map
// keys.
const DigestSize = 20

// Digest is a fixed-size identifier used as a map key.  Keys compare
// by exact byte equality, so lookups have no false positives or false
// negatives.
type Digest = [DigestSize]byte

// Map is a generic type associating digest keys with values of an
// arbitrary type with exact key equality.  Unlike a probabilistic
// set, membership answers are always exact, at the cost of storing
// every key in full.
//
// Map is not safe for concurrent access.  NewMap must be used to
// create a usable map since the zero value of this struct is not
// valid.
type Map[V any] struct {
	items map[Digest]V
}

// NewMap returns an initialized empty map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{items: make(map[Digest]V)}
}

// Put associates the provided key with the provided value, replacing
// any existing association for the key.
func (m *Map[V]) Put(key Digest, value V) {
	m.items[key] = value
}

// Get returns the value associated with the provided key along with
// whether or not the key is a member of the map.  The zero value of
// the value type is returned for keys that are not members.
func (m *Map[V]) Get(key Digest) (V, bool) {
	value, ok := m.items[key]
	return value, ok
}

// Has returns whether or not the provided key is a member of the map.
func (m *Map[V]) Has(key Digest) bool {
	_, ok := m.items[key]
	return ok
}

// Delete removes any association for the provided key.  Deleting a
// key that is not a member is a no-op.
func (m *Map[V]) Delete(key Digest) {
	delete(m.items, key)
}

// Len returns the number of keys in the map.
func (m *Map[V]) Len() int {
	return len(m.items)
}
