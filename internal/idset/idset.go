// Package idset provides a sparse set of small integer IDs with O(1)
// insertion, membership testing, and a canonical hash of its contents.
//
// It backs ε-closure computation and NFA subset construction (closures are
// computed afresh for each move and are not memoized): a DFA state is
// a set of NFA state IDs, and subset construction needs to test whether a
// given set of NFA states has already been turned into a DFA state. The
// dense/sparse pairing gives O(1) membership and insertion while Keys keeps
// elements sorted on demand so two structurally equal sets hash identically.
package idset

import "sort"

// Set is a set of uint32 IDs bounded by a fixed universe size, fixed at
// construction (the NFA's state count never changes once built).
type Set struct {
	sparse []uint32 // maps id -> index in dense, valid only where dense confirms it
	dense  []uint32 // the actual members, insertion order
}

// New creates an empty Set over the universe [0, capacity).
func New(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, 8),
	}
}

// Add inserts id into the set. A no-op if id is already present.
func (s *Set) Add(id uint32) {
	if s.Contains(id) {
		return
	}
	s.sparse[id] = uint32(len(s.dense))
	s.dense = append(s.dense, id)
}

// Contains reports whether id is a member of the set.
func (s *Set) Contains(id uint32) bool {
	if int(id) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id]
	return int(idx) < len(s.dense) && s.dense[idx] == id
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.dense) }

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool { return len(s.dense) == 0 }

// Each calls f once per member, in insertion order.
func (s *Set) Each(f func(id uint32)) {
	for _, id := range s.dense {
		f(id)
	}
}

// SortedKeys returns the set's members in ascending order. The result is a
// fresh slice; mutating it does not affect the set. Two sets with identical
// membership produce identical SortedKeys slices, which is what subset
// construction needs to deduplicate DFA states by the NFA-state-id vector
// they represent (spec step: "Identify DFA states by the hash of their
// sorted NFA-state-id vector").
func (s *Set) SortedKeys() []uint32 {
	keys := make([]uint32, len(s.dense))
	copy(keys, s.dense)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Key returns a string suitable for use as a Go map key, uniquely
// identifying the set's membership. Two sets with the same members produce
// the same key regardless of insertion order.
func (s *Set) Key() string {
	keys := s.SortedKeys()
	buf := make([]byte, 0, len(keys)*5)
	for _, k := range keys {
		buf = append(buf, byte(k), byte(k>>8), byte(k>>16), byte(k>>24), ',')
	}
	return string(buf)
}
