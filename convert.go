// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ivec

// FromSlice returns a new sequence with the elements of vals in the
// same order. A nil or empty slice yields the empty sequence.
//
// The elements are copied by assignment, the slice is not referenced
// afterwards.
func FromSlice[V any](vals []V) *Array[V] {
	a := &Array[V]{}
	for _, val := range vals {
		a = a.Append(val)
	}
	return a
}

// ToSlice returns the elements in logical order as a new slice, the
// sequence is unchanged. The result never aliases internal storage,
// for an empty sequence the result is empty but not nil.
func (a *Array[V]) ToSlice() []V {
	out := make([]V, 0, a.length)
	for _, val := range a.All() {
		out = append(out, val)
	}
	return out
}
