// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden implements a simple and slow indexed sequence as a
// plain slice, a golden reference for the persistent trie-backed Array.
package golden

// Seq is a simple and slow indexed sequence with payload V.
// The methods mutate the receiver in place, it is a test oracle,
// not a persistent data structure.
type Seq[V any] []V

// Len returns the number of elements.
func (g *Seq[V]) Len() int {
	return len(*g)
}

// Get returns the value at index i, ok is false if i is out of range.
func (g *Seq[V]) Get(i int) (val V, ok bool) {
	if i < 0 || i >= len(*g) {
		return val, false
	}
	return (*g)[i], true
}

// Set replaces the value at index i, it reports whether i was in range.
func (g *Seq[V]) Set(i int, val V) bool {
	if i < 0 || i >= len(*g) {
		return false
	}
	(*g)[i] = val
	return true
}

// Prepend inserts val as new first element.
func (g *Seq[V]) Prepend(val V) {
	*g = append(Seq[V]{val}, *g...)
}

// Append inserts val as new last element.
func (g *Seq[V]) Append(val V) {
	*g = append(*g, val)
}

// Head returns the first element, ok is false if the sequence is empty.
func (g *Seq[V]) Head() (val V, ok bool) {
	return g.Get(0)
}

// Last returns the last element, ok is false if the sequence is empty.
func (g *Seq[V]) Last() (val V, ok bool) {
	return g.Get(len(*g) - 1)
}

// DropFirst removes the first element, a no-op on the empty sequence.
func (g *Seq[V]) DropFirst() {
	if len(*g) > 0 {
		*g = append(Seq[V]{}, (*g)[1:]...)
	}
}

// DropLast removes the last element, a no-op on the empty sequence.
func (g *Seq[V]) DropLast() {
	if len(*g) > 0 {
		*g = (*g)[:len(*g)-1]
	}
}

// Clone returns an independent copy of the sequence.
func (g *Seq[V]) Clone() Seq[V] {
	return append(Seq[V]{}, *g...)
}
