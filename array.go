// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ivec

import (
	"fmt"
)

// Array is an immutable, persistent sequence with payload V, backed by
// a bit-partitioned trie with a branching factor of 32.
//
// The zero value is an empty sequence, ready to use.
//
// All mutating methods are copy-on-write, they leave the receiver
// untouched and return a derived *Array that shares every trie node not
// on the copied path with the receiver. An Array can therefore be
// handed out, stored and read concurrently without locks, writers
// derive new values instead of changing shared state.
//
// The logical indices are dense from 0 to Len()-1. A signed offset maps
// them to physical trie keys, so Prepend just shifts the offset and the
// elements are never renumbered.
//
// If the payload type V contains pointers or needs deep copying,
// it must implement the [Cloner] interface to support correct cloning.
type Array[V any] struct {
	root *node[V]

	// the physical index of logical index 0, negative after prepends
	offset int

	// number of elements
	length int
}

// New returns an empty sequence, ready to use.
func New[V any]() *Array[V] {
	return &Array[V]{}
}

// Len returns the number of elements in the sequence.
func (a *Array[V]) Len() int {
	return a.length
}

// Get returns the value at logical index i and true, or the zero value
// and false if i is out of range. Indices are never clamped.
func (a *Array[V]) Get(i int) (val V, ok bool) {
	if i < 0 || i >= a.length {
		return val, false
	}

	val, ok = a.root.get(physKey(a.offset + i))
	if !ok {
		// every in-bounds index must have a leaf
		panic("logic error, in-bounds index not found in trie")
	}
	return val, true
}

// MustGet is like Get but panics if i is out of range.
func (a *Array[V]) MustGet(i int) V {
	val, ok := a.Get(i)
	if !ok {
		panic(fmt.Sprintf("ivec: index out of range [%d] with length %d", i, a.length))
	}
	return val
}

// Set returns a derived sequence with the value at logical index i
// replaced by val. The receiver is unchanged, both sequences share
// every trie node not on the copied path.
//
// If i is out of range the receiver is returned unchanged along with
// false. Indices are never clamped.
func (a *Array[V]) Set(i int, val V) (*Array[V], bool) {
	if i < 0 || i >= a.length {
		return a, false
	}

	return &Array[V]{
		root:   a.root.insertPersist(cloneFnFactory[V](), physKey(a.offset+i), val),
		offset: a.offset,
		length: a.length,
	}, true
}

// Update returns a derived sequence with the value at logical index i
// replaced by cb applied to the current value. The receiver is
// unchanged.
//
// If i is out of range the receiver is returned unchanged along with
// false, cb is not called.
func (a *Array[V]) Update(i int, cb func(V) V) (*Array[V], bool) {
	val, ok := a.Get(i)
	if !ok {
		return a, false
	}
	return a.Set(i, cb(val))
}

// Prepend returns a derived sequence with val as new first element, the
// logical indices of all other elements shift up by one. The receiver
// is unchanged.
//
// Prepend shifts the offset and inserts at the new first physical
// index, it is O(depth) just like Append, no element is renumbered.
func (a *Array[V]) Prepend(val V) *Array[V] {
	return &Array[V]{
		root:   a.root.insertPersist(cloneFnFactory[V](), physKey(a.offset-1), val),
		offset: a.offset - 1,
		length: a.length + 1,
	}
}

// Append returns a derived sequence with val as new last element, the
// logical indices of all other elements are unchanged. The receiver is
// unchanged.
func (a *Array[V]) Append(val V) *Array[V] {
	return &Array[V]{
		root:   a.root.insertPersist(cloneFnFactory[V](), physKey(a.offset+a.length), val),
		offset: a.offset,
		length: a.length + 1,
	}
}

// Head returns the first element and true, or the zero value and false
// if the sequence is empty.
func (a *Array[V]) Head() (V, bool) {
	return a.Get(0)
}

// Last returns the last element and true, or the zero value and false
// if the sequence is empty.
func (a *Array[V]) Last() (V, bool) {
	return a.Get(a.length - 1)
}

// DropFirst returns a derived sequence without the first element, the
// logical indices of the remaining elements shift down by one. The
// receiver is unchanged.
//
// DropFirst on an empty sequence is a no-op and returns the receiver.
func (a *Array[V]) DropFirst() *Array[V] {
	switch a.length {
	case 0:
		return a
	case 1:
		return &Array[V]{}
	}

	root, exists := a.root.deletePersist(cloneFnFactory[V](), physKey(a.offset))
	if !exists {
		panic("logic error, first element not found in trie")
	}

	return &Array[V]{
		root:   root,
		offset: a.offset + 1,
		length: a.length - 1,
	}
}

// DropLast returns a derived sequence without the last element. The
// receiver is unchanged.
//
// DropLast on an empty sequence is a no-op and returns the receiver.
func (a *Array[V]) DropLast() *Array[V] {
	switch a.length {
	case 0:
		return a
	case 1:
		return &Array[V]{}
	}

	root, exists := a.root.deletePersist(cloneFnFactory[V](), physKey(a.offset+a.length-1))
	if !exists {
		panic("logic error, last element not found in trie")
	}

	return &Array[V]{
		root:   root,
		offset: a.offset,
		length: a.length - 1,
	}
}

// Concat returns a derived sequence with all elements of o appended to
// a, both inputs are unchanged. The result shares the trie of a, the
// elements of o are appended one by one.
func (a *Array[V]) Concat(o *Array[V]) *Array[V] {
	res := a
	for _, val := range o.All() {
		res = res.Append(val)
	}
	return res
}
