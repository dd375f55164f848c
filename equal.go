// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ivec

import (
	"reflect"
)

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}

// equal compares two values of type V for equality.
// If V implements Equaler[V], that custom equality method is used.
// Otherwise, [reflect.DeepEqual] is used as a fallback.
func equal[V any](v1, v2 V) bool {
	// you can't assert directly on a type parameter
	if v1, ok := any(v1).(Equaler[V]); ok {
		return v1.Equal(v2)
	}
	// fallback
	return reflect.DeepEqual(v1, v2)
}

// Equal compares the two sequences element-wise in logical order.
//
// The physical layout is representation, not identity, a prepend-built
// and an append-built sequence with the same elements are equal even
// though their offsets and trie shapes differ.
//
// Values are compared with [Equaler] when V implements it,
// with [reflect.DeepEqual] otherwise.
func (a *Array[V]) Equal(o *Array[V]) bool {
	if o == nil {
		return false
	}
	if a.length != o.length {
		return false
	}

	// same root, same offset, same elements
	if a.root == o.root && a.offset == o.offset {
		return true
	}

	for i, val := range a.All() {
		if !equal(val, o.MustGet(i)) {
			return false
		}
	}

	return true
}
