// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ivec

import "iter"

// All returns an iterator over all index-value pairs
// in ascending logical order.
//
// This can be used directly with a for-range loop;
// the Go compiler provides the yield function implicitly:
//
//	for i, v := range a.All() {
//	    fmt.Println(i, v)
//	}
//
// If you break or return from the loop, iteration stops early as
// expected. The sequence is immutable, deriving new sequences during
// iteration is fine, the loop still sees the receiver unchanged.
func (a *Array[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i := range a.length {
			if !yield(i, a.MustGet(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over all index-value pairs
// in descending logical order.
func (a *Array[V]) Backward() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i := a.length - 1; i >= 0; i-- {
			if !yield(i, a.MustGet(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in ascending logical
// order, without the indices.
func (a *Array[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range a.length {
			if !yield(a.MustGet(i)) {
				return
			}
		}
	}
}

// Fold reduces the sequence to a single accumulator value. The combine
// function is applied to the running accumulator and each element in
// ascending logical order, starting with initial.
//
// Fold visits every element exactly once, the result is deterministic
// for a given sequence value, folding the same sequence twice yields
// the identical result.
func Fold[V, A any](a *Array[V], combine func(A, V) A, initial A) A {
	acc := initial
	for _, val := range a.All() {
		acc = combine(acc, val)
	}
	return acc
}
