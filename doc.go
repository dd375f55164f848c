// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package ivec provides Array, an immutable persistent sequence
// backed by a bit-partitioned trie with structural sharing.
//
// Every mutating operation is copy-on-write: only the nodes along the
// touched digit path are cloned, everything else is shared between the
// receiver and the derived sequence. Deriving is therefore O(depth)
// with a branching factor of 32, in practice a handful of small
// allocations per operation.
//
// A signed offset decouples the logical indices from the trie keys, so
// Prepend is as cheap as Append, the elements are never renumbered.
//
// Immutability is the concurrency story: an *Array can be read from
// any number of goroutines without locks while writers derive and
// publish new values, e.g. with [sync/atomic.Pointer].
package ivec
