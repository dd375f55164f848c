// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitset implements a fixed size bitset, a mapping
// between small non-negative integers and boolean values.
//
// Studied [github.com/bits-and-blooms/bitset] inside out
// and rewrote the needed parts from scratch for this project.
//
// A trie node has at most 32 child slots, the whole set
// fits into a single machine word.
package bitset

import (
	"fmt"
	"math/bits"
)

// BitSet32 represents a fixed size bitset from [0..31]
type BitSet32 uint32

func (b *BitSet32) String() string {
	return fmt.Sprint(b.All())
}

// MustSet sets the bit, the shift amount is masked to [0..31],
// callers pass bits < 32 by construction!
func (b *BitSet32) MustSet(bit uint8) {
	*b |= 1 << (bit & 31)
}

// MustClear clears the bit, the shift amount is masked to [0..31],
// callers pass bits < 32 by construction!
func (b *BitSet32) MustClear(bit uint8) {
	*b &^= 1 << (bit & 31)
}

// Test if the bit is set.
func (b *BitSet32) Test(bit uint8) bool {
	return *b&(1<<(bit&31)) != 0 // &31 is shift-amount masking, no branch
}

// FirstSet returns the first bit set along with an ok code.
func (b *BitSet32) FirstSet() (first uint8, ok bool) {
	if x := bits.TrailingZeros32(uint32(*b)); x != 32 {
		return uint8(x), true
	}
	return
}

// NextSet returns the next bit set from the specified start bit,
// including possibly the current bit along with an ok code.
func (b *BitSet32) NextSet(bit uint8) (uint8, bool) {
	if bit > 31 {
		return 0, false
	}

	// mask off the bits below the start bit
	if word := uint32(*b) >> bit << bit; word != 0 {
		return uint8(bits.TrailingZeros32(word)), true
	}
	return 0, false
}

// AsSlice returns all set bits as slice of uint8 without
// heap allocations.
//
// This is faster than All, but also more dangerous,
// it panics if the capacity of buf is < b.Size()
func (b *BitSet32) AsSlice(buf []uint8) []uint8 {
	buf = buf[:cap(buf)] // use cap as max len

	size := 0
	for word := uint32(*b); word != 0; size++ {
		// panics if capacity of buf is exceeded.
		buf[size] = uint8(bits.TrailingZeros32(word))

		// clear the rightmost set bit
		word &= word - 1
	}

	buf = buf[:size]
	return buf
}

// All returns all set bits. This has a simpler API but is slower than AsSlice.
func (b *BitSet32) All() []uint8 {
	return b.AsSlice(make([]uint8, 0, 32))
}

// Rank0 returns the set bits up to and including to idx, minus 1.
//
// Rank0 is used in the hot path as slice index, it is only
// defined for an already set bit at idx.
func (b *BitSet32) Rank0(idx uint8) int {
	// shift left drops the bits above idx, popcount the rest
	return bits.OnesCount32(uint32(*b)<<(31-idx&31)) - 1
}

// IsEmpty returns true if no bit is set.
func (b *BitSet32) IsEmpty() bool {
	return *b == 0
}

// Size is the number of set bits (popcount).
func (b *BitSet32) Size() int {
	return bits.OnesCount32(uint32(*b))
}
