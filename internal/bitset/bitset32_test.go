// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

import (
	"math/bits"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestBitSet32ZeroValue(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("A zero value bitset must not panic: %v", r)
		}
	}()

	var b BitSet32

	b = 0
	b.MustSet(0)

	b = 0
	b.MustClear(31)

	b = 0
	b.Size()

	b = 0
	b.Test(17)

	b = 0
	b.FirstSet()

	b = 0
	b.NextSet(0)

	b = 0
	b.AsSlice(make([]uint8, 0, 32))

	b = 0
	b.All()

	b = 0
	_ = b.String()
}

func TestBitSet32Test(t *testing.T) {
	t.Parallel()

	var b BitSet32
	b.MustSet(7)

	if !b.Test(7) {
		t.Error("Test(7), expected true, got false")
	}
	if b.Test(6) {
		t.Error("Test(6), expected false, got true")
	}
	if b.Test(8) {
		t.Error("Test(8), expected false, got true")
	}

	b.MustClear(7)
	if b.Test(7) {
		t.Error("Test(7) after clear, expected false, got true")
	}
}

func TestBitSet32FirstSet(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		set     []uint8
		wantIdx uint8
		wantOk  bool
	}{
		{
			name:    "null",
			set:     []uint8{},
			wantIdx: 0,
			wantOk:  false,
		},
		{
			name:    "zero",
			set:     []uint8{0},
			wantIdx: 0,
			wantOk:  true,
		},
		{
			name:    "1,5",
			set:     []uint8{1, 5},
			wantIdx: 1,
			wantOk:  true,
		},
		{
			name:    "5,7",
			set:     []uint8{5, 7},
			wantIdx: 5,
			wantOk:  true,
		},
		{
			name:    "top bit",
			set:     []uint8{31},
			wantIdx: 31,
			wantOk:  true,
		},
	}

	for _, tc := range testCases {
		var b BitSet32
		for _, u := range tc.set {
			b.MustSet(u)
		}

		idx, ok := b.FirstSet()

		if ok != tc.wantOk {
			t.Errorf("FirstSet, %s: got ok: %v, want: %v", tc.name, ok, tc.wantOk)
		}

		if idx != tc.wantIdx {
			t.Errorf("FirstSet, %s: got idx: %d, want: %d", tc.name, idx, tc.wantIdx)
		}
	}
}

func TestBitSet32NextSet(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		//
		set   []uint8
		del   []uint8
		start uint8
		//
		wantIdx uint8
		wantOk  bool
	}{
		{
			name:    "null",
			set:     []uint8{},
			del:     []uint8{},
			start:   0,
			wantIdx: 0,
			wantOk:  false,
		},
		{
			name:    "zero",
			set:     []uint8{0},
			del:     []uint8{},
			start:   0,
			wantIdx: 0,
			wantOk:  true,
		},
		{
			name:    "skip deleted",
			set:     []uint8{1, 5},
			del:     []uint8{1},
			start:   0,
			wantIdx: 5,
			wantOk:  true,
		},
		{
			name:    "past last",
			set:     []uint8{1, 5},
			del:     []uint8{},
			start:   6,
			wantIdx: 0,
			wantOk:  false,
		},
		{
			name:    "start is set",
			set:     []uint8{13, 28},
			del:     []uint8{},
			start:   13,
			wantIdx: 13,
			wantOk:  true,
		},
		{
			name:    "top bit",
			set:     []uint8{31},
			del:     []uint8{},
			start:   2,
			wantIdx: 31,
			wantOk:  true,
		},
		{
			name:    "start out of range",
			set:     []uint8{3},
			del:     []uint8{},
			start:   32,
			wantIdx: 0,
			wantOk:  false,
		},
	}

	for _, tc := range testCases {
		var b BitSet32
		for _, u := range tc.set {
			b.MustSet(u)
		}
		for _, u := range tc.del {
			b.MustClear(u)
		}

		idx, ok := b.NextSet(tc.start)

		if ok != tc.wantOk {
			t.Errorf("NextSet, %s: got ok: %v, want: %v", tc.name, ok, tc.wantOk)
		}

		if idx != tc.wantIdx {
			t.Errorf("NextSet, %s: got idx: %d, want: %d", tc.name, idx, tc.wantIdx)
		}
	}
}

func TestBitSet32AsSliceAll(t *testing.T) {
	t.Parallel()

	prng := rand.New(rand.NewPCG(42, 42))

	for range 10_000 {
		var b BitSet32
		want := []uint8{}

		for _, u := range prng.Perm(32)[:prng.IntN(32)] {
			b.MustSet(uint8(u))
			want = append(want, uint8(u))
		}
		slices.Sort(want)

		buf := make([]uint8, 0, 32)
		got := b.AsSlice(buf)
		if !slices.Equal(want, got) {
			t.Fatalf("AsSlice, want: %v, got: %v", want, got)
		}

		got = b.All()
		if !slices.Equal(want, got) {
			t.Fatalf("All, want: %v, got: %v", want, got)
		}

		if b.Size() != len(want) {
			t.Fatalf("Size, want: %d, got: %d", len(want), b.Size())
		}

		if b.IsEmpty() != (len(want) == 0) {
			t.Fatalf("IsEmpty, want: %v, got: %v", len(want) == 0, b.IsEmpty())
		}
	}
}

func TestBitSet32Rank0(t *testing.T) {
	t.Parallel()

	prng := rand.New(rand.NewPCG(42, 42))

	for range 10_000 {
		var b BitSet32
		for range prng.IntN(32) {
			b.MustSet(uint8(prng.IntN(32)))
		}

		// Rank0 must be equal to the popcount of the bits
		// up to and including idx, minus one.
		for _, idx := range b.All() {
			want := bits.OnesCount32(uint32(b)&(1<<(idx+1)-1)) - 1
			if got := b.Rank0(idx); got != want {
				t.Fatalf("Rank0(%d) of %v, want: %d, got: %d", idx, b.All(), want, got)
			}
		}
	}
}

func TestBitSet32String(t *testing.T) {
	t.Parallel()

	var b BitSet32
	b.MustSet(1)
	b.MustSet(9)
	b.MustSet(23)

	want := "[1 9 23]"
	if got := b.String(); got != want {
		t.Errorf("String, want: %s, got: %s", want, got)
	}
}
