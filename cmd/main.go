package main

import (
	"math/rand/v2"
)

var (
	prng      = rand.New(rand.NewPCG(42, 42))
	arr       = NewSyncArray[int]()
	idxProbes = []int{}
)

func main() {
	for range 10_000 {
		arr.Append(prng.Int())
	}

	for range 11 {
		idxProbes = append(idxProbes, prng.IntN(arr.Len()))
	}

	// one writer derives new versions while the hot loop
	// probes the current version lock-free
	go func() {
		for i := range 1_000_000 {
			arr.Append(i)
			arr.DropFirst()
		}
	}()

	for i := range 1_000_000_000 {
		arr.Get(idxProbes[i&10])
	}
}
