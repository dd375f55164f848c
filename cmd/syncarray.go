package main

import (
	"sync"
	"sync/atomic"

	"github.com/gaissmai/ivec"
)

type SyncArray[V any] struct {
	atomic.Pointer[ivec.Array[V]]
	sync.Mutex
}

func NewSyncArray[V any]() *SyncArray[V] {
	lf := new(SyncArray[V])
	lf.Store(ivec.New[V]())
	return lf
}

func SyncArrayFrom[V any](a *ivec.Array[V]) *SyncArray[V] {
	lf := new(SyncArray[V])
	lf.Store(a)
	return lf
}

func (lf *SyncArray[V]) Len() int {
	return lf.Load().Len()
}

func (lf *SyncArray[V]) Get(i int) (V, bool) {
	return lf.Load().Get(i)
}

func (lf *SyncArray[V]) Append(val V) {
	lf.Lock() // acquire writer lock to exclude other writers
	defer lf.Unlock()

	oldPtr := lf.Load()          // get current sequence version
	newPtr := oldPtr.Append(val) // create new persistent sequence version

	lf.Store(newPtr) // atomically publish new version for readers
}

func (lf *SyncArray[V]) Prepend(val V) {
	lf.Lock()
	defer lf.Unlock()

	oldPtr := lf.Load()
	newPtr := oldPtr.Prepend(val)

	lf.Store(newPtr)
}

func (lf *SyncArray[V]) Set(i int, val V) bool {
	lf.Lock()
	defer lf.Unlock()

	oldPtr := lf.Load()
	newPtr, ok := oldPtr.Set(i, val)

	lf.Store(newPtr)
	return ok
}

func (lf *SyncArray[V]) DropFirst() {
	lf.Lock()
	defer lf.Unlock()

	oldPtr := lf.Load()
	newPtr := oldPtr.DropFirst()

	lf.Store(newPtr)
}

func (lf *SyncArray[V]) DropLast() {
	lf.Lock()
	defer lf.Unlock()

	oldPtr := lf.Load()
	newPtr := oldPtr.DropLast()

	lf.Store(newPtr)
}
