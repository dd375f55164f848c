// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ivec

import (
	"github.com/gaissmai/ivec/internal/sparse"
)

const (
	strideBits   = 5                 // one trie level indexes 5 bits of the key
	strideMask   = 1<<strideBits - 1 // 0b11111
	maxTreeDepth = 13                // ceil(64 / strideBits)
)

// node is an interior trie node with a popcount compressed
// sparse array of children.
//
// A child slot holds either a *node or a path compressed *leaf,
// the dynamic types are discriminated by type switch. Any other
// dynamic type is a logic error and panics.
type node[V any] struct {
	children sparse.Array32[any]
}

// leaf is a path compressed end point of the trie,
// it carries the full key, not just a suffix.
type leaf[V any] struct {
	key   uint64
	value V
}

func newLeaf[V any](key uint64, value V) *leaf[V] {
	return &leaf[V]{key: key, value: value}
}

// addrAt returns the 5 bit digit of key at depth, the child slot address.
//
// The digits are consumed least significant first, so the small dense
// keys of a sequence fan out across the root slots instead of piling
// up in a single spine.
func addrAt(key uint64, depth int) uint8 {
	return uint8(key >> (depth * strideBits) & strideMask)
}

// physKey maps a physical index, the sum of offset and logical index,
// to its trie key. The two's complement image keeps the digit
// arithmetic uniform for negative physical indices.
func physKey(phys int) uint64 {
	return uint64(int64(phys))
}

// cloneFlat returns a copy of n with all child slots shared.
//
// With a non-nil cloneFn the values of the direct leaf children are
// deep copied into fresh leaves, interior child nodes stay shared in
// any case, they are cloned lazily during descent.
func (n *node[V]) cloneFlat(cloneFn cloneFunc[V]) *node[V] {
	if n == nil {
		return nil
	}

	c := &node[V]{children: *n.children.Copy()}
	if cloneFn == nil {
		return c
	}

	for i, kidAny := range c.children.Items {
		if kid, ok := kidAny.(*leaf[V]); ok {
			c.children.Items[i] = newLeaf(kid.key, cloneFn(kid.value))
		}
	}
	return c
}

// insertPersist inserts or replaces the value for key with copy-on-write
// semantics and returns the new root. All nodes along the digit path are
// cloned, everything else is shared with the receiver.
//
// The receiver may be nil, the root of the empty trie.
func (n *node[V]) insertPersist(cloneFn cloneFunc[V], key uint64, val V) *node[V] {
	newRoot := n.cloneFlat(cloneFn)
	if newRoot == nil {
		newRoot = new(node[V])
	}

	// n is the cloned node under write at the current depth
	n = newRoot

	for depth := 0; depth < maxTreeDepth; depth++ {
		addr := addrAt(key, depth)

		if !n.children.Test(addr) {
			// free slot, insert the new leaf here
			n.children.InsertAt(addr, newLeaf(key, val))
			return newRoot
		}

		// kid is node or leaf at addr
		kid := n.children.MustGet(addr)

		switch kid := kid.(type) {
		case *node[V]:
			// clone the node along the traversed path
			kid = kid.cloneFlat(cloneFn)

			// replace the child with the clone and descend
			n.children.InsertAt(addr, kid)
			n = kid
			continue

		case *leaf[V]:
			// override the slot if the keys are equal, with a fresh
			// leaf, the shared leaf must not be mutated
			if kid.key == key {
				n.children.InsertAt(addr, newLeaf(key, val))
				return newRoot
			}

			// the keys differ, push the existing leaf one level down
			// into a new interior node and continue the descent,
			// two distinct keys separate after at most 13 digits
			newNode := new(node[V])
			newNode.children.InsertAt(addrAt(kid.key, depth+1), kid)

			n.children.InsertAt(addr, newNode)
			n = newNode

		default:
			panic("logic error, wrong node type")
		}
	}

	panic("unreachable")
}

// get returns the value for key. The receiver may be nil.
func (n *node[V]) get(key uint64) (val V, ok bool) {
	if n == nil {
		return
	}

	for depth := 0; depth < maxTreeDepth; depth++ {
		kid, ok := n.children.Get(addrAt(key, depth))
		if !ok {
			return val, false
		}

		switch kid := kid.(type) {
		case *node[V]:
			n = kid
			continue

		case *leaf[V]:
			if kid.key == key {
				return kid.value, true
			}
			return val, false

		default:
			panic("logic error, wrong node type")
		}
	}

	panic("unreachable")
}

// deletePersist removes key with copy-on-write semantics and returns the
// new root, nil if the trie is empty afterwards. All nodes along the
// digit path are cloned, everything else is shared with the receiver.
//
// The nodes along the path are purged and compressed bottom-up after the
// delete, empty nodes are removed and a node left with a single leaf is
// replaced by that leaf in its parent.
func (n *node[V]) deletePersist(cloneFn cloneFunc[V], key uint64) (newRoot *node[V], exists bool) {
	if n == nil {
		return nil, false
	}

	newRoot = n.cloneFlat(cloneFn)
	n = newRoot

	// the cloned nodes along the path, needed for purge and compress
	stack := [maxTreeDepth]*node[V]{}

	for depth := 0; depth < maxTreeDepth; depth++ {
		stack[depth] = n
		addr := addrAt(key, depth)

		if !n.children.Test(addr) {
			return newRoot, false
		}

		kid := n.children.MustGet(addr)

		switch kid := kid.(type) {
		case *node[V]:
			// clone the node along the traversed path and descend
			kid = kid.cloneFlat(cloneFn)
			n.children.InsertAt(addr, kid)
			n = kid
			continue

		case *leaf[V]:
			if kid.key != key {
				return newRoot, false
			}

			n.children.DeleteAt(addr)

			n.purgeAndCompress(stack[:depth], key)

			if newRoot.children.IsEmpty() {
				return nil, true
			}
			return newRoot, true

		default:
			panic("logic error, wrong node type")
		}
	}

	panic("unreachable")
}

// purgeAndCompress unwinds the stack of cloned parent nodes after a
// delete, removes empty nodes and restores the path compression, a node
// left with a single leaf child is replaced by that leaf in its parent.
//
// All nodes on the stack are fresh clones, mutating them is safe.
func (n *node[V]) purgeAndCompress(stack []*node[V], key uint64) {
	// unwind the stack
	for depth := len(stack) - 1; depth >= 0; depth-- {
		parent := stack[depth]
		addr := addrAt(key, depth)

		switch n.children.Len() {
		case 0:
			// empty node, delete it from parent
			parent.children.DeleteAt(addr)

		case 1:
			switch kid := n.children.Items[0].(type) {
			case *node[V]:
				// intermediate path node,
				// no further compression upwards the stack is possible
				return
			case *leaf[V]:
				// single leaf, hoist it one level up,
				// every key below n agrees with key on the digits above
				parent.children.InsertAt(addr, kid)
			default:
				panic("logic error, wrong node type")
			}

		default:
			// node still in use
			return
		}

		// climb up the stack
		n = parent
	}
}

// stats returns the number of interior nodes, leaves and the maximum
// node depth of the trie, gathered with an explicit work list instead
// of recursion. The receiver may be nil.
func (n *node[V]) stats() (nodes, leaves, maxDepth int) {
	if n == nil {
		return
	}

	type item struct {
		n     *node[V]
		depth int
	}

	todo := []item{{n, 0}}

	for len(todo) > 0 {
		it := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		nodes++
		maxDepth = max(maxDepth, it.depth)

		for _, kidAny := range it.n.children.Items {
			switch kid := kidAny.(type) {
			case *node[V]:
				todo = append(todo, item{kid, it.depth + 1})
			case *leaf[V]:
				leaves++
			default:
				panic("logic error, wrong node type")
			}
		}
	}

	return nodes, leaves, maxDepth
}
