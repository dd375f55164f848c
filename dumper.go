// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ivec

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type nodeType byte

const (
	nullNode         nodeType = iota // empty node
	leafNode                         // only leaves, no child nodes
	fullNode                         // leaves and child nodes
	intermediateNode                 // only child nodes, no leaves
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// digitPath is the sequence of child slot addrs from the root to a node.
type digitPath [maxTreeDepth]uint8

// dumpString is just a wrapper for dump.
func (a *Array[V]) dumpString() string {
	w := new(strings.Builder)
	a.dump(w)

	return w.String()
}

// dump the sequence structure and all the nodes to w.
func (a *Array[V]) dump(w io.Writer) {
	if a == nil || a.root == nil {
		return
	}

	nodes, leaves, maxDepth := a.root.stats()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "### len(%d), offset(%d), nodes(%d), leaves(%d), maxdepth(%d)",
		a.length, a.offset, nodes, leaves, maxDepth)

	a.root.dumpRec(w, digitPath{}, 0)
}

// dumpRec, rec-descent the trie.
func (n *node[V]) dumpRec(w io.Writer, path digitPath, depth int) {
	// dump this node
	n.dump(w, path, depth)

	// the node may have childs, rec-descent down
	for i, addr := range n.children.All() {
		path[depth] = addr

		if kid, ok := n.children.Items[i].(*node[V]); ok {
			kid.dumpRec(w, path, depth+1)
		}
	}
}

// dump the node to w.
func (n *node[V]) dump(w io.Writer, path digitPath, depth int) {
	indent := strings.Repeat(".", depth)

	// node type with depth and digit path.
	fmt.Fprintf(w, "\n%s[%s] depth: %d path: [%s]\n",
		indent, n.hasType(), depth, digitPathFmt(path, depth))

	if n.children.Len() != 0 {
		nodeAddrs := make([]uint8, 0, 1<<strideBits)
		leafAddrs := make([]uint8, 0, 1<<strideBits)

		// the node has recursive child nodes or path-compressed leaves
		for i, addr := range n.children.All() {
			switch n.children.Items[i].(type) {
			case *node[V]:
				nodeAddrs = append(nodeAddrs, addr)
				continue

			case *leaf[V]:
				leafAddrs = append(leafAddrs, addr)

			default:
				panic("logic error, wrong node type")
			}
		}

		if nodeCount := len(nodeAddrs); nodeCount > 0 {
			// print the childs for this node
			fmt.Fprintf(w, "%schilds(#%d):", indent, nodeCount)

			for _, addr := range nodeAddrs {
				fmt.Fprintf(w, " %d", addr)
			}

			fmt.Fprintln(w)
		}

		if leafCount := len(leafAddrs); leafCount > 0 {
			// print the path-compressed leaves for this node,
			// the key is shown as signed physical index
			fmt.Fprintf(w, "%sleaves(#%d):", indent, leafCount)

			for _, addr := range leafAddrs {
				kid := n.children.MustGet(addr).(*leaf[V])
				fmt.Fprintf(w, " %d:{%d, %v}", addr, int64(kid.key), kid.value)
			}

			fmt.Fprintln(w)
		}
	}
}

// hasType returns the nodeType.
func (n *node[V]) hasType() nodeType {
	var nodes, leaves int

	for _, kidAny := range n.children.Items {
		switch kidAny.(type) {
		case *node[V]:
			nodes++

		case *leaf[V]:
			leaves++

		default:
			panic("logic error, wrong node type")
		}
	}

	switch {
	case nodes == 0 && leaves == 0:
		return nullNode
	case nodes == 0:
		return leafNode
	case leaves == 0:
		return intermediateNode
	default:
		return fullNode
	}
}

// digitPathFmt, the digits from the root down to the node, dotted.
func digitPathFmt(path digitPath, depth int) string {
	buf := new(strings.Builder)

	for i, d := range path[:depth] {
		if i != 0 {
			buf.WriteString(".")
		}

		buf.WriteString(strconv.Itoa(int(d)))
	}

	return buf.String()
}

// String implements Stringer for nodeType.
func (nt nodeType) String() string {
	switch nt {
	case nullNode:
		return "NULL"
	case leafNode:
		return "LEAF"
	case fullNode:
		return "FULL"
	case intermediateNode:
		return "IMED"
	default:
		return "unreachable"
	}
}
