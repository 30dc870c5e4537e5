// Copyright 2025 The Ordtree Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package ordtree

import (
	"iter"
	"slices"
)

// DFSIter is a lazy preorder iterator over a subtree: it yields a node before
// any of its descendants, and each child's subtree in insertion order. The
// frontier of not-yet-expanded nodes is kept in an explicit pending stack.
//
// A DFSIter is positioned at the starting node upon creation and is not
// restartable. It holds references into the tree: the tree must not be
// structurally mutated or released while the iterator is in use.
type DFSIter[T comparable] struct {
	// pending holds the frontier; the current node is the top (last element).
	pending []*Node[T]
}

// NewDFSIter returns a DFSIter over the subtree rooted at n, positioned at n
// itself.
func (n *Node[T]) NewDFSIter() DFSIter[T] {
	return DFSIter[T]{pending: []*Node[T]{n}}
}

// Valid reports whether the iterator is positioned at a node. Once Valid
// returns false the iterator is exhausted for good.
func (it *DFSIter[T]) Valid() bool {
	return len(it.pending) > 0
}

// Node returns the current node, or nil if the iterator is exhausted.
func (it *DFSIter[T]) Node() *Node[T] {
	if len(it.pending) == 0 {
		return nil
	}
	return it.pending[len(it.pending)-1]
}

// Next advances to the next node in preorder: the current node is popped and
// its direct children are pushed in reverse insertion order, so the first
// child is visited immediately next. Next on an exhausted iterator is a
// no-op.
func (it *DFSIter[T]) Next() {
	if len(it.pending) == 0 {
		return
	}
	n := it.pending[len(it.pending)-1]
	it.pending = it.pending[:len(it.pending)-1]
	for _, c := range slices.Backward(n.children) {
		it.pending = append(it.pending, c)
	}
}

// BFSIter is a lazy level-order iterator over a subtree: it yields all nodes
// at depth d before any node at depth d+1, siblings in insertion order. The
// frontier is kept in an explicit pending FIFO queue.
//
// A BFSIter is positioned at the starting node upon creation and is not
// restartable. It holds references into the tree: the tree must not be
// structurally mutated or released while the iterator is in use.
type BFSIter[T comparable] struct {
	// pending holds the frontier; pending[head] is the current node and
	// elements before head have already been visited.
	pending []*Node[T]
	head    int
}

// NewBFSIter returns a BFSIter over the subtree rooted at n, positioned at n
// itself.
func (n *Node[T]) NewBFSIter() BFSIter[T] {
	return BFSIter[T]{pending: []*Node[T]{n}}
}

// Valid reports whether the iterator is positioned at a node. Once Valid
// returns false the iterator is exhausted for good.
func (it *BFSIter[T]) Valid() bool {
	return it.head < len(it.pending)
}

// Node returns the current node, or nil if the iterator is exhausted.
func (it *BFSIter[T]) Node() *Node[T] {
	if it.head >= len(it.pending) {
		return nil
	}
	return it.pending[it.head]
}

// Next advances to the next node in level order: the current node is
// dequeued and its direct children are enqueued in insertion order. Next on
// an exhausted iterator is a no-op.
func (it *BFSIter[T]) Next() {
	if it.head >= len(it.pending) {
		return
	}
	n := it.pending[it.head]
	it.head++
	it.pending = append(it.pending, n.children...)
}

// DFS returns a range-over-func sequence visiting the subtree rooted at n in
// preorder. Each range statement starts a fresh traversal.
func (n *Node[T]) DFS() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for it := n.NewDFSIter(); it.Valid(); it.Next() {
			if !yield(it.Node()) {
				return
			}
		}
	}
}

// BFS returns a range-over-func sequence visiting the subtree rooted at n in
// level order. Each range statement starts a fresh traversal.
func (n *Node[T]) BFS() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for it := n.NewBFSIter(); it.Valid(); it.Next() {
			if !yield(it.Node()) {
				return
			}
		}
	}
}
