// Copyright 2025 The Ordtree Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package ordtree provides a generic, in-memory, ordered tree.
//
// A Node holds a single value and an ordered collection of exclusively-owned
// child nodes. Children are attached with Append/AppendNode, which store an
// independent copy of the argument and return the stored child so that
// chained calls build successively deeper paths. The package provides lazy
// preorder (DFS) and level-order (BFS) iteration, recursive search, and
// recursive removal by value.
//
// Equality between nodes is shallow: it considers only the stored values and
// ignores subtree shape. Deep duplication is explicit via Clone.
//
// No operation is safe for concurrent use, and no structural mutation
// (Append, AppendNode, RemoveRecursive) may occur while an iterator over the
// same subtree is live.
package ordtree

import (
	"slices"

	"github.com/ordtree/ordtree/internal/invariants"
)

// Node is a value plus an ordered collection of owned child nodes.
//
// A node exclusively owns its children: attaching a node stores a deep copy,
// so no node is ever reachable from two parents and the structure is a rooted
// tree by construction. Duplicate values are permitted among siblings.
//
// The zero Node is a leaf holding T's zero value and is ready for use.
type Node[T comparable] struct {
	value    T
	children []*Node[T]
}

// New returns a new leaf node holding v.
func New[T comparable](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Value returns the stored value.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue replaces the stored value. It never affects the children.
func (n *Node[T]) SetValue(v T) {
	n.value = v
}

// Len returns the number of direct children.
func (n *Node[T]) Len() int {
	return len(n.children)
}

// ChildAt returns the i-th direct child, in insertion order. The index must
// be in [0, Len).
func (n *Node[T]) ChildAt(i int) *Node[T] {
	return n.children[i]
}

// Equal reports whether n and other hold equal values. The comparison is
// shallow: children and subtree shape are ignored, so two nodes with equal
// values but entirely different subtrees compare equal. A nil other is never
// equal.
func (n *Node[T]) Equal(other *Node[T]) bool {
	return other != nil && n.value == other.value
}

// EqualValue reports whether n's value equals v.
func (n *Node[T]) EqualValue(v T) bool {
	return n.value == v
}

// Append adds a new node holding v as the last child of n and returns the
// newly stored child. Because the child is returned, calls chain into paths:
//
//	root.Append(a).Append(b)
//
// makes b a child of a, which is a child of root.
func (n *Node[T]) Append(v T) *Node[T] {
	child := New(v)
	n.children = append(n.children, child)
	return child
}

// AppendNode adds an independent deep copy of c as the last child of n and
// returns the stored copy. The caller's c is never linked into n's subtree
// and is not mutated; later changes to either tree do not affect the other.
func (n *Node[T]) AppendNode(c *Node[T]) *Node[T] {
	if c == nil {
		panic("ordtree: append of nil node")
	}
	child := c.Clone()
	n.children = append(n.children, child)
	return child
}

// Clone returns an independent deep copy of the subtree rooted at n. Mutating
// the copy's values or structure never affects the original, and vice versa.
func (n *Node[T]) Clone() *Node[T] {
	c := &Node[T]{value: n.value}
	if len(n.children) > 0 {
		c.children = make([]*Node[T], len(n.children))
		for i := range n.children {
			c.children[i] = n.children[i].Clone()
		}
	}
	return c
}

// Contains reports whether some direct child of n holds v. It does not
// consider n's own value and does not descend past the direct children; use
// ContainsRecursive to search the whole subtree.
func (n *Node[T]) Contains(v T) bool {
	return slices.ContainsFunc(n.children, func(c *Node[T]) bool {
		return c.value == v
	})
}

// ContainsRecursive reports whether v appears anywhere in the subtree rooted
// at n, including n's own value.
func (n *Node[T]) ContainsRecursive(v T) bool {
	for it := n.NewBFSIter(); it.Valid(); it.Next() {
		if it.Node().value == v {
			return true
		}
	}
	return false
}

// RemoveRecursive detaches, at every level strictly below n, every child
// whose value equals v, and returns the number of nodes removed. It never
// removes n itself, even if n's value equals v.
//
// Removal is bottom-up: each direct child's subtree is processed before the
// child itself is considered, so deeper matches are counted and unlinked
// first. Detaching a matching child severs its whole subtree at once;
// descendants of a removed child are not counted again.
func (n *Node[T]) RemoveRecursive(v T) int {
	removed := 0
	for _, c := range n.children {
		removed += c.RemoveRecursive(v)
	}
	before := len(n.children)
	n.children = slices.DeleteFunc(n.children, func(c *Node[T]) bool {
		return c.value == v
	})
	removed += before - len(n.children)
	if invariants.Enabled {
		n.verify()
	}
	return removed
}

// verify checks structural invariants of the direct child collection.
func (n *Node[T]) verify() {
	for _, c := range n.children {
		if c == nil {
			panic("ordtree: nil child")
		}
	}
}
