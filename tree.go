// Copyright 2025 The Ordtree Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package ordtree

// Tree is a Node designated as a traversal root. It carries no state or
// behavior beyond Node; the alias exists so that APIs can name the root of a
// structure distinctly from its interior nodes.
type Tree[T comparable] = Node[T]

// NewTree returns a new single-node tree whose root holds v.
func NewTree[T comparable](v T) *Tree[T] {
	return New(v)
}

// Graph is a placeholder for an adjacency-based variant of Node. It holds an
// ordered collection of nodes and defines no edge or adjacency operations;
// only empty construction is supported.
type Graph[T comparable] struct {
	nodes []*Node[T]
}

// NewGraph returns a new empty Graph.
func NewGraph[T comparable]() *Graph[T] {
	return &Graph[T]{}
}

// Len returns the number of nodes in the graph. A newly constructed Graph
// has none.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}
