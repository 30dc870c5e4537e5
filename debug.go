// Copyright 2025 The Ordtree Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package ordtree

import (
	"fmt"
	"strings"

	"github.com/ordtree/ordtree/internal/treeprinter"
)

// String returns the compact one-line form of the subtree rooted at n: the
// node's value, followed by the children in parentheses if there are any.
// For example, a root "a" with children "b" (itself parent of "d") and "c"
// renders as:
//
//	a(b(d) c)
//
// Values are rendered with %v. If every rendered value is a single token
// free of parentheses and whitespace, the output round-trips through Parse.
func (n *Node[T]) String() string {
	var buf strings.Builder
	n.appendOneLine(&buf)
	return buf.String()
}

func (n *Node[T]) appendOneLine(buf *strings.Builder) {
	fmt.Fprintf(buf, "%v", n.value)
	if len(n.children) == 0 {
		return
	}
	buf.WriteString("(")
	for i, c := range n.children {
		if i > 0 {
			buf.WriteString(" ")
		}
		c.appendOneLine(buf)
	}
	buf.WriteString(")")
}

// DebugTree adds the subtree rooted at n below tp.
func (n *Node[T]) DebugTree(tp treeprinter.Node) {
	tn := tp.Childf("%v", n.value)
	for _, c := range n.children {
		c.DebugTree(tn)
	}
}

// DebugString returns a multi-line ASCII rendering of the subtree rooted at
// n, one node per line.
func (n *Node[T]) DebugString() string {
	tp := treeprinter.New()
	n.DebugTree(tp)
	return tp.String()
}
