// Copyright 2025 The Ordtree Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package treeprinter renders hierarchical structures as ASCII trees, for
// debug output and tests.
//
// Usage:
//
//	tp := treeprinter.New()
//	root := tp.Child("root")
//	root.Child("child-1")
//	root.Childf("child-%d", 2)
//	fmt.Print(tp.String())
//
// yields:
//
//	root
//	 ├── child-1
//	 └── child-2
package treeprinter

import (
	"fmt"
	"strings"
)

// Node is a handle for a node in the tree. Calling Child on a handle adds a
// new node below it.
type Node struct {
	t   *tree
	idx int
}

type tree struct {
	text     []string
	children [][]int
}

// New creates a tree and returns a handle for its root. The root itself is
// not rendered; the nodes added below it are.
func New() Node {
	t := &tree{
		text:     []string{""},
		children: [][]int{nil},
	}
	return Node{t: t, idx: 0}
}

// Child adds a node with the given text below n and returns its handle.
func (n Node) Child(text string) Node {
	t := n.t
	idx := len(t.text)
	t.text = append(t.text, text)
	t.children = append(t.children, nil)
	t.children[n.idx] = append(t.children[n.idx], idx)
	return Node{t: t, idx: idx}
}

// Childf adds a node with the formatted text below n and returns its handle.
func (n Node) Childf(format string, args ...any) Node {
	return n.Child(fmt.Sprintf(format, args...))
}

// String renders the tree below n. Each line is terminated with a newline.
func (n Node) String() string {
	var buf strings.Builder
	for _, c := range n.t.children[n.idx] {
		n.t.render(&buf, c, "", "")
	}
	return buf.String()
}

func (t *tree) render(buf *strings.Builder, idx int, prefix, childPrefix string) {
	buf.WriteString(prefix)
	buf.WriteString(t.text[idx])
	buf.WriteString("\n")
	children := t.children[idx]
	for i, c := range children {
		// Edge and continuation prefixes are five columns wide so that
		// deeper levels stay aligned.
		if i == len(children)-1 {
			t.render(buf, c, childPrefix+" └── ", childPrefix+"     ")
		} else {
			t.render(buf, c, childPrefix+" ├── ", childPrefix+" │   ")
		}
	}
}
