// Copyright 2025 The Ordtree Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package ordtree

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/ordtree/ordtree/internal/strparse"
)

const parseSeparators = "()"

// Parse parses the compact one-line form produced by Node.String into a tree
// of string-valued nodes. A node is a value token, optionally followed by a
// parenthesized, whitespace-separated list of child nodes:
//
//	a(b(d e) c)
//
// Value tokens may not contain whitespace or parentheses. Intended for tests
// and debug input.
func Parse(s string) (_ *Node[string], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.CombineErrors(err, errFromPanic(r))
		}
	}()

	p := strparse.MakeParser(parseSeparators, s)
	n := parseNode(&p)
	if !p.Done() {
		p.Errf("unexpected trailing input %q", p.Remaining())
	}
	return n, nil
}

// ParseInt is like Parse, for trees whose values are integers.
func ParseInt(s string) (*Node[int], error) {
	n, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return convertInt(n)
}

func convertInt(n *Node[string]) (*Node[int], error) {
	v, err := strconv.Atoi(n.value)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing value %q", n.value)
	}
	c := New(v)
	for _, child := range n.children {
		cc, err := convertInt(child)
		if err != nil {
			return nil, err
		}
		c.children = append(c.children, cc)
	}
	return c, nil
}

func parseNode(p *strparse.Parser) *Node[string] {
	v := p.Next()
	if v == "" || v == "(" || v == ")" {
		p.Errf("expected value, got %q", v)
	}
	n := New(v)
	if p.Peek() == "(" {
		p.Expect("(")
		for p.Peek() != ")" {
			if p.Done() {
				p.Errf("unclosed child list")
			}
			// The child is freshly built and owned by nobody else; attach it
			// directly rather than copying through AppendNode.
			n.children = append(n.children, parseNode(p))
		}
		p.Expect(")")
	}
	return n
}

func errFromPanic(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errors.Errorf("%v", r)
}
