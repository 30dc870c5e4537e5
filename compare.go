// Copyright 2025 The Ordtree Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package ordtree

import "cmp"

// Less orders two nodes by their values alone; subtree shape is irrelevant.
// It is intended for use with generic algorithms such as slices.SortFunc. A
// nil node orders before any non-nil node.
func Less[T cmp.Ordered](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	return a.value < b.value
}

// Equal reports whether two nodes hold equal values. Like Node.Equal, the
// comparison is shallow and ignores children. Two nil nodes compare equal.
func Equal[T comparable](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.value == b.value
}

// Compare is a three-way variant of Less and Equal, directly usable with
// slices.SortFunc and slices.BinarySearchFunc.
func Compare[T cmp.Ordered](a, b *Node[T]) int {
	switch {
	case a == nil || b == nil:
		switch {
		case a == b:
			return 0
		case a == nil:
			return -1
		default:
			return +1
		}
	default:
		return cmp.Compare(a.value, b.value)
	}
}
