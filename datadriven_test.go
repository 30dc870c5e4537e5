// Copyright 2025 The Ordtree Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package ordtree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

func TestDataDriven(t *testing.T) {
	var root *Node[string]
	datadriven.RunTest(t, "testdata/ordtree", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "build":
			var err error
			root, err = Parse(strings.TrimSpace(td.Input))
			if err != nil {
				return fmt.Sprintf("error: %v", err)
			}
			return root.DebugString()

		case "walk":
			var order string
			td.ScanArgs(t, "order", &order)
			var vals []string
			switch order {
			case "dfs":
				for n := range root.DFS() {
					vals = append(vals, n.Value())
				}
			case "bfs":
				for n := range root.BFS() {
					vals = append(vals, n.Value())
				}
			default:
				td.Fatalf(t, "unknown order %q", order)
			}
			return strings.Join(vals, " ")

		case "contains":
			var value string
			td.ScanArgs(t, "value", &value)
			if td.HasArg("recursive") {
				return fmt.Sprintf("%t", root.ContainsRecursive(value))
			}
			return fmt.Sprintf("%t", root.Contains(value))

		case "remove":
			var value string
			td.ScanArgs(t, "value", &value)
			n := root.RemoveRecursive(value)
			return fmt.Sprintf("removed %d\n%s", n, root.DebugString())

		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
			return ""
		}
	})
}
