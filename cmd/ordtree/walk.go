// Copyright 2025 The Ordtree Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ordtree/ordtree"
	"github.com/spf13/cobra"
)

var walkOrder string

var walkCmd = &cobra.Command{
	Use:   "walk <tree>",
	Short: "Print the node values of a tree in traversal order.",
	Long: `
Print the node values of a tree in traversal order, one line per tree
argument. The --order flag selects preorder depth-first (dfs, the default)
or level-order breadth-first (bfs) traversal.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWalk,
}

func runWalk(_ *cobra.Command, args []string) error {
	for _, arg := range args {
		root, err := ordtree.Parse(arg)
		if err != nil {
			return err
		}
		var vals []string
		switch walkOrder {
		case "dfs":
			for n := range root.DFS() {
				vals = append(vals, n.Value())
			}
		case "bfs":
			for n := range root.BFS() {
				vals = append(vals, n.Value())
			}
		default:
			return errors.Errorf("unknown traversal order %q", walkOrder)
		}
		fmt.Println(strings.Join(vals, " "))
	}
	return nil
}
