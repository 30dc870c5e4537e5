// Copyright 2025 The Ordtree Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package main

import (
	"fmt"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/ordtree/ordtree"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <value> <tree>",
	Short: "Remove every node holding a value and print the result.",
	Long: `
Remove, everywhere strictly below the root, every node whose value equals
<value>, then print the number of nodes removed and the resulting tree.
The root is never removed, even if its value matches.
`,
	Args: cobra.ExactArgs(2),
	RunE: runRemove,
}

func runRemove(_ *cobra.Command, args []string) error {
	value, literal := args[0], args[1]
	root, err := ordtree.Parse(literal)
	if err != nil {
		return err
	}
	n := root.RemoveRecursive(value)
	fmt.Printf("removed %d node%s\n", n, crstrings.If(n != 1, "s"))
	fmt.Println(root.String())
	return nil
}
