// Copyright 2025 The Ordtree Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package main

import (
	"fmt"

	"github.com/ordtree/ordtree"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <tree>",
	Short: "Render a tree as ASCII art.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

func runShow(_ *cobra.Command, args []string) error {
	for _, arg := range args {
		root, err := ordtree.Parse(arg)
		if err != nil {
			return err
		}
		fmt.Print(root.DebugString())
	}
	return nil
}
