// Copyright 2025 The Ordtree Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Command ordtree inspects and manipulates tree literals of the form
// accepted by ordtree.Parse, e.g. `a(b(d e) c)`.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ordtree [command] (flags)",
	Short: "ordered-tree inspection tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		walkCmd,
		showCmd,
		removeCmd,
	)

	walkCmd.Flags().StringVarP(
		&walkOrder, "order", "o", "dfs", "traversal order (dfs or bfs)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
