// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

// NewReplaceCmd replaces the jailed folder with another directory tree.
func NewReplaceCmd() *cobra.Command {
	var (
		move      bool
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "replace <srcdir>",
		Short: "Replace the folder with the tree at <srcdir>",
		Long: `Replace the folder with the directory tree at <srcdir>. Without
--overwrite an already-existing folder is an error; with --move the source
is renamed into place instead of copied and ceases to exist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := openFolder()
			if err != nil {
				return err
			}
			return folder.ReplaceWithFolder(args[0], move, overwrite)
		},
	}
	cmd.Flags().BoolVar(&move, "move", false, "move the source instead of copying it")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "erase an existing folder first")
	return cmd
}
