// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

// NewPutCmd copies a file into the jailed folder.
func NewPutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <src> [name]",
		Short: "Copy a file into the folder",
		Long: `Copy the contents of <src> into the folder. The destination name
defaults to the base name of <src> and must be a single path component;
names with separators or traversal segments are rejected.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := openFolder()
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 2 {
				name = args[1]
			}
			dest, err := folder.InsertFile(args[0], name)
			if err != nil {
				return err
			}
			cmd.Println(dest)
			return nil
		},
	}
}
