// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

// NewMkdirCmd creates a subfolder of the jailed folder.
func NewMkdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <rel>",
		Short: "Create a subfolder (and missing ancestors)",
		Long: `Create the subfolder at the relative path <rel>. The path may contain
".." segments as long as the result stays within the boundary.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := openFolder()
			if err != nil {
				return err
			}
			sub, err := folder.Subfolder(args[0], true)
			if err != nil {
				return err
			}
			cmd.Println(sub.Path())
			return nil
		},
	}
}
