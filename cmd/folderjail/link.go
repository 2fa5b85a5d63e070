// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

// NewLinkCmd creates a symlink inside the jailed folder.
func NewLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link <target> <name>",
		Short: "Create a symlink inside the folder",
		Long: `Create a symlink named <name> inside the folder, pointing at <target>.
The target is written verbatim (relative targets keep working when the tree
is moved); the link name must be a single path component.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := openFolder()
			if err != nil {
				return err
			}
			return folder.Symlink(args[0], args[1])
		},
	}
}
