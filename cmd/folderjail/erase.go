// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

// NewEraseCmd recursively deletes the jailed folder.
func NewEraseCmd() *cobra.Command {
	var recreate bool

	cmd := &cobra.Command{
		Use:   "erase",
		Short: "Recursively delete the folder",
		Long: `Recursively delete the folder and everything under it. Erasing a folder
that does not exist is a no-op. This never prompts, so only point it at
folders you exclusively own.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := openFolder()
			if err != nil {
				return err
			}
			return folder.Erase(recreate)
		},
	}
	cmd.Flags().BoolVar(&recreate, "recreate", false, "recreate an empty directory afterwards")
	return cmd
}
