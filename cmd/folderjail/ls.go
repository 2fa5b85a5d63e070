// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewLsCmd lists the direct children of the jailed folder.
func NewLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [pattern]",
		Short: "List folder entries matching a glob pattern",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := openFolder()
			if err != nil {
				return err
			}
			pattern := "*"
			if len(args) == 1 {
				pattern = args[0]
			}
			entries, err := folder.Entries(pattern)
			if err != nil {
				return err
			}
			sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

			dir := color.New(color.FgBlue, color.Bold)
			for _, entry := range entries {
				if entry.IsFile {
					cmd.Println(entry.Name)
				} else {
					dir.Fprintln(cmd.OutOrStdout(), entry.Name+"/")
				}
			}
			return nil
		},
	}
}
