// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/materialsflow/folderjail"
	"github.com/materialsflow/folderjail/internal/log"
	"github.com/materialsflow/folderjail/repo"
)

// Global flag values shared by all subcommands.
var (
	rootPath     string
	boundaryPath string
	configPath   string
	verbose      bool
)

// NewRootCmd builds the folderjail command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folderjail",
		Short: "Manipulate a directory tree without ever escaping its boundary",
		Long: `folderjail manipulates a directory that is confined to a boundary.

Every operation resolves its paths against the folder given with --root and
validates them against the boundary (--boundary, defaulting to the root
itself), so neither "../" traversal nor symlink tricks can touch anything
outside the jail.

Examples:
  # List text files in a jailed folder
  folderjail --root /srv/repo/data ls '*.txt'

  # Copy a file into the jail under its base name
  folderjail --root /srv/repo/data put /tmp/report.txt

  # Replace the jailed folder with another tree, erasing what was there
  folderjail --root /srv/repo/data --boundary /srv/repo replace /tmp/staging --move --overwrite

  # Operate inside a repository described by a TOML config: the repository
  # root becomes the boundary, --root defaults to it
  folderjail --config /etc/folderjail/repo.toml --root /srv/repo/node ls`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "info"
			if verbose {
				level = "debug"
			}
			log.Configure(log.Config{Level: level})
		},
	}

	cmd.PersistentFlags().StringVar(&rootPath, "root", "", "folder to operate on (defaults to the config's repository root)")
	cmd.PersistentFlags().StringVar(&boundaryPath, "boundary", "", "boundary the folder may never escape (defaults to --root)")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "repository TOML config; its root becomes the default root and boundary")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		NewLsCmd(),
		NewPutCmd(),
		NewLinkCmd(),
		NewMkdirCmd(),
		NewEraseCmd(),
		NewReplaceCmd(),
	)
	return cmd
}

// openFolder constructs the Folder addressed by the global flags. With
// --config, the repository config supplies the defaults: its root is the
// boundary, and also the folder itself unless --root descends into it.
func openFolder() (*folderjail.Folder, error) {
	root := rootPath
	boundary := boundaryPath
	if configPath != "" {
		cfg, err := repo.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		if root == "" {
			root = cfg.Root
		}
		if boundary == "" {
			boundary = cfg.Root
		}
	}
	if root == "" {
		return nil, fmt.Errorf("%w: either --root or --config must be given", folderjail.ErrInvalidInput)
	}

	opts := []folderjail.Option{folderjail.WithLogger(log.WithComponent("cli"))}
	if boundary != "" {
		opts = append(opts, folderjail.WithBoundary(boundary))
	}
	return folderjail.New(root, opts...)
}
