// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repo implements a file repository on top of folderjail. Data
// objects are addressed by a section name and a UUID; their payloads live
// in sharded directories under a single repository root, and every folder
// the repository hands out is confined to that root.
package repo

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/materialsflow/folderjail"
	"github.com/materialsflow/folderjail/internal/log"
)

// Repository hands out boundary-confined folders for stored objects. All
// mutation goes through folderjail operations; the repository itself never
// concatenates raw paths outside the jail.
type Repository struct {
	cfg  Config
	root *folderjail.Folder
	log  zerolog.Logger
}

// Open validates cfg, creates the repository root on disk if needed and
// returns a Repository for it.
func Open(cfg Config) (*Repository, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := log.WithComponent("repo")
	root, err := folderjail.New(cfg.Root, folderjail.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := root.Create(); err != nil {
		return nil, err
	}
	return &Repository{cfg: cfg, root: root, log: logger}, nil
}

// Root returns the repository root folder.
func (r *Repository) Root() *folderjail.Folder { return r.root }

// relPath maps a section and object id to the sharded location
// <section>/<id[0:2]>/<id[2:4]>/<id>. Sharding keeps directory fan-out
// bounded when a section holds millions of objects.
func (r *Repository) relPath(section, id string) (string, error) {
	if !slices.Contains(r.cfg.Sections, section) {
		return "", fmt.Errorf("%w: unknown repository section %q", folderjail.ErrInvalidInput, section)
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: object id %q is not a valid UUID", folderjail.ErrInvalidInput, id)
	}
	s := u.String()
	return filepath.Join(section, s[0:2], s[2:4], s), nil
}

// FolderFor returns the folder for the object identified by section and id,
// optionally descended into subpath. The folder shares the repository root
// as its boundary, so no subpath can reach outside the repository.
func (r *Repository) FolderFor(section, id, subpath string) (*folderjail.Folder, error) {
	rel, err := r.relPath(section, id)
	if err != nil {
		return nil, err
	}
	// Unclean on purpose: Subfolder resolves symlinks before ".." segments,
	// and a lexical Join here would collapse them too early.
	return r.root.Subfolder(rel+string(filepath.Separator)+subpath, false)
}

// Store places the directory srcDir as the payload of the object identified
// by section and id. With move the source directory is moved into the
// repository, otherwise it is copied. With overwrite any existing payload
// is erased first; without it an occupied location is an error.
func (r *Repository) Store(section, id, srcDir string, move, overwrite bool) error {
	folder, err := r.FolderFor(section, id, "")
	if err != nil {
		return err
	}
	r.log.Info().
		Str(log.FieldSection, section).
		Str(log.FieldID, id).
		Str(log.FieldSource, srcDir).
		Msg("storing object payload")
	return folder.ReplaceWithFolder(srcDir, move, overwrite)
}

// Erase removes the payload of the object identified by section and id.
// Missing payloads are a no-op.
func (r *Repository) Erase(section, id string) error {
	folder, err := r.FolderFor(section, id, "")
	if err != nil {
		return err
	}
	r.log.Info().
		Str(log.FieldSection, section).
		Str(log.FieldID, id).
		Msg("erasing object payload")
	return folder.Erase(false)
}

// Sandbox creates a scratch sandbox under the repository's scratch
// directory. Fill it, then hand it to Promote.
func (r *Repository) Sandbox() (*folderjail.Sandbox, error) {
	return folderjail.NewSandbox(r.cfg.Scratch, folderjail.WithLogger(r.log))
}

// Promote moves a filled sandbox into place as the payload of the object
// identified by section and id. This is the write-to-scratch-then-rename
// pattern: the payload appears at its final location in (at most) one
// rename, never half-written. The sandbox ceases to exist on success.
func (r *Repository) Promote(sb *folderjail.Sandbox, section, id string, overwrite bool) error {
	return r.Store(section, id, sb.Path(), true, overwrite)
}
