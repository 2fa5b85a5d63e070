// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package folderjail manages directories that are confined to a declared
// boundary. A [Folder] is constructed from an absolute path and a boundary
// path; every path the Folder ever derives (subfolders, file destinations)
// is canonicalized and re-validated against that boundary, so no caller bug
// or crafted filename can escape it.
//
// Containment is checked on canonicalized paths (symlinks and "." / ".."
// segments resolved) and compared segment-wise, never as a raw string
// prefix: a boundary of /a/b rejects /a/b2/c.
//
// Folders hold no OS resources. The directory a Folder points at may or may
// not exist on disk; existence is a queryable fact, not part of the value's
// identity. All operations are plain blocking filesystem calls with no
// locking or atomicity beyond what the individual OS primitives provide.
package folderjail

import (
	"github.com/rs/zerolog"
)

// Folder is a directory rooted at a canonicalized absolute path and bound
// to an immutable boundary path that derived paths may never escape.
type Folder struct {
	absPath  string
	boundary string
	log      zerolog.Logger
}

type options struct {
	boundary string
	log      *zerolog.Logger
}

// Option configures a Folder during construction.
type Option func(*options)

// WithBoundary sets the boundary path the folder and all of its derived
// folders are confined to. Without this option the folder is its own
// boundary.
func WithBoundary(path string) Option {
	return func(o *options) { o.boundary = path }
}

// WithLogger attaches a logger used to record mutating operations. The
// default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = &log }
}

// New constructs a Folder for path. The path and the boundary are
// canonicalized before the containment check, so symlinked or relative
// inputs are resolved the same way the OS would resolve them. A path
// outside the boundary is a contract violation and fails with
// [*ContainmentError].
//
// The path does not need to exist on disk.
func New(path string, opts ...Option) (*Folder, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	absPath, err := Canonicalize(path)
	if err != nil {
		return nil, err
	}

	boundary := absPath
	if o.boundary != "" {
		boundary, err = Canonicalize(o.boundary)
		if err != nil {
			return nil, err
		}
	}

	if !isWithin(absPath, boundary) {
		return nil, &ContainmentError{Path: absPath, Boundary: boundary}
	}

	log := zerolog.Nop()
	if o.log != nil {
		log = *o.log
	}
	return &Folder{absPath: absPath, boundary: boundary, log: log}, nil
}

// Path returns the canonicalized absolute path of the folder.
func (f *Folder) Path() string { return f.absPath }

// Boundary returns the canonicalized boundary path that this folder and
// every folder derived from it are confined to.
func (f *Folder) Boundary() string { return f.boundary }

// Contains reports whether path, after canonicalization, is the folder's
// path or a descendant of it.
func (f *Folder) Contains(path string) bool {
	abs, err := Canonicalize(path)
	if err != nil {
		return false
	}
	return isWithin(abs, f.absPath)
}

func (f *Folder) String() string { return f.absPath }
