// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package folderjail

import (
	"os"
)

// Sandbox is a throwaway scratch folder, created with a unique name under a
// shared scratch root and confined to it. Callers fill a sandbox and then
// either promote its contents somewhere permanent (see
// [Folder.ReplaceWithFolder]) or discard it with [Sandbox.Release].
type Sandbox struct {
	*Folder
}

// NewSandbox creates a uniquely named directory under scratchRoot and
// returns it as a Sandbox whose boundary is scratchRoot. The scratch root
// is created if it is missing.
func NewSandbox(scratchRoot string, opts ...Option) (*Sandbox, error) {
	root, err := Canonicalize(scratchRoot)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	dir, err := os.MkdirTemp(root, "sandbox-")
	if err != nil {
		return nil, err
	}

	// The sandbox boundary is always the scratch root, regardless of what
	// the caller's options say.
	opts = append(opts, WithBoundary(root))
	folder, err := New(dir, opts...)
	if err != nil {
		return nil, err
	}
	return &Sandbox{Folder: folder}, nil
}

// Release erases the sandbox directory and its contents. Releasing an
// already-released sandbox is a no-op.
func (s *Sandbox) Release() error {
	return s.Erase(false)
}
