// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package folderjail

import "os"

// VFS is the minimal filesystem surface [CanonicalizeVFS] needs. It exists
// so path resolution can be exercised against a mocked filesystem; every
// implementation must behave like the equivalent os.* function.
type VFS interface {
	// Lstat returns an os.FileInfo describing the named file. If the file
	// is a symbolic link, the returned FileInfo describes the link itself.
	Lstat(name string) (os.FileInfo, error)

	// Readlink returns the destination of the named symbolic link.
	Readlink(name string) (string, error)
}

// osVFS is the "nil" VFS: it passes through to the os.* functions.
type osVFS struct{}

func (o osVFS) Lstat(name string) (os.FileInfo, error) { return os.Lstat(name) }

func (o osVFS) Readlink(name string) (string, error) { return os.Readlink(name) }
