// SPDX-License-Identifier: BSD-3-Clause

//go:build linux

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package folderjail

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// renameNoReplace renames src to dest, failing with EEXIST if dest is
// already occupied. RENAME_NOREPLACE makes the existence check and the
// rename a single atomic operation, closing the window a plain
// check-then-rename would leave open.
func renameNoReplace(src, dest string) error {
	err := unix.Renameat2(unix.AT_FDCWD, src, unix.AT_FDCWD, dest, unix.RENAME_NOREPLACE)
	if err != nil {
		return &os.LinkError{Op: "rename", Old: src, New: dest, Err: err}
	}
	return nil
}

// isCrossDevice reports whether err is a rename failure caused by src and
// dest living on different filesystems.
func isCrossDevice(err error) bool {
	return errors.Is(err, unix.EXDEV)
}
