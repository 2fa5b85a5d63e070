// SPDX-License-Identifier: BSD-3-Clause

//go:build unix && !linux

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package folderjail

import (
	"errors"
	"os"
	"syscall"
)

// renameNoReplace renames src to dest. The caller has already checked that
// dest is absent; without renameat2 there is no way to make that check and
// the rename a single atomic operation on this platform.
func renameNoReplace(src, dest string) error {
	return os.Rename(src, dest)
}

// isCrossDevice reports whether err is a rename failure caused by src and
// dest living on different filesystems.
func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
