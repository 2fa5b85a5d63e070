// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package folderjail

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"
)

// renameNoReplace renames src to dest. The caller has already checked that
// dest is absent; os.Rename on Windows refuses to clobber an existing
// directory anyway.
func renameNoReplace(src, dest string) error {
	return os.Rename(src, dest)
}

// isCrossDevice reports whether err is a rename failure caused by src and
// dest living on different volumes.
func isCrossDevice(err error) bool {
	return errors.Is(err, windows.ERROR_NOT_SAME_DEVICE)
}
