// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package folderjail

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func symlink(t *testing.T, oldname, newname string) {
	err := os.Symlink(oldname, newname)
	require.NoError(t, err)
}

func mkdirAll(t *testing.T, path string, mode os.FileMode) {
	err := os.MkdirAll(path, mode)
	require.NoError(t, err)
}

func writeFile(t *testing.T, path string, data []byte, mode os.FileMode) {
	err := os.WriteFile(path, data, mode)
	require.NoError(t, err)
}

func readFile(t *testing.T, path string) string {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// tmpDir returns a fresh temporary directory with symlinks resolved, so
// path comparisons in tests are not thrown off by a symlinked TMPDIR (as on
// macOS, where /tmp is a link into /private).
func tmpDir(t *testing.T) string {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}
