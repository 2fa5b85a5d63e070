// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package folderjail

import (
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without symlinks on the way, Canonicalize is equivalent to Abs+Clean,
// including for paths that do not exist yet.
func TestCanonicalizeLexical(t *testing.T) {
	dir := tmpDir(t)

	for _, test := range []struct {
		path, expected string
	}{
		{dir, dir},
		{dir + "/somepath", filepath.Join(dir, "somepath")},
		{dir + "/even/more/path", filepath.Join(dir, "even", "more", "path")},
		{dir + "/a/../b", filepath.Join(dir, "b")},
		{dir + "/also/a/../path/././/with/some/./.././junk", filepath.Join(dir, "also", "path", "with", "junk")},
		{dir + "/..//" + filepath.Base(dir), dir},
		{dir + "/../../../../../../../../../../../../etc/passwd", "/etc/passwd"},
		{"/", "/"},
		{"/../../..", "/"},
	} {
		got, err := Canonicalize(test.path)
		if assert.NoErrorf(t, err, "Canonicalize(%q)", test.path) {
			assert.Equalf(t, test.expected, got, "Canonicalize(%q)", test.path)
		}
	}
}

func TestCanonicalizeSymlink(t *testing.T) {
	dir := tmpDir(t)

	mkdirAll(t, filepath.Join(dir, "real", "inner"), 0o755)
	symlink(t, "real", filepath.Join(dir, "rel-link"))
	symlink(t, filepath.Join(dir, "real"), filepath.Join(dir, "abs-link"))
	symlink(t, "../real", filepath.Join(dir, "real", "up-link"))

	for _, test := range []struct {
		name, path, expected string
	}{
		{"relative-link", filepath.Join(dir, "rel-link"), filepath.Join(dir, "real")},
		{"relative-link-descend", filepath.Join(dir, "rel-link", "inner"), filepath.Join(dir, "real", "inner")},
		{"absolute-link", filepath.Join(dir, "abs-link", "inner"), filepath.Join(dir, "real", "inner")},
		{"link-through-parent", filepath.Join(dir, "real", "up-link", "inner"), filepath.Join(dir, "real", "inner")},
		{"nonexistent-tail", filepath.Join(dir, "rel-link", "not", "yet"), filepath.Join(dir, "real", "not", "yet")},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := Canonicalize(test.path)
			require.NoError(t, err)
			assert.Equal(t, test.expected, got)
		})
	}
}

func TestCanonicalizeSymlinkLoop(t *testing.T) {
	dir := tmpDir(t)

	symlink(t, filepath.Join(dir, "b"), filepath.Join(dir, "a"))
	symlink(t, filepath.Join(dir, "a"), filepath.Join(dir, "b"))

	_, err := Canonicalize(filepath.Join(dir, "a", "deeper"))
	require.Error(t, err)
	assert.ErrorIs(t, err, syscall.ELOOP)
}

func TestIsWithin(t *testing.T) {
	for _, test := range []struct {
		testName, path, boundary string
		expected                 bool
	}{
		{"equal", "/a/b", "/a/b", true},
		{"child", "/a/b/c", "/a/b", true},
		{"deep-child", "/a/b/c/d/e", "/a/b", true},
		{"parent", "/a", "/a/b", false},
		{"root-boundary", "/anything/at/all", "/", true},
		{"sibling", "/a/c", "/a/b", false},
		// Regression: a sibling whose name shares a string prefix with the
		// boundary must be rejected even though "/a/b2" starts with "/a/b".
		{"sibling-prefix", "/a/b2/c", "/a/b", false},
		{"sibling-prefix-direct", "/a/b2", "/a/b", false},
	} {
		t.Run(test.testName, func(t *testing.T) {
			assert.Equalf(t, test.expected, isWithin(test.path, test.boundary),
				"isWithin(%q, %q)", test.path, test.boundary)
		})
	}
}
