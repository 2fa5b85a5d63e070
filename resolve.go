// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package folderjail

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// maxSymlinkLimit is the maximum number of symlinks that can be expanded
// during a single canonicalization before giving up with ELOOP. At time of
// writing, Linux has an internal limit of 40.
const maxSymlinkLimit = 255

// Canonicalize resolves path to a unique absolute form: symlinks and
// "." / ".." segments are expanded component by component. Unlike
// [filepath.EvalSymlinks] it does not require the path to exist: any
// non-existent suffix is kept and cleaned lexically, matching realpath
// semantics on most platforms.
func Canonicalize(path string) (string, error) {
	return CanonicalizeVFS(path, nil)
}

// CanonicalizeVFS is like [Canonicalize], but uses the given [VFS] to look
// up the filesystem. A nil vfs uses the OS filesystem directly.
func CanonicalizeVFS(path string, vfs VFS) (string, error) {
	if vfs == nil {
		vfs = osVFS{}
	}

	path = filepath.FromSlash(path)
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", err
		}
		path = abs
	}
	// Separate the Windows volume so the component walk below only ever
	// deals with separator-delimited segments. On unix this is a no-op.
	volume := filepath.VolumeName(path)

	var (
		currentPath   string
		remainingPath = path[len(volume):]
		linksWalked   int
	)
	for remainingPath != "" {
		if v := filepath.VolumeName(remainingPath); v != "" {
			remainingPath = remainingPath[len(v):]
		}

		// Get the next path component.
		var part string
		if i := strings.IndexRune(remainingPath, filepath.Separator); i == -1 {
			part, remainingPath = remainingPath, ""
		} else {
			part, remainingPath = remainingPath[:i], remainingPath[i+1:]
		}

		// Apply the component lexically to the path built so far.
		// currentPath contains no symlinks and part is a single component,
		// so a plain Join is safe here.
		nextPath := filepath.Join(string(filepath.Separator), currentPath, part)
		if nextPath == string(filepath.Separator) {
			currentPath = ""
			continue
		}
		fullPath := volume + nextPath

		// Figure out whether the component is a symlink. Non-existent
		// components are treated like non-symlinks: they are kept as-is and
		// the rest of the path is resolved lexically.
		fi, err := vfs.Lstat(fullPath)
		if err != nil && !IsNotExist(err) {
			return "", err
		}
		if IsNotExist(err) || fi.Mode()&os.ModeSymlink == 0 {
			currentPath = nextPath
			continue
		}

		// It's a symlink, so expand it by prepending its target to the
		// yet-unparsed remainder of the path.
		linksWalked++
		if linksWalked > maxSymlinkLimit {
			return "", &os.PathError{Op: "folderjail.Canonicalize", Path: path, Err: syscall.ELOOP}
		}

		dest, err := vfs.Readlink(fullPath)
		if err != nil {
			return "", err
		}
		remainingPath = dest + string(filepath.Separator) + remainingPath
		// Absolute symlinks reset any work we've already done.
		if filepath.IsAbs(dest) {
			currentPath = ""
		}
	}

	return volume + filepath.Join(string(filepath.Separator), currentPath), nil
}

// isWithin reports whether path equals boundary or is nested under it.
// Both arguments must already be canonicalized absolute paths. The
// comparison is segment-wise: /a/b2/c is not within /a/b, even though the
// raw strings share a prefix.
func isWithin(path, boundary string) bool {
	if path == boundary {
		return true
	}
	rel, err := filepath.Rel(boundary, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." &&
		!strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
