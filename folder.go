// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package folderjail

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	cp "github.com/otiai10/copy"

	"github.com/materialsflow/folderjail/internal/log"
)

// Entry is a direct child of a folder. IsFile is true for regular files
// (and symlinks resolving to one), false for directories.
type Entry struct {
	Name   string
	IsFile bool
}

// Subfolder derives a Folder for rel resolved against this folder's path.
// rel may contain ".." segments as long as the canonicalized result stays
// within the boundary, which the derived folder shares; a result outside it
// fails with [*ContainmentError]. If create is true the directory is
// created (along with missing ancestors) before returning.
func (f *Folder) Subfolder(rel string, create bool) (*Folder, error) {
	// The concatenation must stay unclean: a lexical Join here would
	// collapse ".." segments before canonicalization gets to expand the
	// symlinks they follow, resolving "link/../x" against the wrong parent.
	sub, err := New(f.absPath+string(filepath.Separator)+rel,
		WithBoundary(f.boundary), WithLogger(f.log))
	if err != nil {
		return nil, err
	}
	if create {
		if err := sub.Create(); err != nil {
			return nil, err
		}
	}
	return sub, nil
}

// Entries lists the direct children of the folder whose name matches the
// shell-glob pattern. An empty pattern matches everything. The order is
// whatever the filesystem returns; callers that need determinism must sort.
// A folder that does not exist on disk fails with a not-exist error.
func (f *Folder) Entries(pattern string) ([]Entry, error) {
	if pattern == "" {
		pattern = "*"
	}
	dirents, err := os.ReadDir(f.absPath)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, dirent := range dirents {
		ok, err := doublestar.Match(pattern, dirent.Name())
		if err != nil {
			return nil, fmt.Errorf("%w: bad glob pattern %q", ErrInvalidInput, pattern)
		}
		if !ok {
			continue
		}
		isFile := !dirent.IsDir()
		if dirent.Type()&os.ModeSymlink != 0 {
			// A symlink counts as what it resolves to; a dangling one as a file.
			if fi, err := os.Stat(filepath.Join(f.absPath, dirent.Name())); err == nil {
				isFile = !fi.IsDir()
			}
		}
		entries = append(entries, Entry{Name: dirent.Name(), IsFile: isFile})
	}
	return entries, nil
}

// Filename validates name as a single path component and returns its
// absolute path inside the folder. This is the single choke point every
// single-file operation resolves its destination through, so a crafted name
// ("../x", "a/b", "..") can never place a file outside the folder. Invalid
// names fail with [*InvalidNameError].
func (f *Folder) Filename(name string) (string, error) {
	joined := filepath.Join(f.absPath, name)
	dir, base := filepath.Split(joined)
	if name == "" || base != name || filepath.Clean(dir) != f.absPath {
		return "", &InvalidNameError{Name: name}
	}
	return joined, nil
}

// Symlink creates a symbolic link named name inside the folder, pointing at
// target. The target is written exactly as given (relative or absolute)
// and is deliberately not checked against the boundary, since it is
// external to the folder by design. An occupied link path fails with an
// error matching [fs.ErrExist].
func (f *Folder) Symlink(target, name string) error {
	dest, err := f.Filename(name)
	if err != nil {
		return err
	}
	if err := os.Symlink(target, dest); err != nil {
		return err
	}
	f.log.Debug().
		Str(log.FieldPath, dest).
		Str(log.FieldTarget, target).
		Msg("created symlink")
	return nil
}

// InsertFile copies the contents of the file at src into the folder and
// returns the destination's absolute path. An empty destName defaults to
// the base name of src. Only contents are copied, not metadata. A missing
// src fails with an error matching [fs.ErrNotExist].
func (f *Folder) InsertFile(src, destName string) (string, error) {
	if destName == "" {
		destName = filepath.Base(src)
	}
	dest, err := f.Filename(destName)
	if err != nil {
		return "", err
	}
	if err := copyFileContents(src, dest); err != nil {
		return "", err
	}
	f.log.Debug().
		Str(log.FieldSource, src).
		Str(log.FieldPath, dest).
		Msg("inserted file")
	return dest, nil
}

func copyFileContents(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

// Exists reports whether the folder's path currently exists on disk.
func (f *Folder) Exists() bool {
	_, err := os.Stat(f.absPath)
	return err == nil
}

// Create makes the folder's directory, along with any missing ancestors.
// It is idempotent: an already-existing directory is a no-op.
func (f *Folder) Create() error {
	return os.MkdirAll(f.absPath, 0o755)
}

// Erase recursively deletes the folder and everything under it. A folder
// that does not exist is a no-op, not an error. If recreateEmpty is true an
// empty directory is recreated at the same path afterwards.
//
// This is destructive and irreversible; it never prompts and trusts the
// caller to only erase folders they exclusively own.
func (f *Folder) Erase(recreateEmpty bool) error {
	if f.Exists() {
		f.log.Info().
			Str(log.FieldPath, f.absPath).
			Bool("recreate", recreateEmpty).
			Msg("erasing folder")
		if err := os.RemoveAll(f.absPath); err != nil {
			return err
		}
	}
	if recreateEmpty {
		return f.Create()
	}
	return nil
}

// ReplaceWithFolder replaces this folder's directory with the directory at
// srcDir. With overwrite the existing directory is erased first; without it
// an already-existing destination fails with an error matching
// [fs.ErrExist] and neither side is touched. Missing ancestors of the
// destination are created. With move the source is renamed into place
// (falling back to copy-and-delete across filesystems) and ceases to exist
// at its old location; otherwise the source tree is copied recursively and
// left untouched.
func (f *Folder) ReplaceWithFolder(srcDir string, move, overwrite bool) error {
	src, err := Canonicalize(srcDir)
	if err != nil {
		return err
	}
	fi, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: replacement source %q is not a directory", ErrInvalidInput, srcDir)
	}

	if overwrite {
		if err := f.Erase(false); err != nil {
			return err
		}
	} else if f.Exists() {
		return &os.PathError{Op: "replace", Path: f.absPath, Err: fs.ErrExist}
	}

	if err := os.MkdirAll(filepath.Dir(f.absPath), 0o755); err != nil {
		return err
	}

	f.log.Info().
		Str(log.FieldSource, src).
		Str(log.FieldPath, f.absPath).
		Bool("move", move).
		Msg("replacing folder")

	if move {
		return moveDir(src, f.absPath, !overwrite)
	}
	return cp.Copy(src, f.absPath)
}

// moveDir renames src to dest, degrading to copy-and-delete when the two
// live on different filesystems. With noReplace the rename refuses to
// clobber an existing dest where the platform can express that atomically.
func moveDir(src, dest string, noReplace bool) error {
	var err error
	if noReplace {
		err = renameNoReplace(src, dest)
	} else {
		err = os.Rename(src, dest)
	}
	switch {
	case err == nil:
		return nil
	case !isCrossDevice(err):
		return err
	}
	if err := cp.Copy(src, dest); err != nil {
		return err
	}
	return os.RemoveAll(src)
}
