// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package folderjail

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// ContainmentError reports a path that escapes its declared boundary. It is
// raised at construction or derivation time and is a contract failure, not
// a recoverable condition; the offending path is never silently clamped.
type ContainmentError struct {
	// Path is the canonicalized path that failed the containment check.
	Path string
	// Boundary is the canonicalized boundary it escaped.
	Boundary string
}

func (e *ContainmentError) Error() string {
	return fmt.Sprintf("path %q is not within folder boundary %q", e.Path, e.Boundary)
}

// InvalidNameError reports a filename that is not a single well-formed path
// component (empty, contains a separator, or is "." / "..").
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid filename %q: must be a single path component", e.Name)
}

// ErrInvalidInput is wrapped by errors reporting malformed caller input
// that is not covered by a more specific error type.
var ErrInvalidInput = errors.New("invalid input")

// IsNotExist tells you if err is an error that implies that either the path
// accessed does not exist (or path components don't exist). This is
// effectively a more broad version of [os.IsNotExist].
func IsNotExist(err error) bool {
	// Check that it's not actually an ENOTDIR, which in some cases is a more
	// convoluted case of ENOENT (usually involving weird paths).
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) || errors.Is(err, syscall.ENOENT)
}
