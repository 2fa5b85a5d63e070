// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

// Canonical field name constants for structured logging.
const (
	// Path fields
	FieldPath     = "path"
	FieldBoundary = "boundary"
	FieldSource   = "source"
	FieldTarget   = "target"

	// Repository fields
	FieldSection = "section"
	FieldID      = "id"

	// Process fields
	FieldComponent = "component"
	FieldEvent     = "event"
)
