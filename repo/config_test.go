// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/materialsflow/folderjail"
)

func writeConfig(t *testing.T, dir, contents string) string {
	path := filepath.Join(dir, "repo.toml")
	err := os.WriteFile(path, []byte(contents), 0o644)
	require.NoError(t, err)
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
root = "/srv/repo"
scratch = "/srv/scratch"
sections = ["node", "export"]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/repo", cfg.Root)
	assert.Equal(t, "/srv/scratch", cfg.Scratch)
	assert.Equal(t, []string{"node", "export"}, cfg.Sections)
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `root = "/srv/repo"`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/repo", ".scratch"), cfg.Scratch)
	assert.Equal(t, DefaultSections, cfg.Sections)
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()

	for _, test := range []struct {
		testName, contents string
	}{
		{"missing-root", `sections = ["node"]`},
		{"section-with-separator", "root = \"/srv/repo\"\nsections = [\"a/b\"]"},
		{"dotdot-section", "root = \"/srv/repo\"\nsections = [\"..\"]"},
		{"bad-toml", `root = `},
	} {
		t.Run(test.testName, func(t *testing.T) {
			path := writeConfig(t, dir, test.contents)
			_, err := LoadConfig(path)
			require.Error(t, err)
			if test.testName != "bad-toml" {
				assert.ErrorIs(t, err, folderjail.ErrInvalidInput)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
