// SPDX-License-Identifier: BSD-3-Clause

// Copyright (C) 2025-2026 The folderjail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/materialsflow/folderjail"
)

// DefaultSections are the repository sections available when a config does
// not declare its own whitelist.
var DefaultSections = []string{"node", "workflow", "raw_input"}

// Config describes where a repository lives on disk and which sections it
// accepts.
type Config struct {
	// Root is the repository root directory. It doubles as the boundary
	// every folder handed out by the repository is confined to.
	Root string `toml:"root"`

	// Scratch is the directory sandboxes are created under. Defaults to
	// ".scratch" inside Root.
	Scratch string `toml:"scratch"`

	// Sections is the whitelist of section names. Defaults to
	// DefaultSections.
	Sections []string `toml:"sections"`
}

// DefaultConfig returns a Config rooted at root with default scratch
// location and sections.
func DefaultConfig(root string) Config {
	return Config{
		Root:     root,
		Scratch:  filepath.Join(root, ".scratch"),
		Sections: append([]string(nil), DefaultSections...),
	}
}

// LoadConfig reads a TOML repository config from path, fills in defaults
// for omitted fields and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse repository config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("repository config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Scratch == "" && c.Root != "" {
		c.Scratch = filepath.Join(c.Root, ".scratch")
	}
	if len(c.Sections) == 0 {
		c.Sections = append([]string(nil), DefaultSections...)
	}
}

// Validate checks the config for missing or malformed values.
func (c Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("%w: repository root must be set", folderjail.ErrInvalidInput)
	}
	for _, section := range c.Sections {
		if section == "" || section == "." || section == ".." || section != filepath.Base(section) {
			return fmt.Errorf("%w: section %q must be a bare directory name", folderjail.ErrInvalidInput, section)
		}
	}
	return nil
}
