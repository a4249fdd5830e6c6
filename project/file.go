// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveFile writes the document to path atomically: the JSON is written to
// a temporary file in the same directory and renamed over the target, so a
// crash mid-save never leaves a truncated project behind.
func SaveFile(path string, d *Document) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".sketch-save-*")
	if err != nil {
		return fmt.Errorf("project: save %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := Save(tmp, d); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("project: save %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("project: save %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("project: save %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a document from path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("project: load %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
