// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fsutil provides filesystem traversal helpers: a file lister with
// include/exclude name patterns and a Command leaf wrapping it.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

type listOptions struct {
	include   []string
	exclude   []string
	recursive bool
}

// ListOption configures ListFiles.
type ListOption func(*listOptions)

// WithInclude restricts results to files whose base name matches at least
// one of the given glob patterns. The default includes every file.
func WithInclude(patterns ...string) ListOption {
	return func(o *listOptions) {
		o.include = patterns
	}
}

// WithExclude drops files whose base name matches any of the given glob
// patterns. Exclusion is applied after inclusion.
func WithExclude(patterns ...string) ListOption {
	return func(o *listOptions) {
		o.exclude = patterns
	}
}

// WithoutRecursion limits the listing to the root directory itself.
func WithoutRecursion() ListOption {
	return func(o *listOptions) {
		o.recursive = false
	}
}

// ListFiles returns the files under root on fsys, filtered by the include
// and exclude patterns, in walk (lexical) order. Directories are never
// returned.
func ListFiles(fsys afero.Fs, root string, opts ...ListOption) ([]string, error) {
	o := listOptions{recursive: true}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validatePatterns(o.include); err != nil {
		return nil, err
	}

	if err := validatePatterns(o.exclude); err != nil {
		return nil, err
	}

	var files []string

	if !o.recursive {
		entries, err := afero.ReadDir(fsys, root)
		if err != nil {
			return nil, fmt.Errorf("list files: %w", err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			if o.matches(entry.Name()) {
				files = append(files, filepath.Join(root, entry.Name()))
			}
		}

		return files, nil
	}

	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if o.matches(info.Name()) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	return files, nil
}

func (o *listOptions) matches(name string) bool {
	if len(o.include) > 0 && !matchAny(o.include, name) {
		return false
	}

	return !matchAny(o.exclude, name)
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		// Patterns are validated up front, so the error is unreachable here.
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}

	return false
}

func validatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("list files: invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	return nil
}
