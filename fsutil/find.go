// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package fsutil

import (
	"context"

	"github.com/spf13/afero"

	"github.com/conch-sh/conch/command"
)

// FsFactory returns the filesystem used by Find commands that have none set.
// It is a package variable so tests can substitute a memory-backed fs.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

var _ command.Command = (*Find)(nil)

// Find lists files as a Command leaf, so filesystem traversals can take part
// in pipelines and batches. Its output is the ordered slice of matching file
// paths.
type Find struct {
	command.ResultHolder

	Label     string
	Root      string
	Include   []string
	Exclude   []string
	Recursive bool
	Fs        afero.Fs // nil means FsFactory()
}

// NewFind creates a recursive Find rooted at root.
func NewFind(root string) *Find {
	return &Find{
		Root:      root,
		Recursive: true,
	}
}

// Run implements the command.Command interface.
func (f *Find) Run(input any) (*command.Result, error) {
	return f.RunContext(context.Background(), input)
}

// RunContext implements the command.Command interface. The input is ignored:
// the traversal is fully described by the Find fields.
func (f *Find) RunContext(_ context.Context, _ any) (*command.Result, error) {
	fsys := f.Fs
	if fsys == nil {
		fsys = FsFactory()
	}

	opts := make([]ListOption, 0, 3)

	if len(f.Include) > 0 {
		opts = append(opts, WithInclude(f.Include...))
	}

	if len(f.Exclude) > 0 {
		opts = append(opts, WithExclude(f.Exclude...))
	}

	if !f.Recursive {
		opts = append(opts, WithoutRecursion())
	}

	files, err := ListFiles(fsys, f.Root, opts...)
	if err != nil {
		return nil, err
	}

	return &command.Result{
		Label:     f.label(),
		Output:    files,
		Succeeded: true,
	}, nil
}

func (f *Find) label() string {
	if f.Label != "" {
		return f.Label
	}

	return "find " + f.Root
}
