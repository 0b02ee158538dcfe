// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package command defines a uniform abstraction for an executable unit of
// work and a set of combinators that compose such units into larger
// workflows, mirroring the shell |, &&, || and ; operators as in-process,
// typed objects.
//
// Every unit implements the Command interface and produces a Result. The
// Run/RunContext functions form the single fault boundary: panics and
// returned errors are normalized into failed results there, so a top-level
// caller always receives either a clean result or a contract error wrapping
// ErrInvalidArgument or ErrUnsupportedOperation.
//
// Composites own their child list from construction and recursively invoke
// the runner on each child, which allows arbitrary nesting: a Sequential of
// Sequentials behaves like a nested boolean short-circuit expression, and a
// Pipe stage may itself be a Parallel batch.
package command
