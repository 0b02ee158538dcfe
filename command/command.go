// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"sync"
)

// Command is the unit of work understood by every combinator. Leaves and
// composites implement the same contract, which is what allows arbitrary
// nesting.
//
// Input handling is stateless: the input is an explicit argument on every
// call and commands never read it from their own fields, so a Command value
// is reusable across runs.
//
// The returned error is reserved for contract violations, wrapping
// ErrInvalidArgument or ErrUnsupportedOperation. Execution faults must be
// returned as ordinary errors or panics; the runner normalizes them into a
// failed Result, so they never escape a composite.
type Command interface {
	// Run executes the command synchronously with the given input.
	Run(input any) (*Result, error)

	// RunContext executes the command cooperatively. Cancellation is observed
	// only at child invocation boundaries, never mid-child.
	RunContext(ctx context.Context, input any) (*Result, error)
}

// Recorder is implemented by commands that retain a copy of their most
// recent result. The runner records into it after every normalized
// execution, and Parallel reconciles pool results back through it so that
// callers inspecting a child see the same result as the aggregate.
type Recorder interface {
	RecordResult(*Result)
	LastResult() *Result
}

// ResultHolder is an embeddable Recorder implementation.
type ResultHolder struct {
	mu   sync.Mutex
	last *Result
}

// RecordResult stores r as the most recent result.
func (h *ResultHolder) RecordResult(r *Result) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = r
}

// LastResult returns the most recent recorded result, or nil if the command
// has not run yet.
func (h *ResultHolder) LastResult() *Result {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.last
}
