// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"runtime"
	"slices"
	"sync"

	"github.com/conch-sh/conch/internal/ctxlog"
)

var _ Command = (*Parallel)(nil)

// Parallel runs independent commands concurrently on a bounded worker pool.
// Children receive no input and share no state with each other or with the
// caller while running: workers hand results back only through the pool's
// result slots, and the completion barrier is the single synchronization
// point.
//
// Result and output order always match the input child order, regardless of
// completion order. The aggregate result itself always reports success; it
// reflects only that the batch mechanism ran. Inspect Results for per-child
// outcomes.
type Parallel struct {
	commands []Command
	settings settings
}

// NewParallel creates a Parallel over the given commands. The pool size
// defaults to the available hardware concurrency.
func NewParallel(commands []Command, opts ...Option) (*Parallel, error) {
	if len(commands) == 0 {
		return nil, ErrNoCommands
	}

	s := newSettings(opts)
	if s.poolSize <= 0 {
		s.poolSize = runtime.NumCPU()
	}

	return &Parallel{
		commands: slices.Clone(commands),
		settings: s,
	}, nil
}

// Run implements the Command interface for Parallel.
func (p *Parallel) Run(input any) (*Result, error) {
	if input != nil {
		return nil, ErrParallelInput
	}

	logger := ctxlog.Default().
		With("commandType", "Parallel").
		With("label", p.settings.label)

	workers := min(p.settings.poolSize, len(p.commands))
	logger.Debug("dispatching commands", "count", len(p.commands), "workers", workers)

	results := make([]*Result, len(p.commands))
	errs := make([]error, len(p.commands))
	jobs := make(chan int)

	wg := &sync.WaitGroup{}

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range jobs {
				results[i], errs[i] = Run(p.commands[i], nil)
			}
		}()
	}

	for i := range p.commands {
		jobs <- i
	}

	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	// Reconcile each pool result back onto the original child reference, in
	// input order, so callers inspecting a child see the same result as the
	// aggregate.
	for i, cmd := range p.commands {
		if rec, ok := cmd.(Recorder); ok {
			rec.RecordResult(results[i])
		}
	}

	res := &Result{
		Label:     p.settings.label,
		Succeeded: true,
	}

	if p.settings.collect {
		res.Results = results
		res.Output = res.Results.Outputs()
	}

	return res, nil
}

// RunContext implements the Command interface for Parallel. The suspendable
// path is not supported: it fails with ErrParallelSuspend.
func (p *Parallel) RunContext(_ context.Context, _ any) (*Result, error) {
	return nil, ErrParallelSuspend
}
