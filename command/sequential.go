// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/conch-sh/conch/internal/ctxlog"
)

var _ Command = (*Sequential)(nil)

// Sequential runs commands in order under a control operator, mirroring the
// shell &&, || and ; operators. Unlike Pipe, every child receives the same
// input: children are independent steps sharing one input, not a data
// pipeline.
//
// The aggregate output is the ordered list of collected child outputs, which
// is what makes nested sequentials compose like boolean short-circuit
// expressions: the inner sequence's aggregate success flag is what the outer
// operator evaluates.
type Sequential struct {
	commands []Command
	operator Operator
	settings settings
}

// NewSequential creates a Sequential over the given commands.
func NewSequential(commands []Command, operator Operator, opts ...Option) (*Sequential, error) {
	if len(commands) == 0 {
		return nil, ErrNoCommands
	}

	if !operator.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOperator, int(operator))
	}

	return &Sequential{
		commands: slices.Clone(commands),
		operator: operator,
		settings: newSettings(opts),
	}, nil
}

// Run implements the Command interface for Sequential.
func (s *Sequential) Run(input any) (*Result, error) {
	return s.exec(context.Background(), input, Run)
}

// RunContext implements the Command interface for Sequential.
func (s *Sequential) RunContext(ctx context.Context, input any) (*Result, error) {
	return s.exec(ctx, input, contextInvoker(ctx))
}

func (s *Sequential) exec(ctx context.Context, input any, invoke invoker) (*Result, error) {
	logger := ctxlog.Logger(ctx).
		With("commandType", "Sequential").
		With("label", s.settings.label).
		With("operator", s.operator.String())

	var (
		collected Results
		outputs   []any
		last      *Result
	)

	for i, cmd := range s.commands {
		if err := ctx.Err(); err != nil {
			logger.Debug("context done, stopping sequence", "step", i)

			return stopped(s.settings.label, collected, err), nil
		}

		res, err := invoke(cmd, input)
		if err != nil {
			return nil, err
		}

		last = res

		if s.settings.collect {
			collected = append(collected, res)
			outputs = append(outputs, res.Output)
		}

		if s.stop(res) {
			logger.Debug("sequence short-circuit", "step", i, "succeeded", res.Succeeded)
			break
		}
	}

	if !s.settings.collect {
		outputs = []any{last.Output}
	}

	res := &Result{
		Label:     s.settings.label,
		Output:    outputs,
		Succeeded: last.Succeeded,
		Err:       last.Err,
		Message:   last.Message,
		Results:   collected,
	}

	// The ; operator forces the aggregate to success. Clearing the error
	// keeps the succeeded/error invariant; per-child failures stay visible
	// in Results.
	if s.operator == Always {
		res.Succeeded = true
		res.Err = nil
	}

	return res, nil
}

func (s *Sequential) stop(res *Result) bool {
	switch s.operator {
	case And:
		return !res.Succeeded
	case Or:
		return res.Succeeded
	default:
		return false
	}
}
