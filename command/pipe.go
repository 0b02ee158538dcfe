// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"slices"

	"github.com/conch-sh/conch/internal/ctxlog"
)

var _ Command = (*Pipe)(nil)

// Pipe chains commands so that each child's output becomes the next child's
// input, mirroring the shell | operator. The pipeline short-circuits at the
// first failed child; the aggregate result carries the last executed child's
// output, success flag and error details.
type Pipe struct {
	commands []Command
	settings settings
}

// NewPipe creates a Pipe over the given commands.
func NewPipe(commands []Command, opts ...Option) (*Pipe, error) {
	if len(commands) == 0 {
		return nil, ErrNoCommands
	}

	return &Pipe{
		commands: slices.Clone(commands),
		settings: newSettings(opts),
	}, nil
}

// Run implements the Command interface for Pipe.
func (p *Pipe) Run(input any) (*Result, error) {
	return p.exec(context.Background(), input, Run)
}

// RunContext implements the Command interface for Pipe.
func (p *Pipe) RunContext(ctx context.Context, input any) (*Result, error) {
	return p.exec(ctx, input, contextInvoker(ctx))
}

func (p *Pipe) exec(ctx context.Context, input any, invoke invoker) (*Result, error) {
	logger := ctxlog.Logger(ctx).
		With("commandType", "Pipe").
		With("label", p.settings.label)

	var (
		collected Results
		last      *Result
	)

	current := input

	for i, cmd := range p.commands {
		if err := ctx.Err(); err != nil {
			logger.Debug("context done, stopping pipeline", "stage", i)

			return stopped(p.settings.label, collected, err), nil
		}

		res, err := invoke(cmd, current)
		if err != nil {
			return nil, err
		}

		last = res

		if p.settings.collect {
			collected = append(collected, res)
		}

		if !res.Succeeded {
			logger.Debug("pipeline stage failed, stopping", "stage", i, "message", res.Message)
			break
		}

		current = res.Output
	}

	return &Result{
		Label:     p.settings.label,
		Output:    last.Output,
		Succeeded: last.Succeeded,
		Err:       last.Err,
		Message:   last.Message,
		Results:   collected,
	}, nil
}
