// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import "context"

var _ Command = (*Func)(nil)

// Func adapts a plain function into a Command leaf.
type Func struct {
	ResultHolder

	// Label is an optional display name carried on results.
	Label string
	// Fn receives the call input and returns the output value. A returned
	// error is a fault: the runner converts it into a failed result. To
	// report failure without a fault, implement Command directly and return
	// a result with Succeeded set to false.
	Fn func(ctx context.Context, input any) (any, error)
}

// Run implements the Command interface for Func.
func (f *Func) Run(input any) (*Result, error) {
	return f.RunContext(context.Background(), input)
}

// RunContext implements the Command interface for Func.
func (f *Func) RunContext(ctx context.Context, input any) (*Result, error) {
	if f.Fn == nil {
		return &Result{Label: f.Label, Succeeded: true}, nil
	}

	output, err := f.Fn(ctx, input)
	if err != nil {
		return nil, err
	}

	return &Result{
		Label:     f.Label,
		Output:    output,
		Succeeded: true,
	}, nil
}
