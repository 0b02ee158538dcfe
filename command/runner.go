// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
)

// invoker abstracts the two runner entry points so composites can share one
// execution loop between the synchronous and the suspendable path.
type invoker func(cmd Command, input any) (*Result, error)

// Run executes cmd synchronously through the fault boundary. Any panic or
// non-contract error raised during execution is converted into a failed
// Result; contract errors pass through unchanged. This is the only place
// faults are translated into data, so composites never need their own
// recovery.
func Run(cmd Command, input any) (res *Result, err error) {
	defer func() {
		recoverFault(cmd, recover(), &res, &err)
	}()

	res, err = cmd.Run(input)

	return normalize(cmd, res, err)
}

// RunContext is the suspendable counterpart of Run, with identical fault
// handling semantics.
func RunContext(ctx context.Context, cmd Command, input any) (res *Result, err error) {
	defer func() {
		recoverFault(cmd, recover(), &res, &err)
	}()

	res, err = cmd.RunContext(ctx, input)

	return normalize(cmd, res, err)
}

func contextInvoker(ctx context.Context) invoker {
	return func(cmd Command, input any) (*Result, error) {
		return RunContext(ctx, cmd, input)
	}
}

func normalize(cmd Command, res *Result, err error) (*Result, error) {
	switch {
	case err == nil:
		if res == nil {
			res = &Result{Succeeded: true}
		}
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrUnsupportedOperation):
		return nil, err
	default:
		res = &Result{
			Succeeded: false,
			Err:       err,
			Message:   err.Error(),
		}
	}

	if rec, ok := cmd.(Recorder); ok {
		rec.RecordResult(res)
	}

	return res, nil
}

func recoverFault(cmd Command, recovered any, res **Result, err *error) {
	if recovered == nil {
		return
	}

	perr := NewPanicError(recovered)
	failed := &Result{
		Succeeded: false,
		Err:       perr,
		Message:   perr.Error(),
	}

	if rec, ok := cmd.(Recorder); ok {
		rec.RecordResult(failed)
	}

	*res, *err = failed, nil
}

// stopped builds the result returned when a composite observes context
// cancellation at a child boundary.
func stopped(label string, collected Results, err error) *Result {
	return &Result{
		Label:     label,
		Succeeded: false,
		Err:       err,
		Message:   "execution stopped: " + err.Error(),
		Results:   collected,
	}
}
