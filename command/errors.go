// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a construction or invocation contract
	// violation. It is returned as an error, never folded into a Result.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedOperation reports an execution path a command does not
	// implement.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrNoCommands is returned when a composite is constructed with a nil or
	// empty child list.
	ErrNoCommands = fmt.Errorf("%w: commands list cannot be nil or empty", ErrInvalidArgument)
	// ErrParallelInput is returned when input is supplied to a parallel batch,
	// whose children are independent by contract.
	ErrParallelInput = fmt.Errorf("%w: parallel commands do not accept input", ErrInvalidArgument)
	// ErrUnknownOperator is returned when a sequential operator is not one of
	// And, Or or Always.
	ErrUnknownOperator = fmt.Errorf("%w: unknown operator", ErrInvalidArgument)
	// ErrParallelSuspend is returned when a parallel batch is invoked through
	// the suspendable path. Pool execution and cooperative suspension are
	// mutually exclusive execution models.
	ErrParallelSuspend = fmt.Errorf("%w: parallel commands cannot run cooperatively", ErrUnsupportedOperation)
)

// PanicError wraps a value recovered from a panicking command. It is
// constructed at the runner boundary and carried in Result.Err.
type PanicError struct {
	value any
}

// NewPanicError creates a PanicError from a recovered value.
func NewPanicError(v any) *PanicError {
	return &PanicError{value: v}
}

// Error implements the error interface for PanicError.
func (e *PanicError) Error() string {
	const prefix = "command panic: "

	switch x := e.value.(type) {
	case string:
		return prefix + x
	case error:
		return prefix + x.Error()
	default:
		return fmt.Sprintf("%s%v", prefix, x)
	}
}

// Value returns the recovered panic value.
func (e *PanicError) Value() any {
	return e.value
}
