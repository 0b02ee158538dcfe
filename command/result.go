// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

// Result represents the outcome of exactly one execution of exactly one
// command. It is created once per execution attempt, is not mutated after it
// is returned, and is owned by the caller that invoked the runner.
type Result struct {
	Label     string  // Optional display name of the command that produced the result.
	Output    any     // The domain value produced; nil when a leaf fails.
	Succeeded bool    // The single source of truth for success or failure.
	Err       error   // The underlying fault, if one was raised; nil when failure was only reported.
	Message   string  // Human-readable description, set whenever Succeeded is false.
	Metadata  any     // Free-form side-channel data, e.g. *proc.Info.
	Results   Results // Ordered child results for composite commands, gated by result collection.
}

// Results is an ordered slice of results. Insertion order is execution order
// for serial composites and input order for parallel ones.
type Results []*Result

// Outputs returns the Output of each result, preserving order.
func (rs Results) Outputs() []any {
	outputs := make([]any, len(rs))
	for i, r := range rs {
		outputs[i] = r.Output
	}

	return outputs
}

// HasFailure reports whether any result in the slice, or any of its
// children, did not succeed.
func (rs Results) HasFailure() bool {
	for _, r := range rs {
		if !r.Succeeded {
			return true
		}

		if r.Results.HasFailure() {
			return true
		}
	}

	return false
}

// Err aggregates the errors of all failed results, including nested
// children. Failed results that carry no error contribute their message.
func (rs Results) Err() error {
	var merr *multierror.Error

	for _, r := range rs {
		if !r.Succeeded {
			switch {
			case r.Err != nil:
				merr = multierror.Append(merr, r.Err)
			case r.Message != "":
				merr = multierror.Append(merr, errors.New(r.Message))
			}
		}

		if err := r.Results.Err(); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return merr.ErrorOrNil()
}
