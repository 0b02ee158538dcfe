// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSequentialRejectsEmptyCommands(t *testing.T) {
	for _, commands := range [][]Command{nil, {}} {
		_, err := NewSequential(commands, And)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestNewSequentialRejectsUnknownOperator(t *testing.T) {
	_, err := NewSequential([]Command{&appendCmd{token: "A"}}, Operator(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperator)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSequentialAndStopsAtFirstFailure(t *testing.T) {
	tail := &appendCmd{token: "C"}

	seq, err := NewSequential([]Command{
		&appendCmd{token: "A"},
		&reportFailCmd{message: "step failed"},
		tail,
	}, And)
	require.NoError(t, err)

	res, err := seq.Run(nil)
	require.NoError(t, err)

	assert.False(t, res.Succeeded)
	assert.Equal(t, []any{"A", nil}, res.Output)
	assert.Equal(t, "step failed", res.Message)
	assert.Len(t, res.Results, 2)
	assert.Zero(t, tail.runs)
}

func TestSequentialSharesInputAcrossChildren(t *testing.T) {
	seq, err := NewSequential([]Command{
		&appendCmd{token: "A"},
		&appendCmd{token: "B"},
	}, And)
	require.NoError(t, err)

	res, err := seq.Run("x")
	require.NoError(t, err)

	// No output chaining: both children see the same input.
	assert.Equal(t, []any{"xA", "xB"}, res.Output)
}

func TestSequentialOrStopsAtFirstSuccess(t *testing.T) {
	first := &reportFailCmd{message: "no"}
	second := &reportFailCmd{message: "still no"}
	third := &appendCmd{token: "OK"}
	fourth := &appendCmd{token: "never"}

	seq, err := NewSequential([]Command{first, second, third, fourth}, Or)
	require.NoError(t, err)

	res, err := seq.Run(nil)
	require.NoError(t, err)

	assert.True(t, res.Succeeded)
	assert.Equal(t, 1, first.runs)
	assert.Equal(t, 1, second.runs)
	assert.Equal(t, 1, third.runs)
	assert.Zero(t, fourth.runs, "children after the first success must not run")
	assert.Len(t, res.Results, 3)
}

func TestSequentialAlwaysRunsEveryChild(t *testing.T) {
	first := &reportFailCmd{message: "one"}
	second := &reportFailCmd{message: "two"}
	third := &reportFailCmd{message: "three"}

	seq, err := NewSequential([]Command{first, second, third}, Always)
	require.NoError(t, err)

	res, err := seq.Run(nil)
	require.NoError(t, err)

	assert.True(t, res.Succeeded, "the ; operator forces success")
	assert.NoError(t, res.Err)
	assert.Equal(t, 1, first.runs)
	assert.Equal(t, 1, second.runs)
	assert.Equal(t, 1, third.runs)
	assert.Len(t, res.Results, 3)
	assert.True(t, res.Results.HasFailure())
}

func TestSequentialWithoutResultsCollection(t *testing.T) {
	seq, err := NewSequential([]Command{
		&appendCmd{token: "A"},
		&appendCmd{token: "B"},
	}, And, WithoutResults())
	require.NoError(t, err)

	res, err := seq.Run(nil)
	require.NoError(t, err)

	assert.Equal(t, []any{"B"}, res.Output, "collection disabled collapses to the last output")
	assert.Empty(t, res.Results)
}

// Nested sequentials compose like boolean short-circuit expressions:
// Sequential([A,B], And) Or'd with Sequential([C,D], And) behaves like
// (A&&B)||(C&&D) over each child's succeeded flag.
func TestSequentialNestingLeftBranchSucceeds(t *testing.T) {
	left, err := NewSequential([]Command{
		&appendCmd{token: "A"},
		&appendCmd{token: "B"},
	}, And)
	require.NoError(t, err)

	rightC := &appendCmd{token: "C"}

	right, err := NewSequential([]Command{rightC, &appendCmd{token: "D"}}, And)
	require.NoError(t, err)

	outer, err := NewSequential([]Command{left, right}, Or)
	require.NoError(t, err)

	res, err := outer.Run(nil)
	require.NoError(t, err)

	assert.True(t, res.Succeeded)
	assert.Equal(t, []any{[]any{"A", "B"}}, res.Output)
	assert.Zero(t, rightC.runs, "right branch must not run when the left succeeds")
}

func TestSequentialNestingLeftBranchFails(t *testing.T) {
	left, err := NewSequential([]Command{
		&appendCmd{token: "A"},
		&reportFailCmd{message: "left broke"},
	}, And)
	require.NoError(t, err)

	right, err := NewSequential([]Command{
		&appendCmd{token: "C"},
		&appendCmd{token: "D"},
	}, And)
	require.NoError(t, err)

	outer, err := NewSequential([]Command{left, right}, Or)
	require.NoError(t, err)

	res, err := outer.Run(nil)
	require.NoError(t, err)

	assert.True(t, res.Succeeded)
	assert.Equal(t, []any{
		[]any{"A", nil},
		[]any{"C", "D"},
	}, res.Output)
}
