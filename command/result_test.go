// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultsOutputs(t *testing.T) {
	rs := Results{
		{Output: "a", Succeeded: true},
		{Output: 2, Succeeded: true},
		{Succeeded: false},
	}

	assert.Equal(t, []any{"a", 2, nil}, rs.Outputs())
	assert.Empty(t, Results{}.Outputs())
}

func TestResultsHasFailure(t *testing.T) {
	assert.False(t, Results{{Succeeded: true}}.HasFailure())
	assert.True(t, Results{{Succeeded: false}}.HasFailure())

	// A succeeded parent with a failed child still counts as a failure,
	// which is how parallel batch results are inspected.
	nested := Results{{
		Succeeded: true,
		Results:   Results{{Succeeded: false}},
	}}
	assert.True(t, nested.HasFailure())
}

func TestResultsErrAggregates(t *testing.T) {
	first := errors.New("first")

	rs := Results{
		{Succeeded: true},
		{Succeeded: false, Err: first},
		{Succeeded: false, Message: "reported only"},
	}

	err := rs.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, first)
	assert.Contains(t, err.Error(), "reported only")

	assert.NoError(t, Results{{Succeeded: true}}.Err())
}

func TestResultsErrIncludesNestedChildren(t *testing.T) {
	inner := errors.New("inner fault")

	rs := Results{{
		Succeeded: true,
		Results:   Results{{Succeeded: false, Err: inner}},
	}}

	assert.ErrorIs(t, rs.Err(), inner)
}
