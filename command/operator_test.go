// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorString(t *testing.T) {
	assert.Equal(t, "and", And.String())
	assert.Equal(t, "or", Or.String())
	assert.Equal(t, "always", Always.String())
	assert.Equal(t, "unknown", Operator(99).String())
}

func TestParseOperator(t *testing.T) {
	for _, want := range []Operator{And, Or, Always} {
		got, err := ParseOperator(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseOperator("nand")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestOperatorTextRoundTrip(t *testing.T) {
	for _, want := range []Operator{And, Or, Always} {
		text, err := want.MarshalText()
		require.NoError(t, err)

		var got Operator
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, want, got)
	}
}

func TestOperatorMarshalUnknownFails(t *testing.T) {
	_, err := Operator(-1).MarshalText()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperator)
}
