// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlString(t *testing.T) {
	if !Enabled() {
		assert.Empty(t, ControlString(Bold, FgRed))
		return
	}

	assert.Equal(t, "\033[1;31m", ControlString(Bold, FgRed))
}

func TestColorizeDisabledReturnsInput(t *testing.T) {
	if Enabled() {
		t.Skip("color enabled in this environment")
	}

	assert.Equal(t, "plain", Colorize("plain", FgGreen))
}
