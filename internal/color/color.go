// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides ANSI control strings for terminal output. Color is
// disabled when NO_COLOR is set or when stdout is not a terminal, and forced
// on when FORCE_COLOR is set.
package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Code represents an ANSI control code for text formatting.
type Code int

// Control codes used by the result writer.
const (
	Reset Code = iota
	Bold
	Faint
	Italic
	Underline
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	prefix = "\033["
	suffix = "m"
	reset  = "\033[0m"
)

var enabled bool

func init() {
	enabled = isColorEnabled()
}

// Enabled reports whether color output is on. It is determined once at
// package init.
func Enabled() bool {
	return enabled
}

// ControlString generates an ANSI control sequence for the given codes, or
// an empty string when color is disabled.
func ControlString(codes ...Code) string {
	if !enabled {
		return ""
	}

	sb := strings.Builder{}
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)

	return sb.String()
}

// Colorize wraps str in the given control codes followed by a reset. When
// color is disabled the string is returned as is.
func Colorize(str string, codes ...Code) string {
	if !enabled {
		return str
	}

	return ControlString(codes...) + str + reset
}

func isColorEnabled() bool {
	if os.Getenv(NoColor) != "" {
		return false
	}

	if os.Getenv(ForceColor) != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
