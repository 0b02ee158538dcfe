// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"io"

	"github.com/conch-sh/conch/internal/color"
)

// OutputOptions controls what WriteResult includes.
type OutputOptions struct {
	ShowOutput         bool // Whether to include each command's output value
	ShowSuccessDetails bool // Whether to show detail lines for successful commands
}

// DefaultOutputOptions returns a default set of output options.
func DefaultOutputOptions() *OutputOptions {
	return &OutputOptions{
		ShowOutput:         false,
		ShowSuccessDetails: false,
	}
}

// WriteResult writes an indented tree view of a result and its children to
// the provided writer.
func WriteResult(w io.Writer, r *Result, options *OutputOptions) error {
	if options == nil {
		options = DefaultOutputOptions()
	}

	return writeResultIndent(w, r, "", options)
}

func writeResultIndent(w io.Writer, r *Result, indent string, options *OutputOptions) error {
	var statusStr, labelPrefix string

	if r.Succeeded {
		statusStr = color.Colorize("✓", color.FgGreen)
		labelPrefix = color.ControlString(color.Bold, color.FgGreen)
	} else {
		statusStr = color.Colorize("✗", color.FgRed)
		labelPrefix = color.ControlString(color.Bold, color.FgRed)
	}

	label := r.Label
	if label == "" {
		label = "command"
	}

	if _, err := fmt.Fprintf(w, "%s%s %s%s%s\n", indent, statusStr, labelPrefix, label, color.ControlString(color.Reset)); err != nil {
		return fmt.Errorf("failed to write result line: %w", err)
	}

	showDetails := !r.Succeeded || options.ShowSuccessDetails

	if showDetails && r.Message != "" {
		if _, err := fmt.Fprintf(w, "%s  message: %s\n", indent, r.Message); err != nil {
			return fmt.Errorf("failed to write message line: %w", err)
		}
	}

	if options.ShowOutput && r.Output != nil {
		if _, err := fmt.Fprintf(w, "%s  output: %v\n", indent, r.Output); err != nil {
			return fmt.Errorf("failed to write output line: %w", err)
		}
	}

	for _, child := range r.Results {
		if err := writeResultIndent(w, child, indent+"  ", options); err != nil {
			return err
		}
	}

	return nil
}
