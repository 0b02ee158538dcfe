// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

type settings struct {
	label    string
	collect  bool
	poolSize int
}

func newSettings(opts []Option) settings {
	s := settings{collect: true}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// Option configures a composite command at construction time.
type Option func(*settings)

// WithLabel sets a display name carried on the composite's results.
func WithLabel(label string) Option {
	return func(s *settings) {
		s.label = label
	}
}

// WithoutResults disables per-child result collection. The aggregate
// Results slice stays empty and Sequential's output collapses to the last
// executed child's output.
func WithoutResults() Option {
	return func(s *settings) {
		s.collect = false
	}
}

// WithPoolSize sets the worker pool size for Parallel. Other composites
// ignore it. Values below one fall back to the available hardware
// concurrency.
func WithPoolSize(n int) Option {
	return func(s *settings) {
		s.poolSize = n
	}
}
