// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package proc

import "bytes"

// cappedBuffer accepts writes up to a maximum size and records when the
// limit was crossed. Writes never error so the process can run to completion
// and report its exit code; the overflow is surfaced on the result instead.
type cappedBuffer struct {
	buf        bytes.Buffer
	max        int
	overflowed bool
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	remaining := b.max - b.buf.Len()

	if remaining <= 0 {
		b.overflowed = true
		return len(p), nil
	}

	if len(p) > remaining {
		b.overflowed = true
		b.buf.Write(p[:remaining])

		return len(p), nil
	}

	return b.buf.Write(p)
}

func (b *cappedBuffer) String() string {
	return b.buf.String()
}
