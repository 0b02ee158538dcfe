// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import "fmt"

// Operator defines how a Sequential decides whether to run the next child,
// mirroring the shell control operators.
type Operator int

const (
	// And runs the next child only while the previous one succeeded (shell &&).
	And Operator = iota
	// Or runs the next child only while the previous one failed (shell ||).
	Or
	// Always runs every child regardless of outcome (shell ;). The aggregate
	// result is forced to success.
	Always
)

const (
	andStr     = "and"
	orStr      = "or"
	alwaysStr  = "always"
	unknownStr = "unknown"
)

// String returns the string representation of the Operator.
func (o Operator) String() string {
	switch o {
	case And:
		return andStr
	case Or:
		return orStr
	case Always:
		return alwaysStr
	default:
		return unknownStr
	}
}

func (o Operator) valid() bool {
	switch o {
	case And, Or, Always:
		return true
	default:
		return false
	}
}

// ParseOperator creates an Operator from its string form.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case andStr:
		return And, nil
	case orStr:
		return Or, nil
	case alwaysStr:
		return Always, nil
	default:
		return Operator(-1), fmt.Errorf("%w: %q", ErrUnknownOperator, s)
	}
}

// MarshalText implements encoding.TextMarshaler so operators round-trip
// through YAML definitions.
func (o Operator) MarshalText() ([]byte, error) {
	if !o.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOperator, int(o))
	}

	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Operator) UnmarshalText(text []byte) error {
	parsed, err := ParseOperator(string(text))
	if err != nil {
		return err
	}

	*o = parsed

	return nil
}
