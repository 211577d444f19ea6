// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package fib

import (
	"errors"
	"fmt"
)

// ErrOverflow is matched by an [*OverflowError] via [errors.Is].
var ErrOverflow = errors.New("fibonacci term overflows uint64")

// OverflowError is returned by [Checked] when the requested term does
// not fit in a uint64.
type OverflowError struct {
	// N is the requested index.
	N uint32
	// Index is the first term that overflowed.
	Index uint32
}

// Error implements error.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("F(%d): %v at F(%d)", e.N, ErrOverflow, e.Index)
}

// Unwrap returns [ErrOverflow].
func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}
