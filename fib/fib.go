// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package fib computes terms of the Fibonacci sequence, where F(0) = 0,
// F(1) = 1, and F(n) = F(n-1) + F(n-2).
//
// Terms are computed iteratively in constant space. Only the first
// [MaxIndex]+1 terms fit in a uint64. [Fibonacci] wraps around on
// overflow, while [Checked] reports an [ErrOverflow].
package fib

import (
	"iter"
	"math/bits"
)

// MaxIndex is the largest n for which F(n) can be represented as a
// uint64.
const MaxIndex = 93

// Fibonacci returns F(n). Results for n greater than [MaxIndex] are
// reduced modulo 2^64.
func Fibonacci(n uint32) uint64 {
	if n < 2 {
		return uint64(n)
	}
	var a, b uint64 = 0, 1
	for range n - 1 {
		a, b = b, a+b
	}
	return b
}

// Checked returns F(n) or an [*OverflowError] if the value cannot be
// represented as a uint64.
func Checked(n uint32) (uint64, error) {
	if n < 2 {
		return uint64(n), nil
	}
	var a, b uint64 = 0, 1
	for i := uint32(2); i <= n; i++ {
		sum, carry := bits.Add64(a, b, 0)
		if carry != 0 {
			return 0, &OverflowError{N: n, Index: i}
		}
		a, b = b, sum
	}
	return b, nil
}

// Seq returns a sequence of (n, F(n)) pairs, starting from zero. The
// sequence ends after [MaxIndex].
func Seq() iter.Seq2[uint32, uint64] {
	return func(yield func(uint32, uint64) bool) {
		var a, b uint64 = 0, 1
		for n := uint32(0); ; n++ {
			if !yield(n, a) || n == MaxIndex {
				return
			}
			a, b = b, a+b
		}
	}
}
