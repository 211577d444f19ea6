// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package sequtil

import "cmp"

// BinarySearch looks for target in a slice that is sorted in ascending
// order. It returns the index of a matching element and true, or -1
// and false if no element is equal to target.
//
// The caller is responsible for ensuring that the slice is sorted. The
// search returns as soon as it finds any element equal to the target,
// so if the slice contains duplicates, the index is determined by the
// sequence of midpoints examined. See [slices.BinarySearch] if the
// first occurrence is required.
func BinarySearch[S ~[]E, E cmp.Ordered](s S, target E) (int, bool) {
	return BinarySearchFunc(s, target, cmp.Compare[E])
}

// BinarySearchFunc is like [BinarySearch], but uses a custom comparison
// function. The slice must be sorted in increasing order, where
// "increasing" is defined by cmp. The cmp function should return 0 if
// the slice element matches the target, a negative number if the slice
// element precedes the target, or a positive number if the slice
// element follows the target.
func BinarySearchFunc[S ~[]E, E, T any](s S, target T, cmp func(E, T) int) (int, bool) {
	left, right := 0, len(s)
	for left < right {
		mid := left + (right-left)/2
		switch c := cmp(s[mid], target); {
		case c == 0:
			return mid, true
		case c < 0:
			left = mid + 1
		default:
			right = mid
		}
	}
	return -1, false
}
