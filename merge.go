// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package sequtil

import "cmp"

// Merge combines two slices, each sorted in ascending order, into a new
// sorted slice containing every element of both. The merge is stable:
// an element of a is emitted before an equal element of b.
//
// The result is nil if both inputs are empty.
func Merge[S ~[]E, E cmp.Ordered](a, b S) S {
	return MergeFunc(a, b, cmp.Compare[E])
}

// MergeFunc is like [Merge], but orders elements using the comparison
// function. The cmp function should return a negative number when its
// first argument precedes the second, zero when they are equivalent,
// and a positive number otherwise.
func MergeFunc[S ~[]E, E any](a, b S, cmp func(E, E) int) S {
	if len(a)+len(b) == 0 {
		return nil
	}

	ret := make(S, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		// Ties favor a.
		if cmp(a[i], b[j]) <= 0 {
			ret = append(ret, a[i])
			i++
		} else {
			ret = append(ret, b[j])
			j++
		}
	}
	ret = append(ret, a[i:]...)
	ret = append(ret, b[j:]...)
	return ret
}
