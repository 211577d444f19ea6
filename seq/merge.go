// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"cmp"
	"iter"
)

// Merge returns a sequence that combines two ascending sequences into a
// single ascending sequence. The merge is stable: an element of a is
// emitted before an equal element of b. Neither input is verified to
// be sorted.
func Merge[E cmp.Ordered](a, b iter.Seq[E]) iter.Seq[E] {
	return MergeFunc(a, b, cmp.Compare[E])
}

// MergeFunc is like [Merge], but orders elements using the comparison
// function.
func MergeFunc[E any](a, b iter.Seq[E], cmp func(E, E) int) iter.Seq[E] {
	return func(yield func(E) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()

		headA, okA := nextA()
		headB, okB := nextB()
		for okA && okB {
			// Ties favor a.
			if cmp(headA, headB) <= 0 {
				if !yield(headA) {
					return
				}
				headA, okA = nextA()
			} else {
				if !yield(headB) {
					return
				}
				headB, okB = nextB()
			}
		}

		// At most one of these loops will execute.
		for ; okA; headA, okA = nextA() {
			if !yield(headA) {
				return
			}
		}
		for ; okB; headB, okB = nextB() {
			if !yield(headB) {
				return
			}
		}
	}
}
