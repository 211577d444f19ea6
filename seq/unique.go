// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import "iter"

// Unique returns a sequence that emits each distinct value of the input
// the first time that it is seen. Every distinct value is retained in
// memory until the range loop ends.
func Unique[E comparable](items iter.Seq[E]) iter.Seq[E] {
	return UniqueFunc(items, func(e E) E { return e })
}

// UniqueFunc is like [Unique], but values are considered to be
// duplicates if the key function returns equal values for them.
func UniqueFunc[E any, K comparable](items iter.Seq[E], key func(E) K) iter.Seq[E] {
	return func(yield func(E) bool) {
		seen := make(map[K]struct{})
		for item := range items {
			k := key(item)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if !yield(item) {
				return
			}
		}
	}
}
