// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package sequtil

// Dedup returns a new slice that contains each distinct value of the
// input exactly once, in the order of its first occurrence.
//
// Values are tracked using a map, so an interface-typed element whose
// dynamic type is not comparable will cause a panic. Use [DedupFunc]
// to derive a comparable key in that case.
func Dedup[S ~[]E, E comparable](s S) S {
	return DedupFunc(s, func(e E) E { return e })
}

// DedupFunc is like [Dedup], but elements are considered to be
// duplicates if the key function returns equal values for them. The
// first element that produces a given key is retained.
func DedupFunc[S ~[]E, E any, K comparable](s S, key func(E) K) S {
	if len(s) == 0 {
		return nil
	}

	seen := make(map[K]struct{}, len(s))
	ret := make(S, 0, len(s))
	for _, e := range s {
		k := key(e)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		ret = append(ret, e)
	}
	return ret
}
