// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package sequtil

import (
	"cmp"
	"math/rand/v2"
	"slices"
)

// Max returns the first maximal element of the slice. It returns
// [ErrEmpty] if the slice has no elements.
//
// Unlike [slices.Max], a NaN element is not propagated; the ordering is
// that of [cmp.Compare], in which NaN sorts before every other value.
func Max[S ~[]E, E cmp.Ordered](s S) (E, error) {
	return MaxFunc(s, cmp.Compare[E])
}

// MaxFunc is like [Max], but uses a custom comparison function. If
// several elements are maximal, the first one is returned.
func MaxFunc[S ~[]E, E any](s S, cmp func(a, b E) int) (E, error) {
	if len(s) == 0 {
		return *new(E), ErrEmpty
	}
	ret := s[0]
	for _, e := range s[1:] {
		if cmp(e, ret) > 0 {
			ret = e
		}
	}
	return ret, nil
}

// Shuffle returns a copy of the slice with its elements in a
// pseudo-random order. The input is not modified. If r is nil, the
// top-level generator from [math/rand/v2] is used.
func Shuffle[S ~[]E, E any](s S, r *rand.Rand) S {
	if len(s) == 0 {
		return nil
	}
	ret := slices.Clone(s)
	swap := func(i, j int) { ret[i], ret[j] = ret[j], ret[i] }
	if r == nil {
		rand.Shuffle(len(ret), swap)
	} else {
		r.Shuffle(len(ret), swap)
	}
	return ret
}
