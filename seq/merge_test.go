// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"cmp"
	"iter"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"vawter.tech/sequtil"
)

func TestMerge(t *testing.T) {
	r := require.New(t)

	merged := Merge(slices.Values([]int{1, 3, 5}), slices.Values([]int{2, 4, 6}))
	r.Equal([]int{1, 2, 3, 4, 5, 6}, slices.Collect(merged))

	// Repeatable.
	r.Equal([]int{1, 2, 3, 4, 5, 6}, slices.Collect(merged))
}

func TestMergeEmpty(t *testing.T) {
	r := require.New(t)

	empty := slices.Values([]int(nil))
	r.Empty(slices.Collect(Merge(empty, empty)))
	r.Equal([]int{1, 2}, slices.Collect(Merge(empty, slices.Values([]int{1, 2}))))
	r.Equal([]int{1, 2}, slices.Collect(Merge(slices.Values([]int{1, 2}), empty)))
}

func TestMergeFuncStable(t *testing.T) {
	r := require.New(t)

	type rec struct {
		Key int
		Src string
	}
	a := slices.Values([]rec{{1, "a"}, {2, "a"}, {3, "a"}})
	b := slices.Values([]rec{{1, "b"}, {3, "b"}})

	merged := MergeFunc(a, b, func(x, y rec) int { return cmp.Compare(x.Key, y.Key) })
	r.Equal([]rec{{1, "a"}, {1, "b"}, {2, "a"}, {3, "a"}, {3, "b"}}, slices.Collect(merged))
}

// trackedValues returns a sequence over the slice and a function that
// reports whether the most recent range over it has finished.
func trackedValues[E any](s []E) (iter.Seq[E], func() bool) {
	done := false
	return func(yield func(E) bool) {
		done = false
		defer func() { done = true }()
		for _, e := range s {
			if !yield(e) {
				return
			}
		}
	}, func() bool { return done }
}

func TestMergeEarlyBreakStopsInputs(t *testing.T) {
	r := require.New(t)

	a, aDone := trackedValues([]int{1, 3, 5, 7})
	b, bDone := trackedValues([]int{2, 4, 6, 8})

	var got []int
	for v := range Merge(a, b) {
		got = append(got, v)
		if v == 4 {
			break
		}
	}
	r.Equal([]int{1, 2, 3, 4}, got)
	r.True(aDone())
	r.True(bDone())
}

func TestMergeMatchesSlice(t *testing.T) {
	r := require.New(t)
	rnd := rand.New(rand.NewPCG(15, 16))

	for range 100 {
		a := make([]int, rnd.IntN(20))
		for i := range a {
			a[i] = rnd.IntN(30)
		}
		b := make([]int, rnd.IntN(20))
		for i := range b {
			b[i] = rnd.IntN(30)
		}
		slices.Sort(a)
		slices.Sort(b)

		expected := sequtil.Merge(a, b)
		got := slices.Collect(Merge(slices.Values(a), slices.Values(b)))
		if len(expected) == 0 {
			r.Empty(got)
		} else {
			r.Equal(expected, got)
		}
	}
}
