// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package sequtil

import (
	"fmt"
	"slices"
)

// Chunk partitions the slice into consecutive chunks of at most size
// elements, preserving the original order. Every chunk except the last
// will contain exactly size elements.
//
// Each chunk is a copy; modifying a chunk does not affect the input. An
// empty input yields a nil result. A size that is not positive returns
// an error that wraps [ErrInvalidChunkSize].
func Chunk[S ~[]E, E any](s S, size int) ([]S, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
	}
	if len(s) == 0 {
		return nil, nil
	}

	count := len(s) / size
	if len(s)%size != 0 {
		count++
	}
	ret := make([]S, 0, count)
	for len(s) > 0 {
		n := min(size, len(s))
		ret = append(ret, slices.Clone(s[:n]))
		s = s[n:]
	}
	return ret, nil
}

// Flatten concatenates the nested slices into a single new slice. It is
// the inverse of [Chunk]. Only one level of nesting is removed.
func Flatten[S ~[]E, E any](nested []S) S {
	total := 0
	for _, s := range nested {
		total += len(s)
	}
	if total == 0 {
		return nil
	}

	ret := make(S, 0, total)
	for _, s := range nested {
		ret = append(ret, s...)
	}
	return ret
}
