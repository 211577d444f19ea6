// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"fmt"
	"iter"

	"vawter.tech/sequtil"
)

// maxPrealloc caps the initial capacity of a chunk buffer.
const maxPrealloc = 64

// Chunk returns a sequence that groups the input into consecutive
// slices of at most size elements. Every chunk except the last will
// contain exactly size elements. Each chunk is newly allocated, so the
// caller may retain it.
//
// The size is validated eagerly; a size that is not positive returns
// an error that wraps [sequtil.ErrInvalidChunkSize].
func Chunk[E any](items iter.Seq[E], size int) (iter.Seq[[]E], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", sequtil.ErrInvalidChunkSize, size)
	}
	return func(yield func([]E) bool) {
		var buf []E
		for item := range items {
			if buf == nil {
				buf = make([]E, 0, min(size, maxPrealloc))
			}
			buf = append(buf, item)
			if len(buf) < size {
				continue
			}
			if !yield(buf) {
				return
			}
			buf = nil
		}
		// Emit a trailing, partial chunk.
		if len(buf) > 0 {
			yield(buf)
		}
	}, nil
}
