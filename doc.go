// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package sequtil provides small, pure helpers for working with slices
// of arbitrary element types.
//
// Every function in this package leaves its inputs untouched and
// returns newly allocated slices. None of them retain references to
// their arguments, so they are safe to call from multiple goroutines as
// long as the inputs are not being mutated concurrently.
//
// # Partitioning and flattening
//
// [Chunk] splits a slice into consecutive chunks of bounded length.
// [Flatten] is its inverse:
//
//	chunks, err := sequtil.Chunk([]int{1, 2, 3, 4, 5}, 2)
//	// chunks == [][]int{{1, 2}, {3, 4}, {5}}
//	all := sequtil.Flatten(chunks)
//	// all == []int{1, 2, 3, 4, 5}
//
// A chunk size that is not positive is rejected with
// [ErrInvalidChunkSize].
//
// # Deduplication
//
// [Dedup] keeps the first occurrence of every distinct value. Use
// [DedupFunc] to compare elements by a derived key when the element
// type is not comparable or when only part of a value is significant.
//
// # Sorted slices
//
// [BinarySearch] and [Merge] require their inputs to be sorted in
// ascending order. This precondition is not verified; unsorted inputs
// produce unspecified (but memory-safe) results. The Func variants
// accept an explicit comparator that follows the same convention as
// [cmp.Compare].
//
// [BinarySearch] differs from [slices.BinarySearch] in that it returns
// as soon as any matching element is found. When the slice contains
// duplicates of the target, the reported index is not necessarily the
// first or last occurrence.
//
// [Merge] is stable: when elements compare equal, those from the first
// slice are emitted before those from the second.
//
// # Lazy sequences
//
// The [vawter.tech/sequtil/seq] package contains counterparts of these
// helpers which operate on [iter.Seq] values.
package sequtil
