// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package sequtil

import "errors"

// ErrInvalidChunkSize is returned by [Chunk] when the requested chunk
// size is zero or negative. The returned error will include the
// offending value.
var ErrInvalidChunkSize = errors.New("chunk size must be greater than zero")

// ErrEmpty is returned by functions such as [Max] that need at least
// one element to produce a result.
var ErrEmpty = errors.New("empty slice")
