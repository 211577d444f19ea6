// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package seq contains lazy counterparts of the slice helpers in
// [vawter.tech/sequtil].
//
// The functions in this package accept and return [iter.Seq] values.
// No work is performed until the returned sequence is ranged over, and
// each range re-reads the input sequences. Breaking out of a range
// loop stops consumption of the inputs.
package seq
