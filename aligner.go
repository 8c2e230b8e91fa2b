package delta

import (
	"errors"
	"fmt"
	"io"
)

// ErrLCSMismatch is returned by Aligner.Next when a symbol of the common
// subsequence cannot be located in source or target at or after the
// current cursors. It means the subsequence handed to NewAligner is not a
// common subsequence of both inputs.
var ErrLCSMismatch = errors.New("sequence is not a common subsequence of source and target")

// Aligner walks source, target and a common subsequence of both, and
// produces the delta instructions that rebuild target from source. It is
// a pull-based producer: each call to Next yields at most one
// instruction, so callers can serialize the script without ever
// materializing it.
//
// The common subsequence does not have to be maximal; any sequence that
// appears, in order, in both source and target is valid. Shorter
// subsequences only produce larger deltas.
type Aligner[T comparable] struct {
	src, dst, lcs []T

	// cursors into src, dst and lcs. Monotonically non-decreasing.
	s, d, l int

	// history accumulates every element emitted through an insert
	// instruction, so later identical inserts can become back-references.
	history []T
}

// NewAligner returns an Aligner producing the instructions that transform
// source into target, anchored on common. The three slices are only read.
func NewAligner[T comparable](source, target, common []T) *Aligner[T] {
	return &Aligner[T]{src: source, dst: target, lcs: common}
}

// Next returns the next instruction of the delta script, or io.EOF once
// the whole target has been produced. Any error other than io.EOF leaves
// the Aligner in an undefined state.
func (a *Aligner[T]) Next() (Instruction[T], error) {
	if a.d == len(a.dst) {
		return Instruction[T]{}, io.EOF
	}

	if a.l == len(a.lcs) {
		// No anchors left, the rest of target is one big insert.
		return a.insert(a.dst[a.d:]), nil
	}

	anchor := a.lcs[a.l]
	sIdx := indexFrom(a.src, a.s, anchor)
	dIdx := indexFrom(a.dst, a.d, anchor)
	if sIdx < 0 || dIdx < 0 {
		return Instruction[T]{}, fmt.Errorf("%w: symbol %d not found", ErrLCSMismatch, a.l)
	}

	if dIdx > a.d {
		// Target data precedes the anchor; insert it and leave the anchor
		// for the next call.
		return a.insert(a.dst[a.d:dIdx]), nil
	}

	// The anchor sits exactly at the target cursor. Extend it greedily
	// into the longest run equal in both sequences.
	n := 1
	for sIdx+n < len(a.src) && dIdx+n < len(a.dst) && a.src[sIdx+n] == a.dst[dIdx+n] {
		n++
	}

	// The matched run may cover several upcoming anchors, not just the
	// current one. Consume every leading anchor the run can satisfy,
	// searching the still unconsumed part of the run each time.
	consumed, off := 0, 0
	for a.l+consumed < len(a.lcs) {
		j := indexFrom(a.src[sIdx:sIdx+n], off, a.lcs[a.l+consumed])
		if j < 0 {
			break
		}
		off = j + 1
		consumed++
	}

	ins := Instruction[T]{Tag: TagCopy, Start: sIdx, Len: n}
	a.s = sIdx + n
	a.d = dIdx + n
	a.l += consumed
	return ins, nil
}

// insert builds the instruction for data about to be inserted at the
// target cursor: a back-reference if the insert history already contains
// data as a contiguous run, a literal otherwise. Either way data joins
// the history, so only later repetitions benefit.
func (a *Aligner[T]) insert(data []T) Instruction[T] {
	a.d += len(data)

	ins := Instruction[T]{Tag: TagInsertLiteral, Data: data}
	if off := indexSeq(a.history, data); off >= 0 {
		ins = Instruction[T]{Tag: TagInsertCopy, Start: off, Len: len(data)}
	}

	a.history = append(a.history, data...)
	return ins
}

// indexFrom returns the index of the first occurrence of v in s at or
// after from, or -1.
func indexFrom[T comparable](s []T, from int, v T) int {
	for i := from; i < len(s); i++ {
		if s[i] == v {
			return i
		}
	}
	return -1
}

// indexSeq returns the offset of the first occurrence of sub as a
// contiguous run inside s, or -1. An empty sub never matches.
func indexSeq[T comparable](s, sub []T) int {
	if len(sub) == 0 {
		return -1
	}
outer:
	for i := 0; i+len(sub) <= len(s); i++ {
		for j := range sub {
			if s[i+j] != sub[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}
