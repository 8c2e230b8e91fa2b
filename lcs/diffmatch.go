package lcs

import (
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Bytes returns a common subsequence of a and b built from the equal
// runs of a diffmatchpatch diff. It is much faster than Longest on
// large inputs but carries no maximality guarantee; a shorter
// subsequence only makes the resulting patch larger, never wrong.
func Bytes(a, b []byte) []byte {
	equal := equalRuns(bytesToRunes(a), bytesToRunes(b))
	out := make([]byte, len(equal))
	for i, r := range equal {
		out[i] = byte(r)
	}
	return out
}

// Runes is Bytes for rune sequences.
func Runes(a, b []rune) []rune {
	return equalRuns(a, b)
}

func equalRuns(a, b []rune) []rune {
	dmp := diffmatchpatch.New()
	// the default timeout is time.Second which may be too small under
	// heavy load
	dmp.DiffTimeout = time.Hour

	var out []rune
	for _, d := range dmp.DiffMainRunes(a, b, false) {
		if d.Type == diffmatchpatch.DiffEqual {
			out = append(out, []rune(d.Text)...)
		}
	}
	return out
}

// bytesToRunes widens each byte to its own rune, so arbitrary binary
// data survives the rune-based diff without UTF-8 reinterpretation.
func bytesToRunes(b []byte) []rune {
	rs := make([]rune, len(b))
	for i, c := range b {
		rs[i] = rune(c)
	}
	return rs
}
