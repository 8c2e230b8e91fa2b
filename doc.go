// Package delta computes and applies compact binary deltas between two
// in-memory sequences. A delta (or patch) is a byte string of copy and
// insert instructions that transforms a source sequence into a target
// sequence; the receiver only needs the source and the patch to rebuild
// the target.
//
// The encoder aligns source and target around a longest common
// subsequence, extends every anchor into the longest literal match, and
// deduplicates repeated inserted data through back-references into an
// insert-history buffer. The alignment engine is generic over any
// comparable element type; the wire format itself carries raw bytes.
//
// The patch format has no magic number, version tag, length prefix or
// checksum: a patch ends when its bytes are exhausted, and callers that
// store or transmit patches independently must add their own framing.
package delta
