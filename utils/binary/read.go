// Package binary implements read and write helpers for the unsigned
// LEB128 variable-width integers used by the patch wire format: 7
// payload bits per byte, least significant byte first, the high bit of
// each byte flagging a continuation.
package binary

import (
	"errors"
	"io"
)

const (
	maskPayload  = 0x7f // 0111 1111
	maskContinue = 0x80 // 1000 0000
)

// ErrTruncated is returned when the input ends in the middle of a
// varint.
var ErrTruncated = errors.New("truncated varint")

// Uvarint decodes an unsigned LEB128 number from the start of buf and
// returns it along with the remaining bytes.
func Uvarint(buf []byte) (uint64, []byte, error) {
	var num uint64
	var shift uint
	for i, b := range buf {
		num |= uint64(b&maskPayload) << shift // concats 7 bits chunks
		if b&maskContinue == 0 {
			return num, buf[i+1:], nil
		}
		shift += 7
	}

	return 0, nil, ErrTruncated
}

// ReadUvarint decodes an unsigned LEB128 number from r. An EOF before
// the final byte is reported as ErrTruncated.
func ReadUvarint(r io.ByteReader) (uint64, error) {
	var num uint64
	var shift uint
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return 0, ErrTruncated
		}
		if err != nil {
			return 0, err
		}

		num |= uint64(b&maskPayload) << shift
		if b&maskContinue == 0 {
			return num, nil
		}
		shift += 7
	}
}
