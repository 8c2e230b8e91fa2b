package delta

import (
	"bytes"
	"errors"
	"io"

	"github.com/go-delta/go-delta/utils/binary"
	"github.com/go-delta/go-delta/utils/sync"
)

// Patch errors.
var (
	// ErrInvalidPatch means the patch bytes are truncated or an
	// instruction references a span outside its buffer.
	ErrInvalidPatch = errors.New("invalid patch")
	// ErrPatchCmd means an instruction carries an unrecognized tag byte.
	ErrPatchCmd = errors.New("wrong patch command")
)

// Decode applies patch to source and returns the reconstructed target.
// It fails with ErrInvalidPatch or ErrPatchCmd on malformed input and
// never returns a partial target.
func Decode(source, patch []byte) ([]byte, error) {
	out := &bytes.Buffer{}
	if err := decode(out, source, patch); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Apply applies patch to source and writes the reconstructed target to
// dst. The target is fully decoded before any byte is written, so a
// malformed patch writes nothing.
func Apply(dst io.Writer, source, patch []byte) error {
	out := sync.GetBytesBuffer()
	defer sync.PutBytesBuffer(out)

	if err := decode(out, source, patch); err != nil {
		return err
	}

	_, err := out.WriteTo(dst)
	return err
}

func decode(out *bytes.Buffer, source, patch []byte) error {
	// Every element ever inserted lands here too, mirroring the encoder's
	// own bookkeeping, so back-references into earlier inserts resolve.
	var history []byte

	for len(patch) > 0 {
		tag := Tag(patch[0])
		patch = patch[1:]

		switch tag {
		case TagCopy:
			start, length, rest, err := readSpan(patch)
			if err != nil {
				return err
			}
			patch = rest
			if start+length > uint64(len(source)) {
				return ErrInvalidPatch
			}
			out.Write(source[start : start+length])

		case TagInsertCopy:
			start, length, rest, err := readSpan(patch)
			if err != nil {
				return err
			}
			patch = rest
			if start+length > uint64(len(history)) {
				return ErrInvalidPatch
			}
			span := history[start : start+length]
			out.Write(span)
			history = append(history, span...)

		case TagInsertLiteral:
			length, rest, err := binary.Uvarint(patch)
			if err != nil {
				return ErrInvalidPatch
			}
			patch = rest
			if length > uint64(len(patch)) {
				return ErrInvalidPatch
			}
			out.Write(patch[:length])
			history = append(history, patch[:length]...)
			patch = patch[length:]

		default:
			return ErrPatchCmd
		}
	}

	return nil
}

// readSpan reads the start and length varints shared by the copy and
// insert-copy instructions, guarding against overflow of their sum.
func readSpan(patch []byte) (start, length uint64, rest []byte, err error) {
	start, patch, err = binary.Uvarint(patch)
	if err != nil {
		return 0, 0, nil, ErrInvalidPatch
	}
	length, patch, err = binary.Uvarint(patch)
	if err != nil {
		return 0, 0, nil, ErrInvalidPatch
	}
	if start+length < start {
		return 0, 0, nil, ErrInvalidPatch
	}
	return start, length, patch, nil
}
