package delta

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-delta/go-delta/lcs"
	"github.com/go-delta/go-delta/utils/binary"
	"github.com/go-delta/go-delta/utils/trace"
)

// Encode returns the patch that transforms source into target. The patch
// together with source fully determines target; see Decode.
func Encode(source, target []byte) ([]byte, error) {
	return EncodeWithLCS(source, target, lcs.Longest(source, target))
}

// EncodeWithLCS is Encode with a caller-supplied common subsequence of
// source and target. Any valid common subsequence works, including a
// non-maximal one; the subsequence only steers alignment, it never
// changes what Decode reconstructs. A sequence that is not a common
// subsequence of both inputs yields ErrLCSMismatch.
func EncodeWithLCS(source, target, common []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encode(buf, source, target, common); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode(w io.Writer, source, target, common []byte) error {
	a := NewAligner(source, target, common)
	for {
		ins, err := a.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		trace.Delta.Printf("delta: encode %s", ins)
		if err := writeInstruction(w, ins); err != nil {
			return err
		}
	}
}

func writeInstruction(w io.Writer, ins Instruction[byte]) error {
	switch ins.Tag {
	case TagCopy, TagInsertCopy:
		if _, err := w.Write([]byte{byte(ins.Tag)}); err != nil {
			return err
		}
		if err := binary.WriteUvarint(w, uint64(ins.Start)); err != nil {
			return err
		}
		return binary.WriteUvarint(w, uint64(ins.Len))
	case TagInsertLiteral:
		if _, err := w.Write([]byte{byte(ins.Tag)}); err != nil {
			return err
		}
		if err := binary.WriteUvarint(w, uint64(len(ins.Data))); err != nil {
			return err
		}
		_, err := w.Write(ins.Data)
		return err
	default:
		return fmt.Errorf("%w: %#x", ErrPatchCmd, byte(ins.Tag))
	}
}
