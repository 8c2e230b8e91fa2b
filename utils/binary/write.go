package binary

import "io"

// WriteUvarint writes v to w as an unsigned LEB128 number.
func WriteUvarint(w io.Writer, v uint64) error {
	_, err := w.Write(PutUvarint(nil, v))
	return err
}

// PutUvarint appends the unsigned LEB128 encoding of v to buf and
// returns the extended slice.
func PutUvarint(buf []byte, v uint64) []byte {
	for v >= maskContinue {
		buf = append(buf, byte(v)|maskContinue)
		v >>= 7
	}
	return append(buf, byte(v))
}
