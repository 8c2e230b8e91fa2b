package binary

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"
)

type BinarySuite struct {
	suite.Suite
}

func TestBinarySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BinarySuite))
}

var uvarintTests = [...]struct {
	encoded []byte
	value   uint64
}{
	{[]byte{0x00}, 0},
	{[]byte{0x01}, 1},
	{[]byte{0x7f}, 127},
	{[]byte{0x80, 0x01}, 128},
	{[]byte{0xc8, 0x01}, 200},
	{[]byte{0xac, 0x02}, 300},
	{[]byte{0xff, 0x7f}, 16383},
	{[]byte{0x80, 0x80, 0x01}, 16384},
	{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, 0xffffffffffffffff},
}

func (s *BinarySuite) TestUvarint() {
	for _, t := range uvarintTests {
		v, rest, err := Uvarint(t.encoded)
		s.NoError(err)
		s.Equal(t.value, v)
		s.Len(rest, 0)
	}
}

func (s *BinarySuite) TestUvarintRest() {
	v, rest, err := Uvarint([]byte{0xc8, 0x01, 0xca, 0xfe})
	s.NoError(err)
	s.Equal(uint64(200), v)
	s.Equal([]byte{0xca, 0xfe}, rest)
}

func (s *BinarySuite) TestUvarintTruncated() {
	for _, in := range [][]byte{nil, {0x80}, {0xff, 0xff}} {
		_, _, err := Uvarint(in)
		s.ErrorIs(err, ErrTruncated)
	}
}

func (s *BinarySuite) TestReadUvarint() {
	for _, t := range uvarintTests {
		v, err := ReadUvarint(bytes.NewReader(t.encoded))
		s.NoError(err)
		s.Equal(t.value, v)
	}
}

func (s *BinarySuite) TestReadUvarintTruncated() {
	_, err := ReadUvarint(bytes.NewReader([]byte{0x80}))
	s.ErrorIs(err, ErrTruncated)
}
