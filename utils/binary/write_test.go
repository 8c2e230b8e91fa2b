package binary

import "bytes"

func (s *BinarySuite) TestPutUvarint() {
	for _, t := range uvarintTests {
		s.Equal(t.encoded, PutUvarint(nil, t.value))
	}
}

func (s *BinarySuite) TestPutUvarintAppends() {
	buf := PutUvarint([]byte{0xca, 0xfe}, 300)
	s.Equal([]byte{0xca, 0xfe, 0xac, 0x02}, buf)
}

func (s *BinarySuite) TestWriteUvarint() {
	for _, t := range uvarintTests {
		buf := bytes.NewBuffer(nil)
		s.NoError(WriteUvarint(buf, t.value))
		s.Equal(t.encoded, buf.Bytes())
	}
}

func (s *BinarySuite) TestWriteReadRoundTrip() {
	buf := bytes.NewBuffer(nil)
	for _, t := range uvarintTests {
		s.NoError(WriteUvarint(buf, t.value))
	}
	for _, t := range uvarintTests {
		v, err := ReadUvarint(buf)
		s.NoError(err)
		s.Equal(t.value, v)
	}
}
