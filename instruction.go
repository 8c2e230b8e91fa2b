package delta

import "fmt"

// Tag identifies the kind of a delta instruction. The values double as the
// wire-format tag bytes.
type Tag byte

const (
	// TagCopy copies Len elements from the source sequence at Start.
	TagCopy Tag = 0x01
	// TagInsertCopy inserts Len elements copied from the insert-history
	// buffer at Start.
	TagInsertCopy Tag = 0x02
	// TagInsertLiteral inserts the literal elements in Data.
	TagInsertLiteral Tag = 0x03
)

// Instruction is a single step of a delta script. The set of tags is
// closed: the serializer and the applier switch over Tag exhaustively and
// reject anything else.
type Instruction[T comparable] struct {
	Tag Tag

	// Start and Len describe a span of the source sequence (TagCopy) or
	// of the insert-history buffer (TagInsertCopy).
	Start int
	Len   int

	// Data holds the literal payload for TagInsertLiteral.
	Data []T
}

func (i Instruction[T]) String() string {
	switch i.Tag {
	case TagCopy:
		return fmt.Sprintf("copy(%d, %d)", i.Start, i.Len)
	case TagInsertCopy:
		return fmt.Sprintf("insert-copy(%d, %d)", i.Start, i.Len)
	case TagInsertLiteral:
		return fmt.Sprintf("insert(%d elements)", len(i.Data))
	default:
		return fmt.Sprintf("unknown(%#x)", byte(i.Tag))
	}
}
