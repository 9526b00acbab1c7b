package sortable

// Byte is a sortable wrapper type for the built-in byte type. It renders as
// the character it encodes, so a sequence of bytes 'c', 'a', 'b' displays as
// "a,b,c".
type Byte byte

// Compile-time check that Byte implements Sortable[Byte].
var _ Sortable[Byte] = (*Byte)(nil)

// Equals returns true if this Byte has the same value as the other Byte.
func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

// LessThan returns true if this Byte is numerically less than the other Byte.
func (b Byte) LessThan(other Byte) bool {
	return byte(b) < byte(other)
}

func (b Byte) String() string {
	return string([]byte{byte(b)})
}
