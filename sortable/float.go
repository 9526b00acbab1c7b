package sortable

import "strconv"

// Float is a sortable wrapper for float64 using IEEE 754 comparison. The
// resulting order is partial: NaN is not equal to anything, itself included,
// and is neither less nor greater than any value.
type Float float64

var _ Sortable[Float] = (*Float)(nil)

// Equals uses ==, so NaN never equals NaN and 0 equals -0.
func (f Float) Equals(other Float) bool {
	return float64(f) == float64(other)
}

func (f Float) LessThan(other Float) bool {
	return float64(f) < float64(other)
}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}
