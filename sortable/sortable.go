package sortable

import (
	"fmt"

	"github.com/amp-labs/ord-collections/compare"
)

// Sortable is the element contract of the ordered containers: equality,
// a (possibly partial) order and a display form.
type Sortable[T any] interface {
	compare.Comparable[T]
	fmt.Stringer

	LessThan(other T) bool
}

// GreaterThan reports whether a sorts strictly after b.
func GreaterThan[T Sortable[T]](a, b T) bool {
	return b.LessThan(a)
}

// Incomparable reports whether a and b are neither equal nor ordered with
// respect to each other.
func Incomparable[T Sortable[T]](a, b T) bool {
	return !a.Equals(b) && !a.LessThan(b) && !b.LessThan(a)
}
