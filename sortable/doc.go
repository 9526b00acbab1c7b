// Package sortable defines the element contract of the ordered containers and
// ships wrapper types for common primitives.
//
// # Overview
//
// An ordered container needs exactly three things from its elements: an
// equality test, an ordering test and a human-readable rendering. [Sortable]
// bundles the three:
//
//	type Sortable[T any] interface {
//	    compare.Comparable[T] // Equals(other T) bool
//	    LessThan(other T) bool
//	    fmt.Stringer
//	}
//
// The wrappers [Int], [Byte], [String], [Float] and [Natural] implement it for
// the obvious underlying types:
//
//	seq := ordseq.New[sortable.String]()
//	_ = seq.Insert("b")
//	_ = seq.Insert("a")
//	fmt.Println(seq) // a,b
//
// # Partial orders
//
// LessThan is allowed to describe a partial order. Two values for which neither
// a.LessThan(b), b.LessThan(a) nor a.Equals(b) holds are incomparable; the
// containers never treat incomparable values as duplicates. [Float] is the
// stock example: NaN is neither less than, greater than, nor equal to anything.
//
// # Custom types
//
//	type Version struct {
//	    Major, Minor int
//	}
//
//	func (v Version) Equals(o Version) bool   { return v == o }
//	func (v Version) LessThan(o Version) bool { return v.Major < o.Major || v.Major == o.Major && v.Minor < o.Minor }
//	func (v Version) String() string          { return fmt.Sprintf("v%d.%d", v.Major, v.Minor) }
//
// Equals and LessThan must agree: a value must never be both equal to and less
// than another.
package sortable
