package sortable

import "facette.io/natsort"

// Natural is a string ordered by natural sort order: runs of digits compare
// numerically, so "file2" sorts before "file10". Equality is still exact
// string equality.
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

// LessThan returns true if n precedes other in natural order. When natural
// order cannot tell the two apart ("a01" and "a1", or an empty string), byte
// order decides, so exactly one of two distinct values is less.
func (n Natural) LessThan(other Natural) bool {
	if n == other {
		return false
	}

	a, b := string(n), string(other)

	forward, backward := natsort.Compare(a, b), natsort.Compare(b, a)
	if forward != backward {
		return forward
	}

	return a < b
}

func (n Natural) String() string {
	return string(n)
}
