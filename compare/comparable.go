// Package compare defines the equality contracts shared by the ordered containers.
package compare

// Comparable is implemented by types that can test themselves for equality
// against another value of the same type. The ordered containers use it to
// detect duplicates, so the method must be reflexive and symmetric for any
// two values that can both be stored in one container.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Matcher is implemented by types that can be compared against a probe of a
// different type. A keyed entry, for example, matches a bare key without the
// caller having to construct a whole entry to look it up.
type Matcher[P any] interface {
	Matches(probe P) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Matches reports whether value matches probe.
func Matches[P any](value Matcher[P], probe P) bool {
	return value.Matches(probe)
}
