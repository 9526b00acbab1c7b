// Package ordseq provides Sequence, a slice that keeps its elements in
// strictly ascending order and rejects duplicates.
//
// Insertion is a linear scan: the cost of Insert, Contains and Get is O(n).
// This is meant for small collections where a tree or index would be
// overkill and where ordered iteration matters more than lookup speed.
//
// A Sequence is not safe for concurrent use. Callers that share one across
// goroutines must guard it themselves, for example with a sync.RWMutex.
package ordseq

import (
	"iter"
	"slices"
	"strings"

	"github.com/amp-labs/ord-collections/compare"
	"github.com/amp-labs/ord-collections/errors"
	"github.com/amp-labs/ord-collections/optional"
	"github.com/amp-labs/ord-collections/sortable"
)

// Sequence holds elements of type E sorted in strictly ascending order.
// The zero value is an empty sequence ready to use.
//
// Between calls, every element is LessThan its successor and no two elements
// are Equal. Only Extend and ExtendSeq, which skip validation, can break this.
type Sequence[E sortable.Sortable[E]] struct {
	elements []E
}

// New returns an empty sequence.
func New[E sortable.Sortable[E]]() *Sequence[E] {
	return &Sequence[E]{}
}

// FromSlice builds a sequence by inserting every element of elements in
// input order. It stops at the first duplicate and returns nil with the
// duplicate error; no partially built sequence is returned.
func FromSlice[E sortable.Sortable[E]](elements []E) (*Sequence[E], error) {
	return Collect(slices.Values(elements))
}

// Collect is FromSlice for an iterator.
func Collect[E sortable.Sortable[E]](elements iter.Seq[E]) (*Sequence[E], error) {
	seq := New[E]()

	for element := range elements {
		if err := seq.Insert(element); err != nil {
			return nil, err
		}
	}

	return seq, nil
}

// Insert places element at its sorted position.
//
// Existing elements are scanned from the smallest. At each one the equality
// test runs before the order test: if the existing element Equals the
// candidate, Insert returns a *errors.DuplicateError describing the candidate
// and leaves the sequence unchanged; if it is greater than the candidate, the
// candidate goes immediately before it. A candidate that is neither equal to
// nor smaller than any element is appended.
func (s *Sequence[E]) Insert(element E) error {
	for i, existing := range s.elements {
		if existing.Equals(element) {
			return errors.Duplicate(element.String())
		}

		if sortable.GreaterThan(existing, element) {
			s.elements = slices.Insert(s.elements, i, element)

			return nil
		}
	}

	s.elements = append(s.elements, element)

	return nil
}

// InsertAll inserts elements in order and stops at the first duplicate.
// Elements inserted before the duplicate stay in the sequence.
func (s *Sequence[E]) InsertAll(elements ...E) error {
	for _, element := range elements {
		if err := s.Insert(element); err != nil {
			return err
		}
	}

	return nil
}

// InsertEach inserts every element, skipping duplicates, and returns all the
// duplicate errors joined together (nil if there were none).
func (s *Sequence[E]) InsertEach(elements ...E) error {
	var errs errors.Collection

	for _, element := range elements {
		errs.Add(s.Insert(element))
	}

	return errs.GetError()
}

// Extend appends elements without checking order or uniqueness.
//
// This is an unchecked fast path for callers that already hold sorted,
// distinct elements that all sort after the current last element. Misuse
// silently breaks the sequence's ordering invariant; use IsOrdered to verify.
func (s *Sequence[E]) Extend(elements ...E) {
	s.elements = append(s.elements, elements...)
}

// ExtendSeq is Extend for an iterator. It is just as unchecked.
func (s *Sequence[E]) ExtendSeq(elements iter.Seq[E]) {
	s.elements = slices.AppendSeq(s.elements, elements)
}

// Append moves every element of other into s through Insert, leaving other
// empty.
//
// The caller must guarantee that s and other hold no equal elements. A
// duplicate is a programming error: Append panics with the *errors.DuplicateError,
// and s keeps whatever was moved before the duplicate. Use Insert or
// InsertEach over other.Seq() when duplicates have to be handled.
func (s *Sequence[E]) Append(other *Sequence[E]) {
	drained := other.elements
	other.elements = nil

	for _, element := range drained {
		if err := s.Insert(element); err != nil {
			panic(err)
		}
	}
}

// Contains reports whether some element Equals element.
func (s *Sequence[E]) Contains(element E) bool {
	return s.index(element.Equals) >= 0
}

// ContainsFunc reports whether some element satisfies match.
func (s *Sequence[E]) ContainsFunc(match func(E) bool) bool {
	return s.index(match) >= 0
}

// Get returns the element equal to element, if any.
func (s *Sequence[E]) Get(element E) optional.Value[E] {
	return optional.FromPointer(s.GetMut(element))
}

// GetFunc returns the first element satisfying match, if any.
func (s *Sequence[E]) GetFunc(match func(E) bool) optional.Value[E] {
	return optional.FromPointer(s.GetMutFunc(match))
}

// GetMut returns a pointer to the element equal to element, or nil.
//
// The pointer refers to the sequence's backing storage and is only valid
// until the next mutation. Changing the element's ordering key through it
// breaks the ordering invariant.
func (s *Sequence[E]) GetMut(element E) *E {
	return s.GetMutFunc(element.Equals)
}

// GetMutFunc returns a pointer to the first element satisfying match, or nil.
// The same caveats as GetMut apply.
func (s *Sequence[E]) GetMutFunc(match func(E) bool) *E {
	idx := s.index(match)
	if idx < 0 {
		return nil
	}

	return &s.elements[idx]
}

// First returns the smallest element.
func (s *Sequence[E]) First() optional.Value[E] {
	if len(s.elements) == 0 {
		return optional.None[E]()
	}

	return optional.Some(s.elements[0])
}

// Last returns the largest element.
func (s *Sequence[E]) Last() optional.Value[E] {
	if len(s.elements) == 0 {
		return optional.None[E]()
	}

	return optional.Some(s.elements[len(s.elements)-1])
}

// Len returns the number of elements.
func (s *Sequence[E]) Len() int {
	return len(s.elements)
}

// IsEmpty reports whether the sequence holds no elements.
func (s *Sequence[E]) IsEmpty() bool {
	return len(s.elements) == 0
}

// Seq iterates over the elements in ascending order.
func (s *Sequence[E]) Seq() iter.Seq[E] {
	return slices.Values(s.elements)
}

// All iterates over positions and elements in ascending order.
func (s *Sequence[E]) All() iter.Seq2[int, E] {
	return slices.All(s.elements)
}

// Backward iterates over the elements in descending order.
func (s *Sequence[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := len(s.elements) - 1; i >= 0; i-- {
			if !yield(s.elements[i]) {
				return
			}
		}
	}
}

// SeqMut iterates over pointers to the elements in ascending order.
// Changing an element's ordering key through a pointer breaks the ordering
// invariant; it is meant for updating payloads such as map values.
func (s *Sequence[E]) SeqMut() iter.Seq[*E] {
	return func(yield func(*E) bool) {
		for i := range s.elements {
			if !yield(&s.elements[i]) {
				return
			}
		}
	}
}

// Entries returns a copy of the elements in ascending order.
func (s *Sequence[E]) Entries() []E {
	return slices.Clone(s.elements)
}

// Clone returns an independent copy of s. Elements are copied by value.
func (s *Sequence[E]) Clone() *Sequence[E] {
	return &Sequence[E]{elements: slices.Clone(s.elements)}
}

// Equals reports whether s and other hold pairwise Equal elements.
func (s *Sequence[E]) Equals(other *Sequence[E]) bool {
	return slices.EqualFunc(s.elements, other.elements, func(a, b E) bool {
		return a.Equals(b)
	})
}

// IsOrdered reports whether the ordering invariant holds. It can only be
// false after Extend, ExtendSeq, or a key change made through a pointer.
func (s *Sequence[E]) IsOrdered() bool {
	for i := 1; i < len(s.elements); i++ {
		prev, cur := s.elements[i-1], s.elements[i]
		if prev.Equals(cur) || !prev.LessThan(cur) {
			return false
		}
	}

	return true
}

// Join renders every element with String and joins them with separator,
// in ascending order.
func (s *Sequence[E]) Join(separator string) string {
	var sb strings.Builder

	for i, element := range s.elements {
		if i > 0 {
			sb.WriteString(separator)
		}

		sb.WriteString(element.String())
	}

	return sb.String()
}

// String joins the elements with a comma: "a,b,c".
func (s *Sequence[E]) String() string {
	return s.Join(",")
}

func (s *Sequence[E]) index(match func(E) bool) int {
	return slices.IndexFunc(s.elements, match)
}

// Probed is the constraint for elements that can also be looked up by a
// probe of another type P, such as a map entry looked up by its key.
type Probed[E any, P any] interface {
	sortable.Sortable[E]
	compare.Matcher[P]
}

// ContainsMatch reports whether some element of s Matches probe.
func ContainsMatch[E Probed[E, P], P any](s *Sequence[E], probe P) bool {
	return s.ContainsFunc(func(e E) bool { return e.Matches(probe) })
}

// GetMatch returns the first element of s that Matches probe.
func GetMatch[E Probed[E, P], P any](s *Sequence[E], probe P) optional.Value[E] {
	return s.GetFunc(func(e E) bool { return e.Matches(probe) })
}

// GetMatchMut returns a pointer to the first element of s that Matches probe,
// or nil. The caveats of GetMut apply.
func GetMatchMut[E Probed[E, P], P any](s *Sequence[E], probe P) *E {
	return s.GetMutFunc(func(e E) bool { return e.Matches(probe) })
}
