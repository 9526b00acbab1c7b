// Package ordmap provides Map, a map with unique keys that iterates in
// ascending key order.
//
// Map is a narrow facade over an ordseq.Sequence of Entry values. It reuses
// the sequence's linear insertion unchanged, so lookups and inserts are O(n).
// The unchecked sequence operations (Extend, Append) are not exposed, since
// they could silently break key uniqueness.
//
// Example:
//
//	var m ordmap.Map[sortable.Byte, int]
//	_ = m.Insert('C', 0)
//	_ = m.Insert('A', 0)
//	_ = m.Insert('B', 0)
//	err := m.Insert('A', 1) // Duplicate element A: 1
//
//	for key := range m.Keys() {
//	    fmt.Print(key) // ABC
//	}
package ordmap

import (
	"iter"

	"github.com/amp-labs/ord-collections/optional"
	"github.com/amp-labs/ord-collections/ordseq"
	"github.com/amp-labs/ord-collections/sortable"
)

// Map associates unique keys of type K with values of type V and keeps its
// entries sorted by key. The zero value is an empty map ready to use.
//
// A Map is not safe for concurrent use.
type Map[K sortable.Sortable[K], V any] struct {
	entries ordseq.Sequence[Entry[K, V]]
}

// New returns an empty map.
func New[K sortable.Sortable[K], V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// FromEntries builds a map from entries in input order. It stops at the first
// duplicate key and returns nil with the duplicate error.
func FromEntries[K sortable.Sortable[K], V any](entries ...Entry[K, V]) (*Map[K, V], error) {
	m := New[K, V]()

	if err := m.entries.InsertAll(entries...); err != nil {
		return nil, err
	}

	return m, nil
}

// Insert adds value under key. It fails with a *errors.DuplicateError when key
// is already present, whatever the stored value; the error describes the
// rejected entry as "key: value". A failed insert changes nothing.
func (m *Map[K, V]) Insert(key K, value V) error {
	return m.entries.Insert(NewEntry(key, value))
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) optional.Value[V] {
	return optional.FromPointer(m.GetMut(key))
}

// GetMut returns a pointer to the value stored under key, or nil when key is
// absent. The pointer is valid until the next Insert.
func (m *Map[K, V]) GetMut(key K) *V {
	entry := ordseq.GetMatchMut(&m.entries, key)
	if entry == nil {
		return nil
	}

	return entry.ValueMut()
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return ordseq.ContainsMatch(&m.entries, key)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.entries.Len()
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.entries.IsEmpty()
}

// First returns the entry with the smallest key.
func (m *Map[K, V]) First() optional.Value[Entry[K, V]] {
	return m.entries.First()
}

// Last returns the entry with the largest key.
func (m *Map[K, V]) Last() optional.Value[Entry[K, V]] {
	return m.entries.Last()
}

// Seq iterates over the entries in ascending key order.
func (m *Map[K, V]) Seq() iter.Seq[Entry[K, V]] {
	return m.entries.Seq()
}

// SeqMut iterates over keys and pointers to their values in ascending key
// order. Keys are read-only; values may be updated in place.
func (m *Map[K, V]) SeqMut() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for entry := range m.entries.SeqMut() {
			if !yield(entry.key, &entry.value) {
				return
			}
		}
	}
}

// Keys iterates over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for entry := range m.entries.Seq() {
			if !yield(entry.key) {
				return
			}
		}
	}
}

// Values iterates over the values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for entry := range m.entries.Seq() {
			if !yield(entry.value) {
				return
			}
		}
	}
}

// Clone returns a copy of m. Values are copied by assignment.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{entries: *m.entries.Clone()}
}

// Join renders the entries as "key: value" and joins them with separator.
func (m *Map[K, V]) Join(separator string) string {
	return m.entries.Join(separator)
}

// String renders the map as "k1: v1, k2: v2".
func (m *Map[K, V]) String() string {
	return m.entries.Join(", ")
}
