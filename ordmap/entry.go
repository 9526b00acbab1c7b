package ordmap

import (
	"fmt"

	"github.com/amp-labs/ord-collections/compare"
	"github.com/amp-labs/ord-collections/sortable"
)

// Entry is a key/value pair whose equality and order are those of its key.
//
// The value deliberately takes no part in Equals or LessThan: two entries
// with the same key are equal whatever their values, which is what turns a
// duplicate-free ordered sequence of entries into a map.
type Entry[K sortable.Sortable[K], V any] struct {
	key   K
	value V
}

var (
	_ sortable.Sortable[Entry[sortable.Int, any]] = Entry[sortable.Int, any]{}
	_ compare.Matcher[sortable.Int]               = Entry[sortable.Int, any]{}
)

// NewEntry pairs key with value.
func NewEntry[K sortable.Sortable[K], V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{key: key, value: value}
}

// Key returns the key half of the entry.
func (e Entry[K, V]) Key() K { //nolint:ireturn
	return e.key
}

// Value returns the value half of the entry.
func (e Entry[K, V]) Value() V { //nolint:ireturn
	return e.value
}

// ValueMut returns a pointer to the value half of the entry.
func (e *Entry[K, V]) ValueMut() *V {
	return &e.value
}

// Equals compares keys only.
func (e Entry[K, V]) Equals(other Entry[K, V]) bool {
	return e.key.Equals(other.key)
}

// LessThan compares keys only.
func (e Entry[K, V]) LessThan(other Entry[K, V]) bool {
	return e.key.LessThan(other.key)
}

// Matches reports whether the entry's key equals key.
func (e Entry[K, V]) Matches(key K) bool {
	return e.key.Equals(key)
}

// String renders the entry as "key: value".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%s: %v", e.key, e.value)
}
