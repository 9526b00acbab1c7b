package ordseq

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/amp-labs/ord-collections/errors"
	"github.com/amp-labs/ord-collections/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// task orders by priority only; the note is payload.
type task struct {
	priority int
	note     string
}

func (t task) Equals(other task) bool   { return t.priority == other.priority }
func (t task) LessThan(other task) bool { return t.priority < other.priority }
func (t task) String() string           { return fmt.Sprintf("%d(%s)", t.priority, t.note) }
func (t task) Matches(priority int) bool {
	return t.priority == priority
}

func ints(values ...int) []sortable.Int {
	out := make([]sortable.Int, 0, len(values))
	for _, v := range values {
		out = append(out, sortable.Int(v))
	}

	return out
}

func permutations[T any](values []T) [][]T {
	if len(values) <= 1 {
		return [][]T{slices.Clone(values)}
	}

	var out [][]T

	for i := range values {
		rest := slices.Concat(values[:i], values[i+1:])
		for _, p := range permutations(rest) {
			out = append(out, append([]T{values[i]}, p...))
		}
	}

	return out
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates empty sequence", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.Int]()
		require.NotNil(t, s)
		assert.Equal(t, 0, s.Len())
		assert.True(t, s.IsEmpty())
		assert.True(t, s.First().Empty())
		assert.True(t, s.Last().Empty())
		assert.Empty(t, s.String())
	})

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()

		var s Sequence[sortable.String]
		require.NoError(t, s.Insert("a"))
		assert.Equal(t, 1, s.Len())
	})
}

func TestSequence_Insert(t *testing.T) {
	t.Parallel()

	t.Run("keeps ascending order", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.Int]()

		for _, v := range []int{5, 2, 8, 1, 9, 3, 7, 4, 6} {
			require.NoError(t, s.Insert(sortable.Int(v)))
		}

		assert.Equal(t, ints(1, 2, 3, 4, 5, 6, 7, 8, 9), s.Entries())
		assert.True(t, s.IsOrdered())
	})

	t.Run("joins strings in order", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.String]()
		require.NoError(t, s.Insert("b"))
		require.NoError(t, s.Insert("a"))
		require.NoError(t, s.Insert("c"))

		assert.Equal(t, "a,b,c", s.Join(","))
		assert.Equal(t, "a,b,c", s.String())
	})

	t.Run("rejects duplicate and leaves sequence unchanged", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.Int]()
		require.NoError(t, s.InsertAll(ints(1, 2, 3)...))

		err := s.Insert(2)
		require.Error(t, err)
		require.ErrorIs(t, err, errors.ErrDuplicate)
		assert.EqualError(t, err, "Duplicate element 2")
		assert.Equal(t, ints(1, 2, 3), s.Entries())
	})

	t.Run("duplicate check ignores payload", func(t *testing.T) {
		t.Parallel()

		s := New[task]()
		require.NoError(t, s.Insert(task{priority: 1, note: "first"}))

		err := s.Insert(task{priority: 1, note: "second"})
		require.Error(t, err)

		desc, ok := errors.DuplicateDescription(err)
		require.True(t, ok)
		assert.Equal(t, "1(second)", desc, "error describes the rejected candidate")
		assert.Equal(t, "first", s.First().GetOrPanic().note)
	})

	t.Run("inserts before first greater element", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.Int]()
		require.NoError(t, s.InsertAll(ints(10, 20, 30)...))

		require.NoError(t, s.Insert(0))
		require.NoError(t, s.Insert(15))
		require.NoError(t, s.Insert(40))

		assert.Equal(t, ints(0, 10, 15, 20, 30, 40), s.Entries())
	})

	t.Run("incomparable elements are not duplicates", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.Float]()
		nan := sortable.Float(math.NaN())

		require.NoError(t, s.Insert(1))
		require.NoError(t, s.Insert(nan))
		require.NoError(t, s.Insert(nan))
		require.NoError(t, s.Insert(2))

		assert.Equal(t, 4, s.Len())
		// NaN never compares greater, so 2 lands after the NaNs.
		assert.Equal(t, "1,NaN,NaN,2", s.String())
		assert.False(t, s.IsOrdered())
	})

	t.Run("natural order", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.Natural]()
		require.NoError(t, s.InsertAll("file10", "file2", "file1"))

		assert.Equal(t, "file1 file2 file10", s.Join(" "))
	})
}

func TestSequence_InsertionOrderIndependence(t *testing.T) {
	t.Parallel()

	for _, perm := range permutations([]int{3, 1, 4, 5, 2}) {
		s := New[sortable.Int]()

		for _, v := range perm {
			require.NoError(t, s.Insert(sortable.Int(v)))
		}

		assert.Equal(t, ints(1, 2, 3, 4, 5), s.Entries(), "permutation %v", perm)
	}
}

func TestSequence_InsertionOrderIndependence_Natural(t *testing.T) {
	t.Parallel()

	values := []sortable.Natural{"file10", "a1", "", "file2", "a01"}

	for _, perm := range permutations(values) {
		s, err := FromSlice(perm)
		require.NoError(t, err)

		assert.Equal(t, ",a01,a1,file2,file10", s.String(), "permutation %q", perm)
		assert.True(t, s.IsOrdered())
	}
}

func TestSequence_InsertAll(t *testing.T) {
	t.Parallel()

	s := New[sortable.Int]()

	err := s.InsertAll(ints(3, 1, 3, 2)...)
	require.ErrorIs(t, err, errors.ErrDuplicate)
	assert.Equal(t, ints(1, 3), s.Entries(), "elements before the duplicate remain")
}

func TestSequence_InsertEach(t *testing.T) {
	t.Parallel()

	t.Run("reports every duplicate", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.Int]()

		err := s.InsertEach(ints(3, 1, 3, 2, 1)...)
		require.Error(t, err)
		assert.Equal(t, "Duplicate element 3\nDuplicate element 1", err.Error())
		assert.Equal(t, ints(1, 2, 3), s.Entries())
	})

	t.Run("nil without duplicates", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.Int]()
		require.NoError(t, s.InsertEach(ints(2, 1)...))
		assert.Equal(t, 2, s.Len())
	})
}

func TestFromSlice(t *testing.T) {
	t.Parallel()

	t.Run("sorts input", func(t *testing.T) {
		t.Parallel()

		s, err := FromSlice(ints(3, 1, 2))
		require.NoError(t, err)
		assert.Equal(t, ints(1, 2, 3), s.Entries())
	})

	t.Run("fails on duplicate without partial result", func(t *testing.T) {
		t.Parallel()

		s, err := FromSlice(ints(1, 2, 2, 3))
		require.ErrorIs(t, err, errors.ErrDuplicate)
		assert.EqualError(t, err, "Duplicate element 2")
		assert.Nil(t, s)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		s, err := FromSlice[sortable.Int](nil)
		require.NoError(t, err)
		assert.True(t, s.IsEmpty())
	})
}

func TestCollect(t *testing.T) {
	t.Parallel()

	s, err := Collect(slices.Values([]sortable.String{"z", "y"}))
	require.NoError(t, err)
	assert.Equal(t, "y,z", s.String())

	_, err = Collect(slices.Values([]sortable.String{"z", "z"}))
	require.ErrorIs(t, err, errors.ErrDuplicate)
}

func TestSequence_Extend(t *testing.T) {
	t.Parallel()

	t.Run("appends without validation", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.Int]()
		require.NoError(t, s.Insert(5))

		s.Extend(ints(1, 1)...)

		assert.Equal(t, ints(5, 1, 1), s.Entries())
		assert.False(t, s.IsOrdered())
	})

	t.Run("sorted tail keeps invariant", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.Int]()
		require.NoError(t, s.Insert(1))

		s.ExtendSeq(slices.Values(ints(2, 3)))

		assert.Equal(t, ints(1, 2, 3), s.Entries())
		assert.True(t, s.IsOrdered())
	})
}

func TestSequence_Append(t *testing.T) {
	t.Parallel()

	t.Run("merges and drains other", func(t *testing.T) {
		t.Parallel()

		s, err := FromSlice(ints(1, 4))
		require.NoError(t, err)

		other, err := FromSlice(ints(3, 2, 5))
		require.NoError(t, err)

		s.Append(other)

		assert.Equal(t, ints(1, 2, 3, 4, 5), s.Entries())
		assert.True(t, other.IsEmpty())
	})

	t.Run("panics on overlap", func(t *testing.T) {
		t.Parallel()

		s, err := FromSlice(ints(1, 2))
		require.NoError(t, err)

		other, err := FromSlice(ints(0, 2))
		require.NoError(t, err)

		assert.PanicsWithError(t, "Duplicate element 2", func() {
			s.Append(other)
		})
		assert.True(t, other.IsEmpty())
		assert.Equal(t, ints(0, 1, 2), s.Entries())
	})
}

func TestSequence_Lookup(t *testing.T) {
	t.Parallel()

	s := New[task]()
	require.NoError(t, s.InsertAll(
		task{priority: 2, note: "b"},
		task{priority: 1, note: "a"},
	))

	t.Run("contains", func(t *testing.T) {
		t.Parallel()

		assert.True(t, s.Contains(task{priority: 1}))
		assert.False(t, s.Contains(task{priority: 3}))
		assert.True(t, s.ContainsFunc(func(tk task) bool { return tk.note == "b" }))
		assert.True(t, ContainsMatch(s, 2))
		assert.False(t, ContainsMatch(s, 9))
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		got, ok := s.Get(task{priority: 2}).Get()
		require.True(t, ok)
		assert.Equal(t, "b", got.note)

		assert.True(t, s.Get(task{priority: 7}).Empty())
		assert.Equal(t, "a", GetMatch(s, 1).GetOrPanic().note)
		assert.Equal(t, 2, s.GetFunc(func(tk task) bool { return tk.note == "b" }).GetOrPanic().priority)
	})
}

func TestSequence_GetMut(t *testing.T) {
	t.Parallel()

	s := New[task]()
	require.NoError(t, s.InsertAll(task{priority: 1, note: "a"}, task{priority: 2, note: "b"}))

	ptr := s.GetMut(task{priority: 2})
	require.NotNil(t, ptr)
	ptr.note = "changed"

	assert.Equal(t, "changed", s.Last().GetOrPanic().note)
	assert.Nil(t, s.GetMut(task{priority: 3}))

	GetMatchMut(s, 1).note = "also changed"
	assert.Equal(t, "also changed", s.First().GetOrPanic().note)
	assert.Nil(t, GetMatchMut(s, 5))
}

func TestSequence_Iteration(t *testing.T) {
	t.Parallel()

	s, err := FromSlice(ints(2, 3, 1))
	require.NoError(t, err)

	t.Run("seq is restartable", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ints(1, 2, 3), slices.Collect(s.Seq()))
		assert.Equal(t, ints(1, 2, 3), slices.Collect(s.Seq()))
	})

	t.Run("all yields positions", func(t *testing.T) {
		t.Parallel()

		for i, v := range s.All() {
			assert.Equal(t, sortable.Int(i+1), v)
		}
	})

	t.Run("backward", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ints(3, 2, 1), slices.Collect(s.Backward()))
	})

	t.Run("early exit", func(t *testing.T) {
		t.Parallel()

		var seen []sortable.Int

		for v := range s.Seq() {
			seen = append(seen, v)

			break
		}

		assert.Equal(t, ints(1), seen)
	})
}

func TestSequence_SeqMut(t *testing.T) {
	t.Parallel()

	s := New[task]()
	require.NoError(t, s.InsertAll(task{priority: 2}, task{priority: 1}))

	for tk := range s.SeqMut() {
		tk.note = fmt.Sprintf("p%d", tk.priority)
	}

	assert.Equal(t, "1(p1) 2(p2)", s.Join(" "))
	assert.True(t, s.IsOrdered())
}

func TestSequence_FirstLast(t *testing.T) {
	t.Parallel()

	s, err := FromSlice(ints(5, 9, 1))
	require.NoError(t, err)

	assert.Equal(t, sortable.Int(1), s.First().GetOrPanic())
	assert.Equal(t, sortable.Int(9), s.Last().GetOrPanic())
}

func TestSequence_CloneEquals(t *testing.T) {
	t.Parallel()

	s, err := FromSlice(ints(1, 2))
	require.NoError(t, err)

	clone := s.Clone()
	assert.True(t, s.Equals(clone))

	require.NoError(t, clone.Insert(3))
	assert.False(t, s.Equals(clone))
	assert.Equal(t, 2, s.Len())

	entries := s.Entries()
	entries[0] = 100
	assert.Equal(t, sortable.Int(1), s.First().GetOrPanic(), "Entries returns a copy")
}

func TestSequence_Join(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     []sortable.String
		separator string
		expected  string
	}{
		{name: "empty", input: nil, separator: ",", expected: ""},
		{name: "single", input: []sortable.String{"x"}, separator: ",", expected: "x"},
		{name: "multi char separator", input: []sortable.String{"b", "a"}, separator: " | ", expected: "a | b"},
		{name: "empty separator", input: []sortable.String{"c", "a", "b"}, separator: "", expected: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := FromSlice(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s.Join(tt.separator))
		})
	}
}
