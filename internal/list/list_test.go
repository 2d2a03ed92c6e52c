package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// values walks the chain from the head and checks the list's
// structural invariants on the way.
func values[T any](t *testing.T, l *SinglyLinkedList[T]) []T {
	t.Helper()

	if l.Len() == 0 {
		require.Nil(t, l.Head())
		require.Nil(t, l.Tail())
		return nil
	}

	require.NotNil(t, l.Head())
	require.NotNil(t, l.Tail())
	require.Nil(t, l.Tail().Next())

	vals := make([]T, 0, l.Len())
	var last *Node[T]
	for node := l.Head(); node != nil; node = node.Next() {
		require.Less(t, len(vals), l.Len(), "chain is longer than the list length")
		vals = append(vals, node.Value)
		last = node
	}
	require.Len(t, vals, l.Len())
	require.Same(t, l.Tail(), last)
	return vals
}

func newIntList(vals ...int) *SinglyLinkedList[int] {
	l := New[int]()
	for _, v := range vals {
		l.Push(v)
	}
	return l
}

func TestZeroValue(t *testing.T) {
	var l SinglyLinkedList[string]

	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())

	l.Push("a").Unshift("b")
	assert.Equal(t, []string{"b", "a"}, values(t, &l))
}

func TestPush(t *testing.T) {
	l := New[int]()

	for i := 1; i <= 4; i++ {
		require.Same(t, l, l.Push(i))
		assert.Equal(t, 1, l.Head().Value)
		assert.Equal(t, i, l.Tail().Value)
		assert.Equal(t, i, l.Len())
	}
	assert.Equal(t, []int{1, 2, 3, 4}, values(t, l))
}

func TestUnshift(t *testing.T) {
	l := New[int]()

	for i := 1; i <= 4; i++ {
		require.Same(t, l, l.Unshift(i))
		assert.Equal(t, i, l.Head().Value)
		assert.Equal(t, 1, l.Tail().Value)
		assert.Equal(t, i, l.Len())
	}
	assert.Equal(t, []int{4, 3, 2, 1}, values(t, l))
}

func TestPop(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		l := New[int]()
		node, ok := l.Pop()
		assert.False(t, ok)
		assert.Nil(t, node)
	})

	t.Run("returns the last node", func(t *testing.T) {
		l := newIntList(1, 2, 3)

		for want := 3; want >= 1; want-- {
			node, ok := l.Pop()
			require.True(t, ok)
			assert.Equal(t, want, node.Value)
			assert.Nil(t, node.Next())
			assert.Equal(t, want-1, l.Len())
			values(t, l)
		}

		_, ok := l.Pop()
		assert.False(t, ok)
	})

	t.Run("pop then push restores the tail", func(t *testing.T) {
		l := newIntList(7, 8, 9)

		node, ok := l.Pop()
		require.True(t, ok)
		l.Push(node.Value)

		assert.Equal(t, 9, l.Tail().Value)
		assert.Equal(t, 3, l.Len())
		assert.Equal(t, []int{7, 8, 9}, values(t, l))
	})
}

func TestShift(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		l := New[int]()
		node, ok := l.Shift()
		assert.False(t, ok)
		assert.Nil(t, node)
	})

	t.Run("returns the first node", func(t *testing.T) {
		l := newIntList(1, 2, 3, 4, 5)

		for want := 1; want <= 5; want++ {
			node, ok := l.Shift()
			require.True(t, ok)
			assert.Equal(t, want, node.Value)
			assert.Nil(t, node.Next())
			values(t, l)
		}
		assert.True(t, l.IsEmpty())
	})

	t.Run("shifting the only node clears the tail", func(t *testing.T) {
		l := newIntList(1)

		node, ok := l.Shift()
		require.True(t, ok)
		assert.Equal(t, 1, node.Value)
		assert.Nil(t, l.Tail())
		assert.Nil(t, l.Head())
		assert.Equal(t, 0, l.Len())
	})
}

func TestGet(t *testing.T) {
	l := newIntList(1, 2, 3)

	for i, want := range []int{1, 2, 3} {
		node, ok := l.Get(i)
		require.True(t, ok)
		assert.Equal(t, want, node.Value)
	}

	t.Run("last position is the tail", func(t *testing.T) {
		node, ok := l.Get(l.Len() - 1)
		require.True(t, ok)
		assert.Same(t, l.Tail(), node)
	})

	tests := []struct {
		name     string
		list     *SinglyLinkedList[int]
		position int
	}{
		{"empty list at zero", New[int](), 0},
		{"empty list past the end", New[int](), 1000},
		{"empty list negative", New[int](), -1},
		{"negative", newIntList(1, 10), -1},
		{"very negative", newIntList(1, 10), -1000},
		{"at length", newIntList(1, 10), 2},
		{"past length", newIntList(1, 10), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, ok := tt.list.Get(tt.position)
			assert.False(t, ok)
			assert.Nil(t, node)
		})
	}
}

func TestSet(t *testing.T) {
	l := newIntList(1, 2, 1, 4, 5)

	require.True(t, l.Set(2, 3))
	node, ok := l.Get(2)
	require.True(t, ok)
	assert.Equal(t, 3, node.Value)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, values(t, l))

	t.Run("out of range changes nothing", func(t *testing.T) {
		assert.False(t, l.Set(l.Len(), 100))
		assert.False(t, l.Set(-1, 100))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, values(t, l))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.False(t, New[int]().Set(0, 1))
	})
}

func TestInsert(t *testing.T) {
	l := New[int]()

	require.True(t, l.Insert(0, 1))
	assert.Equal(t, []int{1}, values(t, l))

	require.True(t, l.Insert(0, 0))
	assert.Equal(t, []int{0, 1}, values(t, l))

	require.True(t, l.Insert(1, 2))
	assert.Equal(t, []int{0, 2, 1}, values(t, l))

	require.True(t, l.Insert(2, 3))
	assert.Equal(t, []int{0, 2, 3, 1}, values(t, l))

	require.True(t, l.Insert(l.Len(), 9))
	node, ok := l.Get(l.Len() - 1)
	require.True(t, ok)
	assert.Equal(t, 9, node.Value)
	assert.Same(t, l.Tail(), node)

	t.Run("out of range changes nothing", func(t *testing.T) {
		before := values(t, l)
		for _, position := range []int{-1, -10, -100, l.Len() + 1, l.Len() + 10} {
			assert.False(t, l.Insert(position, 10), "position %d", position)
		}
		assert.Equal(t, before, values(t, l))
	})
}

func TestRemove(t *testing.T) {
	l := newIntList(1, 2, 3, 4, 5)

	node, ok := l.Remove(4)
	require.True(t, ok)
	assert.Equal(t, 5, node.Value)

	node, ok = l.Remove(0)
	require.True(t, ok)
	assert.Equal(t, 1, node.Value)

	assert.Equal(t, []int{2, 3, 4}, values(t, l))
	assert.Equal(t, 3, l.Len())

	l.Unshift(1)
	l.Push(5)

	node, ok = l.Remove(2)
	require.True(t, ok)
	assert.Equal(t, 3, node.Value)
	assert.Nil(t, node.Next())
	assert.Equal(t, []int{1, 2, 4, 5}, values(t, l))

	t.Run("out of range", func(t *testing.T) {
		l := New[int]()
		for _, position := range []int{-1, -10, -100, -1000, 0} {
			_, ok := l.Remove(position)
			assert.False(t, ok, "position %d", position)
		}

		l.Push(1).Push(2).Push(3)
		_, ok := l.Remove(l.Len())
		assert.False(t, ok)
		_, ok = l.Remove(l.Len() + 1)
		assert.False(t, ok)
		assert.Equal(t, []int{1, 2, 3}, values(t, l))
	})

	t.Run("remove then insert restores the list", func(t *testing.T) {
		for position := 0; position < 5; position++ {
			l := newIntList(10, 20, 30, 40, 50)

			node, ok := l.Remove(position)
			require.True(t, ok)
			require.True(t, l.Insert(position, node.Value))

			assert.Equal(t, 5, l.Len())
			assert.Equal(t, []int{10, 20, 30, 40, 50}, values(t, l))
		}
	})
}

func TestReverse(t *testing.T) {
	t.Run("five nodes", func(t *testing.T) {
		l := newIntList(1, 2, 3, 4, 5)
		oldHead, oldTail := l.Head(), l.Tail()

		l.Reverse()

		for i, want := range []int{5, 4, 3, 2, 1} {
			node, ok := l.Get(i)
			require.True(t, ok)
			assert.Equal(t, want, node.Value)
		}
		assert.Same(t, oldTail, l.Head())
		assert.Same(t, oldHead, l.Tail())
		assert.Equal(t, 5, l.Len())
		values(t, l)
	})

	t.Run("twice restores the order", func(t *testing.T) {
		l := newIntList(1, 2, 3, 4, 5, 6)
		l.Reverse()
		l.Reverse()
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, values(t, l))
	})

	t.Run("empty and single", func(t *testing.T) {
		empty := New[int]()
		empty.Reverse()
		assert.Nil(t, values(t, empty))

		single := newIntList(1)
		single.Reverse()
		assert.Equal(t, []int{1}, values(t, single))
	})

	t.Run("long list", func(t *testing.T) {
		const n = 100000
		l := New[int]()
		for i := 0; i < n; i++ {
			l.Push(i)
		}
		l.Reverse()
		assert.Equal(t, n-1, l.Head().Value)
		assert.Equal(t, 0, l.Tail().Value)
		assert.Equal(t, n, l.Len())
	})
}

func TestMixedValueTypes(t *testing.T) {
	l := New[interface{}]()

	l.Push(1).Push(2).Push(3).Push("yep")
	assert.Equal(t, "yep", l.Tail().Value)
	assert.Equal(t, 4, l.Len())
}
