// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newABC(t *testing.T) *HashMap[int, string] {
	t.Helper()
	m := New(
		KeyValue[int, string]{1, "a"},
		KeyValue[int, string]{2, "b"},
		KeyValue[int, string]{3, "c"},
	)
	require.Equal(t, 3, m.Len())
	require.Equal(t, 4, m.Cap())
	return m
}

func TestIteratorWalk(t *testing.T) {
	m := newABC(t)

	var keys []int
	for it := m.Begin(); !it.Equal(m.End()); it = it.Next() {
		keys = append(keys, it.Key())
	}
	require.Equal(t, []int{1, 2, 3}, keys)

	keys = keys[:0]
	for it := m.End().Prev(); !it.IsEnd(); it = it.Prev() {
		keys = append(keys, it.Key())
	}
	require.Equal(t, []int{3, 2, 1}, keys)

	// Walks are restartable.
	require.True(t, m.Begin().Equal(m.Begin()))
	require.Equal(t, 1, m.Begin().Key())

	require.True(t, m.End().Next().IsEnd())
	require.True(t, m.Begin().Prev().IsEnd())
}

func TestIteratorEmpty(t *testing.T) {
	m := New[int, string]()
	require.True(t, m.Begin().Equal(m.End()))
	require.True(t, m.ConstBegin().Equal(m.ConstEnd()))
	require.True(t, m.End().Prev().IsEnd())
	require.False(t, m.End().Valid())
	require.PanicsWithValue(t, "hashmap: dereference of End iterator", func() {
		m.End().Key()
	})
}

func TestIteratorConstEquality(t *testing.T) {
	m := newABC(t)
	it := m.Find(2)
	cit := m.Find(2).Const()

	require.True(t, it.Equal(cit))
	require.True(t, cit.Equal(it))
	require.True(t, m.End().Equal(m.ConstEnd()))
	require.False(t, it.Equal(m.Find(3)))
	require.False(t, cit.Equal(m.ConstBegin()))
	require.True(t, cit.Next().Equal(m.Find(3)))
	require.True(t, cit.Prev().Equal(m.ConstBegin()))
	require.Equal(t, 2, cit.Key())
	require.Equal(t, "b", cit.Value())

	// End iterators of different maps are different positions.
	other := newABC(t)
	require.False(t, m.End().Equal(other.End()))
}

func TestIteratorMutation(t *testing.T) {
	m := newABC(t)
	it := m.Find(2)
	it.SetValue("B")
	v, err := m.At(2)
	require.NoError(t, err)
	require.Equal(t, "B", v)

	*m.Find(3).ValuePtr() = "C"
	require.Equal(t, "C", m.Find(3).Value())

	for it := m.Begin(); !it.IsEnd(); it = it.Next() {
		it.SetValue(it.Value() + it.Value())
	}
	require.Equal(t, "aa BB CC", m.Find(1).Value()+" "+m.Find(2).Value()+" "+m.Find(3).Value())
}

func TestIteratorDeleteInvalidatesOnlyErased(t *testing.T) {
	m := newABC(t)
	first := m.Find(1)
	second := m.Find(2)
	third := m.Find(3)

	m.Delete(2)
	require.False(t, second.Valid())
	require.PanicsWithValue(t, "hashmap: use of invalidated iterator", func() {
		second.Key()
	})
	require.True(t, first.Valid())
	require.True(t, third.Valid())
	require.True(t, first.Next().Equal(third))
	require.True(t, third.Prev().Equal(first))
	require.Equal(t, "c", third.Value())

	// A new key that reuses the erased slot is a different position.
	m.Insert(4, "d")
	require.False(t, second.Valid())
	require.False(t, second.Equal(m.Find(4)))
	require.True(t, third.Next().Equal(m.Find(4)))
}

func TestIteratorGrowthInvalidatesAll(t *testing.T) {
	m := New[int, string]()
	m.Insert(1, "a")
	m.Insert(2, "b")
	require.Equal(t, 2, m.Cap())

	it := m.Find(1)
	end := m.End()
	m.Insert(3, "c") // grows to 4
	require.Equal(t, 4, m.Cap())
	require.False(t, it.Valid())
	require.PanicsWithValue(t, "hashmap: use of invalidated iterator", func() {
		it.Value()
	})
	require.True(t, end.Equal(m.End()))

	// Inserting without growth leaves iterators alone.
	it = m.Find(1)
	m.Insert(4, "d")
	require.True(t, it.Valid())
	require.Equal(t, "a", it.Value())
}

func TestIteratorClearInvalidates(t *testing.T) {
	m := newABC(t)
	it := m.Begin()
	m.Clear()
	require.False(t, it.Valid())
	m.Insert(1, "a")
	require.False(t, it.Valid())
	require.False(t, it.Equal(m.Begin()))
}
