// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashmap

// position identifies one place in the order list of a map: an entry
// of a particular generation, or the end.
type position[K, V any] struct {
	m   *HashMap[K, V]
	s   slot
	gen uint32
	// epoch is the map's epoch when the position was taken. It is zero
	// for End, which survives Clear and growth.
	epoch uint32
}

// Position is implemented by Iterator and ConstIterator so that either
// kind can be compared with the other.
type Position[K, V any] interface {
	position() position[K, V]
}

// Iterator is a position in the insertion order of a HashMap. It
// allows reading the key and reading or writing the value at that
// position. Iterators are values; Next and Prev return new ones.
//
// An Iterator is invalidated when its element is deleted, when the map
// is cleared, and when the map grows. Reading through an invalidated
// Iterator panics.
type Iterator[K, V any] struct {
	pos position[K, V]
}

// ConstIterator is the read-only form of Iterator.
type ConstIterator[K, V any] struct {
	pos position[K, V]
}

func (m *HashMap[K, V]) iteratorAt(s slot) Iterator[K, V] {
	if s == noSlot {
		return Iterator[K, V]{pos: position[K, V]{m: m, s: noSlot}}
	}
	return Iterator[K, V]{pos: position[K, V]{
		m:     m,
		s:     s,
		gen:   m.entries.at(s).gen,
		epoch: m.epoch,
	}}
}

// Begin returns an Iterator at the oldest element of m, or End() if m
// is empty.
func (m *HashMap[K, V]) Begin() Iterator[K, V] {
	if m == nil {
		return Iterator[K, V]{}
	}
	return m.iteratorAt(m.order.head)
}

// End returns the Iterator one past the newest element of m. It is
// also what Find returns for an absent key.
func (m *HashMap[K, V]) End() Iterator[K, V] {
	return m.iteratorAt(noSlot)
}

// ConstBegin is the read-only form of Begin.
func (m *HashMap[K, V]) ConstBegin() ConstIterator[K, V] {
	return m.Begin().Const()
}

// ConstEnd is the read-only form of End.
func (m *HashMap[K, V]) ConstEnd() ConstIterator[K, V] {
	return m.End().Const()
}

func (p position[K, V]) entry() *entry[K, V] {
	if p.s == noSlot {
		panic("hashmap: dereference of End iterator")
	}
	if !p.live() {
		panic("hashmap: use of invalidated iterator")
	}
	return p.m.entries.at(p.s)
}

// live reports whether p is at an entry that still exists. Generations
// restart with each new arena, so the epoch must match as well.
func (p position[K, V]) live() bool {
	return p.epoch == p.m.epoch && p.m.entries.live(p.s, p.gen)
}

func (p position[K, V]) valid() bool {
	return p.s != noSlot && p.m != nil && p.live()
}

func (p position[K, V]) next() position[K, V] {
	if p.s == noSlot {
		return p
	}
	return p.m.iteratorAt(p.entry().next).pos
}

func (p position[K, V]) prev() position[K, V] {
	if p.m == nil {
		return p
	}
	if p.s == noSlot {
		return p.m.iteratorAt(p.m.order.tail).pos
	}
	return p.m.iteratorAt(p.entry().prev).pos
}

func (it Iterator[K, V]) position() position[K, V] {
	return it.pos
}

// Key returns the key at it. It panics if it is End or invalidated.
func (it Iterator[K, V]) Key() K {
	return it.pos.entry().key
}

// Value returns the value at it. It panics if it is End or
// invalidated.
func (it Iterator[K, V]) Value() V {
	return it.pos.entry().value
}

// ValuePtr returns a pointer to the value stored at it. It panics if it
// is End or invalidated.
func (it Iterator[K, V]) ValuePtr() *V {
	return &it.pos.entry().value
}

// SetValue replaces the value stored at it. The key cannot be changed.
func (it Iterator[K, V]) SetValue(value V) {
	it.pos.entry().value = value
}

// Next returns an Iterator at the element inserted after the one at
// it, or End(). Next of End() is End().
func (it Iterator[K, V]) Next() Iterator[K, V] {
	return Iterator[K, V]{pos: it.pos.next()}
}

// Prev returns an Iterator at the element inserted before the one at
// it. Prev of the first element is End(), and Prev of End() is the last
// element, so a reverse walk starts at End().Prev().
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	return Iterator[K, V]{pos: it.pos.prev()}
}

// IsEnd reports whether it is the End iterator.
func (it Iterator[K, V]) IsEnd() bool {
	return it.pos.s == noSlot
}

// Valid reports whether it refers to a live element.
func (it Iterator[K, V]) Valid() bool {
	return it.pos.valid()
}

// Equal reports whether it and p are at the same position of the same
// map.
func (it Iterator[K, V]) Equal(p Position[K, V]) bool {
	return it.pos == p.position()
}

// Const returns the read-only form of it.
func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{pos: it.pos}
}

func (it ConstIterator[K, V]) position() position[K, V] {
	return it.pos
}

// Key returns the key at it. It panics if it is End or invalidated.
func (it ConstIterator[K, V]) Key() K {
	return it.pos.entry().key
}

// Value returns the value at it. It panics if it is End or
// invalidated.
func (it ConstIterator[K, V]) Value() V {
	return it.pos.entry().value
}

// Next is the read-only form of Iterator.Next.
func (it ConstIterator[K, V]) Next() ConstIterator[K, V] {
	return ConstIterator[K, V]{pos: it.pos.next()}
}

// Prev is the read-only form of Iterator.Prev.
func (it ConstIterator[K, V]) Prev() ConstIterator[K, V] {
	return ConstIterator[K, V]{pos: it.pos.prev()}
}

// IsEnd reports whether it is the End iterator.
func (it ConstIterator[K, V]) IsEnd() bool {
	return it.pos.s == noSlot
}

// Valid reports whether it refers to a live element.
func (it ConstIterator[K, V]) Valid() bool {
	return it.pos.valid()
}

// Equal reports whether it and p are at the same position of the same
// map.
func (it ConstIterator[K, V]) Equal(p Position[K, V]) bool {
	return it.pos == p.position()
}
