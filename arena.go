// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashmap

// slot identifies an entry in the arena. Bucket chains and the order
// list refer to entries only by slot, never by pointer, so the arena is
// the single owner of every entry. Slots start at 1.
type slot int32

// noSlot is the nil slot. It terminates the order list and doubles as
// the position of the End iterator. Being zero, it makes the zero
// orderList an empty list.
const noSlot slot = 0

const (
	pageBits = 6
	pageSize = 1 << pageBits
	pageMask = pageSize - 1
)

type entry[K, V any] struct {
	key   K
	value V
	hash  uint64
	// prev and next link the entry into the order list.
	prev, next slot
	// gen is bumped every time the entry is destroyed, so iterators
	// holding an older generation know they are stale.
	gen  uint32
	live bool
}

func (e *entry[K, V]) destroy() {
	var (
		zeroK K
		zeroV V
	)
	// Clear key and value in case they have pointers
	e.key = zeroK
	e.value = zeroV
	e.hash = 0
	e.prev, e.next = noSlot, noSlot
	e.live = false
	e.gen++
}

type page[K, V any] [pageSize]entry[K, V]

// arena is a paged store of entries. Pages are never moved once
// allocated, so the address of an entry is stable for as long as the
// entry lives and *V handed out by Ref stays valid until the entry is
// destroyed. An arena is never emptied in place; HashMap replaces it
// wholesale on Clear and growth.
type arena[K, V any] struct {
	pages []*page[K, V]
	// used is the number of slots ever handed out.
	used int
	free []slot
}

func (a *arena[K, V]) at(s slot) *entry[K, V] {
	i := s - 1
	return &a.pages[i>>pageBits][i&pageMask]
}

// alloc returns a slot holding a fresh live entry for key and value.
func (a *arena[K, V]) alloc(key K, value V, hash uint64) slot {
	var s slot
	if n := len(a.free); n > 0 {
		s = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if a.used == len(a.pages)*pageSize {
			a.pages = append(a.pages, new(page[K, V]))
		}
		a.used++
		s = slot(a.used)
	}
	e := a.at(s)
	e.key = key
	e.value = value
	e.hash = hash
	e.prev, e.next = noSlot, noSlot
	e.live = true
	return s
}

// release destroys the entry in s and returns the slot to the free
// list.
func (a *arena[K, V]) release(s slot) {
	a.at(s).destroy()
	a.free = append(a.free, s)
}

// live reports whether s holds a live entry of generation gen.
func (a *arena[K, V]) live(s slot, gen uint32) bool {
	if s <= noSlot || int(s) > a.used {
		return false
	}
	e := a.at(s)
	return e.live && e.gen == gen
}

// orderList records insertion order by linking arena entries through
// their prev and next fields.
type orderList struct {
	head, tail slot
}

func (a *arena[K, V]) pushBack(l *orderList, s slot) {
	e := a.at(s)
	e.prev = l.tail
	e.next = noSlot
	if l.tail == noSlot {
		l.head = s
	} else {
		a.at(l.tail).next = s
	}
	l.tail = s
}

func (a *arena[K, V]) unlink(l *orderList, s slot) {
	e := a.at(s)
	if e.prev == noSlot {
		l.head = e.next
	} else {
		a.at(e.prev).next = e.next
	}
	if e.next == noSlot {
		l.tail = e.prev
	} else {
		a.at(e.next).prev = e.prev
	}
	e.prev, e.next = noSlot, noSlot
}
