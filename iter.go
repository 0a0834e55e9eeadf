// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashmap

import "iter"

// walk calls yield for each live entry of m in insertion order, or in
// reverse insertion order if backward is set. yield may delete the key
// it was called with. Keys inserted during the walk may or may not be
// visited. If the map grows during the walk, walk panics.
func (m *HashMap[K, V]) walk(backward bool, yield func(e *entry[K, V]) bool) {
	if m == nil {
		return
	}
	start := m.order.head
	if backward {
		start = m.order.tail
	}
	nbuckets := len(m.buckets)
	for p := m.iteratorAt(start).pos; p.s != noSlot; {
		e := p.entry()
		following := e.next
		if backward {
			following = e.prev
		}
		after := m.iteratorAt(following).pos
		if !yield(e) {
			return
		}
		if len(m.buckets) != nbuckets {
			panic("hashmap: map grew during iteration")
		}
		switch {
		case p.valid():
			// Re-read the link: entries after p may have been deleted.
			e = m.entries.at(p.s)
			following = e.next
			if backward {
				following = e.prev
			}
			p = m.iteratorAt(following).pos
		case after.s == noSlot || after.valid():
			p = after
		default:
			panic("hashmap: map modified during iteration")
		}
	}
}

// All returns an iterator over key-value pairs from m in insertion
// order.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.walk(false, func(e *entry[K, V]) bool {
			return yield(e.key, e.value)
		})
	}
}

// Backward returns an iterator over key-value pairs from m, newest
// first.
func (m *HashMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.walk(true, func(e *entry[K, V]) bool {
			return yield(e.key, e.value)
		})
	}
}

// Keys returns an iterator over keys in m in insertion order.
func (m *HashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.walk(false, func(e *entry[K, V]) bool {
			return yield(e.key)
		})
	}
}

// Values returns an iterator over values in m in insertion order.
func (m *HashMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.walk(false, func(e *entry[K, V]) bool {
			return yield(e.value)
		})
	}
}
