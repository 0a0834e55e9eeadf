// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hashmap provides the HashMap type, a chained hash table that
// iterates in insertion order.
//
// The following requirements are the user's responsibility to follow:
//   - equal(a, b) => hash(a) == hash(b)
//   - The Hasher must be a pure function of the key. Growing the map
//     rehashes every key and depends on getting the same answer.
//   - If a key in a HashMap contains references -- such as pointers,
//     maps, or slices -- modifying the referenced data in a way that
//     affects the result of the equal or hash functions will result in
//     undefined behavior.
//   - A HashMap is not safe for concurrent use. Concurrent writes are
//     detected on a best-effort basis and panic.
//
// Growth invalidates everything. When an insertion finds the map full
// it destroys every entry and re-creates it in a bucket array twice as
// large. All Iterators, ConstIterators and pointers returned by Ref
// that were obtained before such an insertion become invalid. Using an
// invalid iterator panics. Growth and Clear move m onto fresh entry
// storage, so writing through a pointer obtained before them is lost
// without affecting m. Delete only invalidates iterators positioned at
// the deleted key, but its slot is reused by later insertions: a
// pointer to a deleted value may alias the value of a newer key.
package hashmap

// This file contains a chained hash table with an insertion order list.
//
// Entries live in an arena (see arena.go) and are named by slot. The
// bucket array is a power-of-two sized slice of chains; each chain is
// the unordered list of slots whose hash selects that bucket. The order
// list threads the same entries together in insertion order and is the
// only thing iteration looks at.
//
// The table grows when an insertion of a new key finds count equal to
// the number of buckets, so the load factor never exceeds 1. Growing
// snapshots every pair in order, destroys all entries, doubles the
// bucket array and inserts the snapshot (plus the new pair) again. The
// result has the same order as before with the new key at the end.

import (
	"errors"
	"fmt"
	"iter"
)

const (
	// flags
	hashWriting = 1 // a goroutine is writing to the map
)

// ErrKeyNotFound is returned by At when the key is not in the map.
var ErrKeyNotFound = errors.New("hashmap: key not found")

// chain lists the slots of every entry in one bucket.
type chain []slot

// HashMap implements a hash map that iterates in insertion order.
// Create one with New, NewWithHasher or NewFunc. The zero value may
// only be used as the destination of Assign.
type HashMap[K, V any] struct {
	count int // # live entries == size of map
	flags uint32

	// array of chains. len(buckets) is the capacity of the map; it is
	// zero or a power of two and never shrinks.
	buckets []chain
	entries arena[K, V]
	order   orderList
	// epoch counts the times entries was replaced by Clear or growth.
	epoch uint32

	hasher Hasher[K]
	equal  func(K, K) bool
}

// KeyValue contains a Key and Value.
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

func equalComparable[K comparable](a, b K) bool {
	return a == b
}

// New instantiates a new HashMap using a SeededHasher and == to compare
// keys. Any KeyValues passed are inserted in order; when a key repeats,
// the first value wins.
func New[K comparable, V any](kvs ...KeyValue[K, V]) *HashMap[K, V] {
	return NewFunc[K, V](equalComparable[K], NewSeededHasher[K](), kvs...)
}

// NewWithHasher instantiates a new HashMap that uses hasher and == to
// compare keys. A nil hasher selects a SeededHasher. See [New] for the
// handling of kvs.
func NewWithHasher[K comparable, V any](hasher Hasher[K],
	kvs ...KeyValue[K, V]) *HashMap[K, V] {
	if hasher == nil {
		hasher = NewSeededHasher[K]()
	}
	return NewFunc[K, V](equalComparable[K], hasher, kvs...)
}

// NewFunc instantiates a new HashMap for any key type. The equal func
// must return true for two values of K that are equal and false
// otherwise, and equal keys must hash to the same value. See [New] for
// the handling of kvs.
func NewFunc[K, V any](
	equal func(a, b K) bool,
	hasher Hasher[K],
	kvs ...KeyValue[K, V]) *HashMap[K, V] {

	if equal == nil || hasher == nil {
		panic("hashmap: NewFunc requires equal and hasher")
	}
	m := &HashMap[K, V]{hasher: hasher, equal: equal}
	for _, kv := range kvs {
		m.Insert(kv.Key, kv.Value)
	}
	return m
}

// FromRange instantiates a new HashMap holding the elements in
// [begin, end), inserted in iteration order. A nil hasher selects a
// SeededHasher.
func FromRange[K comparable, V any](begin, end ConstIterator[K, V],
	hasher Hasher[K]) *HashMap[K, V] {
	m := NewWithHasher[K, V](hasher)
	m.InsertRange(begin, end)
	return m
}

// Collect instantiates a new HashMap holding the pairs of seq, inserted
// in the order seq yields them. A nil hasher selects a SeededHasher.
func Collect[K comparable, V any](seq iter.Seq2[K, V],
	hasher Hasher[K]) *HashMap[K, V] {
	m := NewWithHasher[K, V](hasher)
	m.InsertSeq(seq)
	return m
}

func makeBucketArray(nbuckets int) []chain {
	if nbuckets&(nbuckets-1) != 0 {
		panic("nbuckets is not power of 2")
	}
	return make([]chain, nbuckets)
}

// Len returns the count of occupied elements in m.
func (m *HashMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// Empty reports whether m has no elements.
func (m *HashMap[K, V]) Empty() bool {
	return m.Len() == 0
}

// Cap returns the number of buckets in m. It is zero for a map that
// never held an element and a power of two otherwise.
func (m *HashMap[K, V]) Cap() int {
	if m == nil {
		return 0
	}
	return len(m.buckets)
}

// HashFunction returns the hash strategy of m.
func (m *HashMap[K, V]) HashFunction() Hasher[K] {
	if m == nil {
		return nil
	}
	return m.hasher
}

func (m *HashMap[K, V]) mustInit(op string) {
	if m == nil {
		panic(op + " called on nil HashMap")
	}
	if m.hasher == nil {
		// There is no way to pick a hasher for an arbitrary K, so the
		// zero HashMap cannot be written to.
		panic(op + " called on HashMap not created with New")
	}
}

func (m *HashMap[K, V]) startWrite() {
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	m.flags ^= hashWriting
}

func (m *HashMap[K, V]) endWrite() {
	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
}

func (m *HashMap[K, V]) bucketMask() uint64 {
	return uint64(len(m.buckets) - 1)
}

// lookup returns the slot holding key, or noSlot.
func (m *HashMap[K, V]) lookup(key K, hash uint64) slot {
	if len(m.buckets) == 0 {
		return noSlot
	}
	for _, s := range m.buckets[hash&m.bucketMask()] {
		e := m.entries.at(s)
		if e.hash == hash && m.equal(key, e.key) {
			return s
		}
	}
	return noSlot
}

func (m *HashMap[K, V]) findSlot(key K) slot {
	if m == nil || m.count == 0 {
		return noSlot
	}
	return m.lookup(key, m.hasher.Hash(key))
}

// Insert associates key with value in m if key is not already present
// and reports whether it did. An existing value is never overwritten;
// use Set for that.
//
// If m is full, Insert grows it, which invalidates every iterator and
// every pointer returned by Ref.
func (m *HashMap[K, V]) Insert(key K, value V) bool {
	m.mustInit("Insert")
	hash := m.hasher.Hash(key)
	// Set hashWriting after calling the hasher, since it may panic,
	// in which case we have not actually done a write.
	m.startWrite()
	_, inserted := m.insert(key, value, hash)
	m.endWrite()
	return inserted
}

// insert returns the slot of key and whether it was added.
func (m *HashMap[K, V]) insert(key K, value V, hash uint64) (slot, bool) {
	if s := m.lookup(key, hash); s != noSlot {
		return s, false
	}
	if m.count == len(m.buckets) {
		return m.grow(key, value, hash), true
	}
	return m.link(key, value, hash), true
}

// link stores a new entry. There must be room for it and key must be
// absent.
func (m *HashMap[K, V]) link(key K, value V, hash uint64) slot {
	s := m.entries.alloc(key, value, hash)
	b := hash & m.bucketMask()
	m.buckets[b] = append(m.buckets[b], s)
	m.entries.pushBack(&m.order, s)
	m.count++
	return s
}

// pending is a pair waiting to be re-inserted during growth.
type pending[K, V any] struct {
	key   K
	value V
	hash  uint64
}

// grow doubles the bucket array and rebuilds m with key appended. It
// returns the slot of key.
func (m *HashMap[K, V]) grow(key K, value V, hash uint64) slot {
	snapshot := make([]pending[K, V], 0, m.count+1)
	for s := m.order.head; s != noSlot; {
		e := m.entries.at(s)
		snapshot = append(snapshot, pending[K, V]{e.key, e.value, e.hash})
		s = e.next
	}
	snapshot = append(snapshot, pending[K, V]{key, value, hash})

	m.clear()
	newsize := len(m.buckets) * 2
	if newsize == 0 {
		newsize = 1
	}
	m.buckets = makeBucketArray(newsize)

	var s slot
	for _, p := range snapshot {
		s = m.link(p.key, p.value, p.hash)
	}
	return s
}

// Set associates key with value in m, overwriting the value of an
// existing key. An existing key keeps its position in the iteration
// order.
func (m *HashMap[K, V]) Set(key K, value V) {
	m.mustInit("Set")
	hash := m.hasher.Hash(key)
	m.startWrite()
	if s, inserted := m.insert(key, value, hash); !inserted {
		m.entries.at(s).value = value
	}
	m.endWrite()
}

// Update calls fn with the value associated with key, or the zero value
// of V if there is none, and stores the result under key.
func (m *HashMap[K, V]) Update(key K, fn func(cur V) V) {
	m.mustInit("Update")
	hash := m.hasher.Hash(key)
	var cur V
	if s := m.lookup(key, hash); s != noSlot {
		cur = m.entries.at(s).value
	}
	// fn runs outside of the write so it may read m.
	value := fn(cur)
	m.startWrite()
	if s, inserted := m.insert(key, value, hash); !inserted {
		m.entries.at(s).value = value
	}
	m.endWrite()
}

// Get returns the value associated with key and true if that key is in
// the HashMap, otherwise it returns the zero value of V and false.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	if s := m.findSlot(key); s != noSlot {
		return m.entries.at(s).value, true
	}
	var zeroV V
	return zeroV, false
}

// Contains reports whether key is in m.
func (m *HashMap[K, V]) Contains(key K) bool {
	return m.findSlot(key) != noSlot
}

// At returns the value associated with key. If key is absent it
// returns an error wrapping ErrKeyNotFound. At never inserts.
func (m *HashMap[K, V]) At(key K) (V, error) {
	if s := m.findSlot(key); s != noSlot {
		return m.entries.at(s).value, nil
	}
	var zeroV V
	return zeroV, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Ref returns a pointer to the value associated with key, first
// inserting the zero value of V if key is absent. The pointer stays
// valid until key is deleted, m is cleared, or m grows. Writes through
// it after Clear or growth are lost; after Delete they may land in the
// value of a key inserted later.
func (m *HashMap[K, V]) Ref(key K) *V {
	m.mustInit("Ref")
	hash := m.hasher.Hash(key)
	s := m.lookup(key, hash)
	if s == noSlot {
		var zeroV V
		m.startWrite()
		s, _ = m.insert(key, zeroV, hash)
		m.endWrite()
	}
	return &m.entries.at(s).value
}

// Find returns an Iterator positioned at key, or End() if key is not
// in m.
func (m *HashMap[K, V]) Find(key K) Iterator[K, V] {
	return m.iteratorAt(m.findSlot(key))
}

// Delete removes key and its associated value from the map and reports
// whether key was present. The capacity of m is unchanged.
func (m *HashMap[K, V]) Delete(key K) bool {
	if m == nil || m.count == 0 {
		return false
	}
	hash := m.hasher.Hash(key)

	// Set hashWriting after calling the hasher, since it may panic,
	// in which case we have not actually done a write (delete).
	m.startWrite()
	deleted := m.remove(key, hash)
	m.endWrite()
	return deleted
}

func (m *HashMap[K, V]) remove(key K, hash uint64) bool {
	b := &m.buckets[hash&m.bucketMask()]
	for i, s := range *b {
		e := m.entries.at(s)
		if e.hash != hash || !m.equal(key, e.key) {
			continue
		}
		m.entries.unlink(&m.order, s)
		// Order within a chain does not matter, fill the hole with the
		// last slot.
		c := *b
		last := len(c) - 1
		c[i] = c[last]
		*b = c[:last]
		m.entries.release(s)
		m.count--
		return true
	}
	return false
}

// Clear deletes all keys from m. The capacity of m is unchanged, so
// refilling it up to the old size does not grow it again.
func (m *HashMap[K, V]) Clear() {
	if m == nil || m.count == 0 {
		return
	}
	m.startWrite()
	m.clear()
	m.endWrite()
}

func (m *HashMap[K, V]) clear() {
	for i := range m.buckets {
		m.buckets[i] = m.buckets[i][:0]
	}
	// Detach the old pages rather than reuse them, so outstanding
	// pointers into them cannot reach the new entries.
	m.entries = arena[K, V]{}
	m.epoch++
	m.order = orderList{}
	m.count = 0
}

// Clone returns a copy of m with the same hasher, equal func and
// iteration order. Keys and values are copied with ordinary
// assignment.
func (m *HashMap[K, V]) Clone() *HashMap[K, V] {
	if m == nil {
		return nil
	}
	c := &HashMap[K, V]{hasher: m.hasher, equal: m.equal}
	for s := m.order.head; s != noSlot; {
		e := m.entries.at(s)
		c.insert(e.key, e.value, e.hash)
		s = e.next
	}
	return c
}

// Assign replaces the contents of m with those of src, taking src's
// hasher and equal func. The capacity of m is kept, as with Clear.
// Assigning a map to itself does nothing.
func (m *HashMap[K, V]) Assign(src *HashMap[K, V]) {
	if m == src {
		return
	}
	if m == nil {
		panic("Assign called on nil HashMap")
	}
	m.startWrite()
	m.clear()
	if src == nil {
		m.endWrite()
		return
	}
	m.hasher = src.hasher
	m.equal = src.equal
	for s := src.order.head; s != noSlot; {
		e := src.entries.at(s)
		m.insert(e.key, e.value, e.hash)
		s = e.next
	}
	m.endWrite()
}

// InsertRange inserts the elements of [begin, end) into m in iteration
// order. If end is not reachable from begin, all elements from begin to
// the end of its map are inserted.
func (m *HashMap[K, V]) InsertRange(begin, end ConstIterator[K, V]) {
	for it := begin; !it.IsEnd() && !it.Equal(end); it = it.Next() {
		m.Insert(it.Key(), it.Value())
	}
}

// InsertSeq inserts every pair yielded by seq into m.
func (m *HashMap[K, V]) InsertSeq(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Insert(k, v)
	}
}
