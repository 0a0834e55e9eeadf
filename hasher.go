// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher is the hash strategy of a HashMap. Hash must be a pure
// function of key: calling it twice with equal keys must return the
// same value for the lifetime of the map, otherwise entries are lost
// when the map grows. For good performance the low bits of the result
// should be uniformly distributed, since they select the bucket.
type Hasher[K any] interface {
	Hash(key K) uint64
}

// HashFunc adapts an ordinary function to the Hasher interface.
type HashFunc[K any] func(key K) uint64

// Hash returns f(key).
func (f HashFunc[K]) Hash(key K) uint64 {
	return f(key)
}

// SeededHasher hashes any comparable key with [hash/maphash] under a
// fixed seed. It is the default strategy of New. The zero value is not
// usable; create one with NewSeededHasher.
type SeededHasher[K comparable] struct {
	seed maphash.Seed
}

// NewSeededHasher returns a SeededHasher with a random seed.
func NewSeededHasher[K comparable]() SeededHasher[K] {
	return SeededHasher[K]{seed: maphash.MakeSeed()}
}

// Hash hashes key under h's seed.
func (h SeededHasher[K]) Hash(key K) uint64 {
	return maphash.Comparable(h.seed, key)
}

// StringHasher hashes strings with xxHash. Unlike SeededHasher its
// output is the same across processes.
type StringHasher struct{}

// Hash returns the xxHash64 digest of key.
func (StringHasher) Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// BytesHasher hashes byte slices with xxHash. Use it together with
// bytes.Equal and NewFunc.
type BytesHasher struct{}

// Hash returns the xxHash64 digest of key.
func (BytesHasher) Hash(key []byte) uint64 {
	return xxhash.Sum64(key)
}
