// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashmap

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestSeededHasher(t *testing.T) {
	h := NewSeededHasher[string]()
	require.Equal(t, h.Hash("key"), h.Hash("key"))
	require.NotEqual(t, h.Hash("key"), h.Hash("other"))

	type point struct{ x, y int }
	p := NewSeededHasher[point]()
	require.Equal(t, p.Hash(point{1, 2}), p.Hash(point{1, 2}))

	// Copies of a hasher share its seed.
	m := NewWithHasher[string, int](h, KeyValue[string, int]{"key", 1})
	c := m.Clone()
	require.Equal(t, h.Hash("key"), c.HashFunction().Hash("key"))
}

func TestXXHashers(t *testing.T) {
	require.Equal(t, xxhash.Sum64String("abc"), StringHasher{}.Hash("abc"))
	require.Equal(t, xxhash.Sum64([]byte("abc")), BytesHasher{}.Hash([]byte("abc")))
	require.Equal(t, StringHasher{}.Hash("abc"), BytesHasher{}.Hash([]byte("abc")))
}

func TestHashFunc(t *testing.T) {
	var calls int
	h := HashFunc[int](func(k int) uint64 {
		calls++
		return uint64(k)
	})
	m := NewWithHasher[int, int](h)
	for i := 0; i < 8; i++ {
		m.Insert(i, i)
	}
	// Growth reuses the cached hash, so every key is hashed once on
	// insert.
	require.Equal(t, 8, calls)
	require.Equal(t, 8, m.Cap())
	for i := 0; i < 8; i++ {
		require.Len(t, m.buckets[i], 1, "bucket %d", i)
	}
}

func TestNilHasherDefaults(t *testing.T) {
	m := NewWithHasher[int, int](nil, KeyValue[int, int]{1, 1})
	require.IsType(t, SeededHasher[int]{}, m.HashFunction())
	require.PanicsWithValue(t, "hashmap: NewFunc requires equal and hasher", func() {
		NewFunc[int, int](nil, h0)
	})
}

var h0 = HashFunc[int](func(int) uint64 { return 0 })
