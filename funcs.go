// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashmap

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// String converts m to a string representation using K's and V's
// String functions. Elements appear in insertion order.
func String[K fmt.Stringer, V fmt.Stringer](m *HashMap[K, V]) string {
	return StringFunc(m,
		func(key K) string { return key.String() },
		func(value V) string { return value.String() },
	)
}

// String converts m to a string representation using fmt's %v verb for
// keys and values.
func (m *HashMap[K, V]) String() string {
	return StringFunc(m,
		func(key K) string { return fmt.Sprint(key) },
		func(value V) string { return fmt.Sprint(value) },
	)
}

// Keys returns the keys of m in insertion order. The slice is a copy;
// later changes to m do not affect it.
func Keys[K, V any](m *HashMap[K, V]) []K {
	keys := slices.Grow([]K(nil), m.Len())
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values of m in insertion order. The slice is a
// copy; later changes to m do not affect it.
func Values[K, V any](m *HashMap[K, V]) []V {
	values := slices.Grow([]V(nil), m.Len())
	for v := range m.Values() {
		values = append(values, v)
	}
	return values
}

type strKV struct {
	k string
	v string
}

// StringFunc converts m to a string representation with the help of
// strK and strV functions to stringify m's keys and values. Elements
// appear in insertion order.
func StringFunc[K any, V any](m *HashMap[K, V],
	strK func(key K) string,
	strV func(value V) string) string {
	if m == nil || m.Len() == 0 {
		return "hashmap.HashMap[]"
	}
	strs := make([]strKV, 0, m.Len())
	s := 0
	for k, v := range m.All() {
		kv := strKV{k: strK(k), v: strV(v)}
		s += len(kv.k) + len(kv.v)
		strs = append(strs, kv)
	}

	var b strings.Builder
	b.Grow(len("hashmap.HashMap[]") + // space for header and footer
		len(strs)*2 - 1 + // space for delimiters
		s) // space for keys and values
	b.WriteString("hashmap.HashMap[")
	for i, kv := range strs {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kv.k)
		b.WriteByte(':')
		b.WriteString(kv.v)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal returns true if the same set of keys and values are in m1 and
// m2, regardless of order. Values are compared using ==.
func Equal[K any, V comparable](m1, m2 *HashMap[K, V]) bool {
	return EqualFunc(m1, m2, func(v1, v2 V) bool { return v1 == v2 })
}

// EqualFunc returns true if the same set of keys and values are in m1
// and m2, regardless of order. Values are compared using eq.
func EqualFunc[K, V any](m1, m2 *HashMap[K, V], eq func(V, V) bool) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	for k, v1 := range m1.All() {
		v2, ok := m2.Get(k)
		if !ok || !eq(v1, v2) {
			return false
		}
	}
	return true
}

// OrderedEqual returns true if m1 and m2 hold the same keys and values
// in the same insertion order. Keys are compared with m1's equal func
// and values using ==.
func OrderedEqual[K any, V comparable](m1, m2 *HashMap[K, V]) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	if m1.Len() == 0 {
		return true
	}
	it2 := m2.ConstBegin()
	for it1 := m1.ConstBegin(); !it1.IsEnd(); it1 = it1.Next() {
		if !m1.equal(it1.Key(), it2.Key()) || it1.Value() != it2.Value() {
			return false
		}
		it2 = it2.Next()
	}
	return true
}
