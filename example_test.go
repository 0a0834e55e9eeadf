// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashmap_test

import (
	"errors"
	"fmt"

	"github.com/aristanetworks/hashmap"
)

func ExampleHashMap_Begin() {
	m := hashmap.New(
		hashmap.KeyValue[string, string]{"Avenue", "AVE"},
		hashmap.KeyValue[string, string]{"Street", "ST"},
		hashmap.KeyValue[string, string]{"Court", "CT"},
	)

	for it := m.Begin(); !it.IsEnd(); it = it.Next() {
		fmt.Printf("The abbreviation for %q is %q\n", it.Key(), it.Value())
	}
	// Output:
	// The abbreviation for "Avenue" is "AVE"
	// The abbreviation for "Street" is "ST"
	// The abbreviation for "Court" is "CT"
}

func ExampleHashMap_Insert() {
	m := hashmap.New[int, string]()
	m.Insert(1, "first")
	m.Insert(1, "second")
	fmt.Println(m)
	m.Set(1, "second")
	fmt.Println(m)
	// Output:
	// hashmap.HashMap[1:first]
	// hashmap.HashMap[1:second]
}

func ExampleHashMap_At() {
	m := hashmap.New[int, string]()
	*m.Ref(4) = "d"
	if v, err := m.At(4); err == nil {
		fmt.Println(v)
	}
	if _, err := m.At(5); errors.Is(err, hashmap.ErrKeyNotFound) {
		fmt.Println(err)
	}
	// Output:
	// d
	// hashmap: key not found: 5
}
