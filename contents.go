// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package compact

import "sort"

// Contents is a read-only, lexicographically ordered view of the entries
// of a trie, taken from its cache.
type Contents[S Symbol, V any] struct {
	nodes     []*Node[S, V]
	transform TransformFn[S]
}

// Len returns the number of entries in the view.
func (c Contents[S, V]) Len() int {
	return len(c.nodes)
}

// At returns a handle to the i-th entry.
func (c Contents[S, V]) At(i int) Handle[S, V] {
	return Handle[S, V]{node: c.nodes[i]}
}

// Entries copies the view into a slice of entries. Keys are copied too;
// values are not.
func (c Contents[S, V]) Entries() []Entry[S, V] {
	out := make([]Entry[S, V], len(c.nodes))
	for i, n := range c.nodes {
		out[i] = Entry[S, V]{Key: copyKey(n.entry.Key), Value: n.entry.Value}
	}
	return out
}

// Keys copies the stored keys in order.
func (c Contents[S, V]) Keys() [][]S {
	out := make([][]S, len(c.nodes))
	for i, n := range c.nodes {
		out[i] = copyKey(n.entry.Key)
	}
	return out
}

// search returns the index of the first entry whose key is >= key.
func (c Contents[S, V]) search(key []S) int {
	return sort.Search(len(c.nodes), func(i int) bool {
		return compareKeys(c.nodes[i].entry.Key, key, c.transform) >= 0
	})
}

// LowerBound returns an iterator starting at the first entry whose key is
// greater than or equal to key.
func (c Contents[S, V]) LowerBound(key []S) *LowerBoundIterator[S, V] {
	return &LowerBoundIterator[S, V]{nodes: c.nodes, pos: c.search(key)}
}

// Reverse returns an iterator walking the view from the largest key down.
func (c Contents[S, V]) Reverse() *ReverseIterator[S, V] {
	return &ReverseIterator[S, V]{contents: c, pos: len(c.nodes)}
}
