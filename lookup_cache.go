// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package compact

import (
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// lookupCache remembers lookup results, misses included, until the next
// mutation of the trie.
type lookupCache[S Symbol, V any] struct {
	lru *simplelru.LRU[string, *Node[S, V]]
}

func newLookupCache[S Symbol, V any](size int) (*lookupCache[S, V], error) {
	lru, err := simplelru.NewLRU[string, *Node[S, V]](size, nil)
	if err != nil {
		return nil, err
	}
	return &lookupCache[S, V]{lru: lru}, nil
}

func (c *lookupCache[S, V]) lookup(root *Node[S, V], key []S, mode lookupMode, terminator S, tf TransformFn[S]) *Node[S, V] {
	ck := cacheKey(mode, terminator, key)
	if n, ok := c.lru.Get(ck); ok {
		return n
	}
	n := root.lookup(key, mode, tf.apply(terminator), tf)
	c.lru.Add(ck, n)
	return n
}

// purge drops every memoized result and reports how many there were.
func (c *lookupCache[S, V]) purge() int {
	n := c.lru.Len()
	if n > 0 {
		c.lru.Purge()
	}
	return n
}
