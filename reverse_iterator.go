// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package compact

// ReverseIterator is used to iterate over a contents snapshot
// in reverse order
type ReverseIterator[S Symbol, V any] struct {
	contents Contents[S, V]

	// pos is one past the entry Previous returns next.
	pos int
}

// SeekReverseLowerBound is used to seek the iterator to the largest key that is
// lower or equal to the given key.
func (ri *ReverseIterator[S, V]) SeekReverseLowerBound(key []S) {
	idx := ri.contents.search(key)
	if idx < len(ri.contents.nodes) && compareKeys(ri.contents.nodes[idx].entry.Key, key, ri.contents.transform) == 0 {
		idx++
	}
	ri.pos = idx
}

// Previous returns the previous node in reverse order
func (ri *ReverseIterator[S, V]) Previous() ([]S, V, bool) {
	var zero V
	if ri.pos <= 0 {
		return nil, zero, false
	}
	ri.pos--
	n := ri.contents.nodes[ri.pos]
	return n.entry.Key, n.entry.Value, true
}
