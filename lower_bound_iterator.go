// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package compact

// LowerBoundIterator walks a contents snapshot forward from a seek
// position.
type LowerBoundIterator[S Symbol, V any] struct {
	nodes []*Node[S, V]
	pos   int
}

// Front returns the entry the next call to Next will return, or End().
func (i *LowerBoundIterator[S, V]) Front() Handle[S, V] {
	if i.pos >= len(i.nodes) {
		return End[S, V]()
	}
	return Handle[S, V]{node: i.nodes[i.pos]}
}

func (i *LowerBoundIterator[S, V]) Next() ([]S, V, bool) {
	var zero V
	if i.pos >= len(i.nodes) {
		return nil, zero, false
	}
	n := i.nodes[i.pos]
	i.pos++
	return n.entry.Key, n.entry.Value, true
}
