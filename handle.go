// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package compact

import "sync"

// endNodes holds the single not-found node of every instantiation, keyed by
// the typed nil *Node[S, V].
var endNodes sync.Map

func endNode[S Symbol, V any]() *Node[S, V] {
	key := any((*Node[S, V])(nil))
	if n, ok := endNodes.Load(key); ok {
		return n.(*Node[S, V])
	}
	n, _ := endNodes.LoadOrStore(key, &Node[S, V]{})
	return n.(*Node[S, V])
}

// Handle refers to a stored entry, or to the shared end node when a lookup
// missed. Handles are comparable; every miss of every trie with the same
// type parameters yields an equal handle.
type Handle[S Symbol, V any] struct {
	node *Node[S, V]
}

// End returns the not-found handle.
func End[S Symbol, V any]() Handle[S, V] {
	return Handle[S, V]{node: endNode[S, V]()}
}

func handleFor[S Symbol, V any](n *Node[S, V]) Handle[S, V] {
	if n == nil {
		return End[S, V]()
	}
	if !n.hasEntry {
		panic("compact: matched node carries no entry")
	}
	return Handle[S, V]{node: n}
}

// Found reports whether the handle points at a live entry. A handle whose
// key was erased afterwards is no longer found.
func (h Handle[S, V]) Found() bool {
	return h.node != nil && h.node.hasEntry
}

// Entry returns the stored entry.
func (h Handle[S, V]) Entry() (Entry[S, V], bool) {
	if !h.Found() {
		return Entry[S, V]{}, false
	}
	return h.node.entry, true
}

// Key returns the stored key. The slice must not be modified.
func (h Handle[S, V]) Key() []S {
	if !h.Found() {
		return nil
	}
	return h.node.entry.Key
}

// Value returns the stored value, or the zero value for a miss.
func (h Handle[S, V]) Value() V {
	if !h.Found() {
		var zero V
		return zero
	}
	return h.node.entry.Value
}
