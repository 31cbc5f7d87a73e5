// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package compact

type lookupMode uint8

const (
	modeExact lookupMode = iota
	modePrefix
	modeTerminated
	modeLongest
)

// Entry is a stored key and its value.
type Entry[S Symbol, V any] struct {
	Key   []S
	Value V
}

// Node is one position along one or more key paths. Its children live in a
// sparse array whose slot 0 maps to the symbol held in offset, so a node
// only pays for the symbol range it actually uses.
type Node[S Symbol, V any] struct {
	children []*Node[S, V]
	offset   int
	entry    Entry[S, V]

	// hasEntry, not the contents of entry, decides whether a key ends here.
	hasEntry bool
}

// findChild returns the child reachable through sym, or nil.
func (n *Node[S, V]) findChild(sym S) *Node[S, V] {
	idx := int(sym) - n.offset
	if idx < 0 || idx >= len(n.children) {
		return nil
	}
	return n.children[idx]
}

// slotFor grows the child array until it covers sym and returns the slot
// index for it. The array is never shrunk or re-based to a higher offset.
func (n *Node[S, V]) slotFor(sym S) int {
	s := int(sym)
	switch {
	case len(n.children) == 0:
		n.children = make([]*Node[S, V], 1)
		n.offset = s
	case s < n.offset:
		// underflow
		grow := n.offset - s
		children := make([]*Node[S, V], grow+len(n.children))
		copy(children[grow:], n.children)
		n.children = children
		n.offset = s
	case s >= n.offset+len(n.children):
		// overflow
		n.children = append(n.children, make([]*Node[S, V], s-n.offset-len(n.children)+1)...)
	}
	return s - n.offset
}

// lookup walks key from n and stops according to mode. It never
// backtracks: a missing child ends the walk with whatever match was
// already recorded.
func (n *Node[S, V]) lookup(key []S, mode lookupMode, terminator S, tf TransformFn[S]) *Node[S, V] {
	var match *Node[S, V]
	cur := n
	for depth := 0; ; depth++ {
		switch mode {
		case modePrefix:
			if cur.hasEntry {
				return cur
			}
		case modeLongest:
			if cur.hasEntry {
				match = cur
			}
		case modeTerminated:
			// Boundaries are seen shortest first; the deepest one wins.
			if t := cur.findChild(terminator); t != nil && t.hasEntry {
				match = t
			}
		}
		if depth == len(key) {
			break
		}
		next := cur.findChild(tf.apply(key[depth]))
		if next == nil {
			return match
		}
		cur = next
	}
	if mode == modeExact && cur.hasEntry {
		return cur
	}
	return match
}

// insert extends the path for key as needed and stores the entry at its
// end, overwriting any previous value in place. It reports whether the key
// was not present before.
func (n *Node[S, V]) insert(key []S, value V, tf TransformFn[S]) bool {
	cur := n
	for _, sym := range key {
		idx := cur.slotFor(tf.apply(sym))
		child := cur.children[idx]
		if child == nil {
			child = &Node[S, V]{}
			cur.children[idx] = child
		}
		cur = child
	}
	created := !cur.hasEntry
	cur.entry = Entry[S, V]{Key: copyKey(key), Value: value}
	cur.hasEntry = true
	return created
}

// clear drops the entry but keeps the node and its subtree in place.
func (n *Node[S, V]) clear() (V, bool) {
	var zero V
	if !n.hasEntry {
		return zero, false
	}
	old := n.entry.Value
	n.entry = Entry[S, V]{}
	n.hasEntry = false
	return old, true
}

// preorderCollect appends every entry-bearing node below n to dst. Slots
// are ordered by symbol, so the result is in lexicographic key order.
func (n *Node[S, V]) preorderCollect(dst []*Node[S, V]) []*Node[S, V] {
	if n.hasEntry {
		dst = append(dst, n)
	}
	for _, ch := range n.children {
		if ch != nil {
			dst = ch.preorderCollect(dst)
		}
	}
	return dst
}

// Stats describes the shape of a trie.
type Stats struct {
	Nodes      int
	Entries    int
	Slots      int
	EmptySlots int
	MaxDepth   int
}

func (n *Node[S, V]) collectStats(st *Stats, depth int) {
	st.Nodes++
	if n.hasEntry {
		st.Entries++
	}
	if depth > st.MaxDepth {
		st.MaxDepth = depth
	}
	st.Slots += len(n.children)
	for _, ch := range n.children {
		if ch == nil {
			st.EmptySlots++
			continue
		}
		ch.collectStats(st, depth+1)
	}
}
