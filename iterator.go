// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package compact

// Iterator walks the live trie in lexicographic order. Mutating the trie
// while an iterator is in use is allowed but the iterator may or may not
// see the change.
type Iterator[S Symbol, V any] struct {
	root      *Node[S, V]
	stack     []*Node[S, V]
	transform TransformFn[S]
}

// SeekPrefix is used to seek the iterator to a given prefix. Only keys
// starting with prefix are returned afterwards.
func (i *Iterator[S, V]) SeekPrefix(prefix []S) {
	n := i.root
	for _, sym := range prefix {
		n = n.findChild(i.transform.apply(sym))
		if n == nil {
			i.stack = nil
			return
		}
	}
	i.stack = []*Node[S, V]{n}
}

func (i *Iterator[S, V]) Next() ([]S, V, bool) {
	var zero V

	// Iterate through the stack until it's empty
	for len(i.stack) > 0 {
		n := i.stack[len(i.stack)-1]
		i.stack = i.stack[:len(i.stack)-1]

		// Push children in reverse so the smallest symbol is popped first.
		for itr := len(n.children) - 1; itr >= 0; itr-- {
			if ch := n.children[itr]; ch != nil {
				i.stack = append(i.stack, ch)
			}
		}
		if n.hasEntry {
			return n.entry.Key, n.entry.Value, true
		}
	}
	return nil, zero, false
}
