// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package compact

// PathIterator is used to iterate over the entries stored on the path
// from the root down to a specified key, shortest key first.
type PathIterator[S Symbol, V any] struct {
	path      []S
	depth     int
	node      *Node[S, V]
	transform TransformFn[S]
}

func (i *PathIterator[S, V]) Next() ([]S, V, bool) {
	var zero V

	for i.node != nil {
		cur := i.node
		if i.depth < len(i.path) {
			i.node = cur.findChild(i.transform.apply(i.path[i.depth]))
			i.depth++
		} else {
			i.node = nil
		}
		if cur.hasEntry {
			return cur.entry.Key, cur.entry.Value, true
		}
	}
	return nil, zero, false
}
