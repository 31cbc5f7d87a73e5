// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package compact

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
)

// ErrTransformNotEmpty is returned when a symbol transform is installed on
// a trie that already holds nodes.
var ErrTransformNotEmpty = errors.New("compact: transform must be set before the first insert")

// Trie maps keys made of symbols to values. It is not safe for concurrent
// use; callers must serialize access to a single Trie, reads included,
// since reads may rebuild the contents cache.
type Trie[S Symbol, V any] struct {
	root *Node[S, V]
	size int

	// contents is the lexicographic list of entry-bearing nodes. It is
	// only meaningful while contentsValid is set.
	contents      []*Node[S, V]
	contentsValid bool

	transform TransformFn[S]
	cache     *lookupCache[S, V]
	logger    logr.Logger
}

// WalkFn is used when walking the tree. Takes a
// key and value, returning if iteration should
// be terminated.
type WalkFn[S Symbol, V any] func(k []S, v V) bool

// New returns an empty trie.
func New[S Symbol, V any](opts ...Option) *Trie[S, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := &Trie[S, V]{
		root:   &Node[S, V]{},
		logger: o.logger,
	}
	if o.lookupCacheSize > 0 {
		cache, err := newLookupCache[S, V](o.lookupCacheSize)
		if err != nil {
			// only reachable with a non-positive size
			panic(err)
		}
		t.cache = cache
	}
	return t
}

// SetTransform installs fn as the symbol transform applied to every key
// symbol and terminator, on insert and lookup alike.
func (t *Trie[S, V]) SetTransform(fn TransformFn[S]) error {
	if t.root.hasEntry || len(t.root.children) > 0 {
		return ErrTransformNotEmpty
	}
	t.transform = fn
	return nil
}

// Insert stores value under key, replacing any previous value. It always
// succeeds.
func (t *Trie[S, V]) Insert(key []S, value V) bool {
	t.invalidate()
	if t.root.insert(key, value, t.transform) {
		t.size++
	}
	return true
}

// Erase drops the value stored under key. The path to it stays in place;
// only the entry goes away.
func (t *Trie[S, V]) Erase(key []S) (V, bool) {
	n := t.root.lookup(key, modeExact, 0, t.transform)
	if n == nil {
		var zero V
		return zero, false
	}
	t.invalidate()
	old, ok := n.clear()
	if ok {
		t.size--
	}
	return old, ok
}

// Clear drops every entry and node. Handles taken before the call keep
// pointing at the detached nodes. The transform stays installed.
func (t *Trie[S, V]) Clear() {
	t.invalidate()
	t.root = &Node[S, V]{}
	t.size = 0
}

func (t *Trie[S, V]) invalidate() {
	t.contents = nil
	t.contentsValid = false
	if t.cache != nil {
		if n := t.cache.purge(); n > 0 {
			t.logger.V(1).Info("purged lookup cache", "results", n)
		}
	}
}

func (t *Trie[S, V]) lookup(key []S, mode lookupMode, terminator S) *Node[S, V] {
	if t.cache != nil {
		return t.cache.lookup(t.root, key, mode, terminator, t.transform)
	}
	return t.root.lookup(key, mode, t.transform.apply(terminator), t.transform)
}

// Contains reports whether key is stored, or with prefix set, whether any
// stored key is a prefix of key.
func (t *Trie[S, V]) Contains(key []S, prefix bool) bool {
	mode := modeExact
	if prefix {
		mode = modePrefix
	}
	return t.lookup(key, mode, 0) != nil
}

// Get is used to look up a specific key, returning
// the value and if it was found
func (t *Trie[S, V]) Get(key []S) (V, bool) {
	if n := t.lookup(key, modeExact, 0); n != nil {
		return n.entry.Value, true
	}
	var zero V
	return zero, false
}

// Find returns the entry stored under key, or End().
func (t *Trie[S, V]) Find(key []S) Handle[S, V] {
	return handleFor(t.lookup(key, modeExact, 0))
}

// FindPrefix returns the entry of the shortest stored key that is a prefix
// of key, or End().
func (t *Trie[S, V]) FindPrefix(key []S) Handle[S, V] {
	return handleFor(t.lookup(key, modePrefix, 0))
}

// FindPrefixTerminated returns the entry of the deepest stored key p+terminator
// where p is a prefix of key, or End(). With "foo%" and "foo%bar%" stored,
// "foo%bar%baz" finds "foo%bar%" while "foo" and "foobar" both find "foo%".
func (t *Trie[S, V]) FindPrefixTerminated(key []S, terminator S) Handle[S, V] {
	return handleFor(t.lookup(key, modeTerminated, terminator))
}

// LongestPrefix returns the entry of the longest stored key that is a
// prefix of key, or End().
func (t *Trie[S, V]) LongestPrefix(key []S) Handle[S, V] {
	return handleFor(t.lookup(key, modeLongest, 0))
}

// End returns the handle every failed lookup returns.
func (t *Trie[S, V]) End() Handle[S, V] {
	return End[S, V]()
}

// IsEmpty reports whether no entry is stored. Erased keys leave their
// nodes behind, so this counts entries rather than inspecting the root.
func (t *Trie[S, V]) IsEmpty() bool {
	return t.size == 0
}

// Len is used to return the number of elements in the tree
func (t *Trie[S, V]) Len() int {
	return t.size
}

// Contents returns every entry in lexicographic key order. The view is
// cached until the next mutation and must not be used across one.
func (t *Trie[S, V]) Contents() Contents[S, V] {
	if !t.contentsValid {
		if t.size > 0 {
			t.contents = t.root.preorderCollect(make([]*Node[S, V], 0, t.size))
			t.logger.V(1).Info("rebuilt contents", "entries", len(t.contents))
		}
		t.contentsValid = true
	}
	return Contents[S, V]{nodes: t.contents, transform: t.transform}
}

// Minimum returns the entry with the smallest key, or End().
func (t *Trie[S, V]) Minimum() Handle[S, V] {
	c := t.Contents()
	if c.Len() == 0 {
		return t.End()
	}
	return c.At(0)
}

// Maximum returns the entry with the largest key, or End().
func (t *Trie[S, V]) Maximum() Handle[S, V] {
	c := t.Contents()
	if c.Len() == 0 {
		return t.End()
	}
	return c.At(c.Len() - 1)
}

// Walk is used to walk the tree
func (t *Trie[S, V]) Walk(fn WalkFn[S, V]) {
	recursiveWalk(t.root, fn)
}

// recursiveWalk is used to do a pre-order walk of a node
// recursively. Returns true if the walk should be aborted
func recursiveWalk[S Symbol, V any](n *Node[S, V], fn WalkFn[S, V]) bool {
	if n.hasEntry && fn(n.entry.Key, n.entry.Value) {
		return true
	}
	for _, ch := range n.children {
		if ch != nil && recursiveWalk(ch, fn) {
			return true
		}
	}
	return false
}

// Iterator returns a live pre-order iterator over the whole trie.
func (t *Trie[S, V]) Iterator() *Iterator[S, V] {
	return &Iterator[S, V]{
		root:      t.root,
		stack:     []*Node[S, V]{t.root},
		transform: t.transform,
	}
}

// PathIterator returns an iterator over every stored prefix of path,
// shortest first.
func (t *Trie[S, V]) PathIterator(path []S) *PathIterator[S, V] {
	return &PathIterator[S, V]{
		path:      path,
		node:      t.root,
		transform: t.transform,
	}
}

// Stats walks the whole trie and reports its shape.
func (t *Trie[S, V]) Stats() Stats {
	var st Stats
	t.root.collectStats(&st, 0)
	return st
}

// Dump writes one line per node, indented by depth.
func (t *Trie[S, V]) Dump(w io.Writer) error {
	return dumpNode(w, t.root, "", 0)
}

func dumpNode[S Symbol, V any](w io.Writer, n *Node[S, V], label string, depth int) error {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	if depth == 0 {
		sb.WriteString("root")
	} else {
		sb.WriteString(label)
	}
	fmt.Fprintf(&sb, " offset=%d slots=%d", n.offset, len(n.children))
	if n.hasEntry {
		fmt.Fprintf(&sb, " key=%v value=%v", n.entry.Key, n.entry.Value)
	}
	sb.WriteByte('\n')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	for i, ch := range n.children {
		if ch == nil {
			continue
		}
		if err := dumpNode(w, ch, fmt.Sprint(n.offset+i), depth+1); err != nil {
			return err
		}
	}
	return nil
}
