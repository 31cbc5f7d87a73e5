// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package compact

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNode_InsertReportsNewKeys(t *testing.T) {
	n := &Node[byte, int]{}
	require.True(t, n.insert([]byte("foo"), 1, nil))
	require.True(t, n.insert([]byte("bar"), 2, nil))
	require.True(t, n.insert([]byte("gazonk"), 3, nil))
	require.False(t, n.insert([]byte("foo"), 4, nil))

	found := n.lookup([]byte("foo"), modeExact, 0, nil)
	require.NotNil(t, found)
	require.Equal(t, 4, found.entry.Value)
}

func TestNode_FindChild(t *testing.T) {
	n := &Node[byte, int]{}
	require.Nil(t, n.findChild('a'))

	n.insert([]byte("m"), 1, nil)
	n.insert([]byte("p"), 2, nil)
	require.Equal(t, int('m'), n.offset)
	require.Len(t, n.children, 4)

	require.NotNil(t, n.findChild('m'))
	require.NotNil(t, n.findChild('p'))
	// in range but empty
	require.Nil(t, n.findChild('n'))
	// out of range on either side
	require.Nil(t, n.findChild('l'))
	require.Nil(t, n.findChild('q'))
}

func TestNode_SlotGrowth(t *testing.T) {
	n := &Node[int, int]{}

	require.Equal(t, 0, n.slotFor(100))
	require.Equal(t, 100, n.offset)

	// underflow shifts existing slots right
	n.children[0] = &Node[int, int]{}
	require.Equal(t, 0, n.slotFor(50))
	require.Equal(t, 50, n.offset)
	require.Len(t, n.children, 51)
	require.NotNil(t, n.children[50])

	// overflow appends
	require.Equal(t, 100, n.slotFor(150))
	require.Len(t, n.children, 101)
	require.Equal(t, 50, n.offset)

	// inside the range nothing moves
	require.Equal(t, 25, n.slotFor(75))
	require.Len(t, n.children, 101)
	require.NotNil(t, n.children[50])
}

func TestNode_LookupModes(t *testing.T) {
	n := &Node[byte, string]{}
	for _, k := range []string{"a", "abc", "abc.", "abc.de."} {
		n.insert([]byte(k), k, nil)
	}

	cases := []struct {
		mode lookupMode
		key  string
		want string
	}{
		{modeExact, "abc", "abc"},
		{modeExact, "ab", ""},
		{modeExact, "abcd", ""},
		{modePrefix, "abc.de.f", "a"},
		{modePrefix, "b", ""},
		{modeLongest, "abc.de.f", "abc.de."},
		{modeLongest, "abc.d", "abc."},
		{modeLongest, "ab", "a"},
		{modeTerminated, "abc.de.f", "abc.de."},
		{modeTerminated, "abc.de", "abc.de."},
		{modeTerminated, "abc.d", "abc."},
		{modeTerminated, "abc", "abc."},
		{modeTerminated, "abcx", "abc."},
		{modeTerminated, "ab", ""},
	}
	for _, tc := range cases {
		got := n.lookup([]byte(tc.key), tc.mode, '.', nil)
		if tc.want == "" {
			require.Nil(t, got, "mode %d key %q", tc.mode, tc.key)
			continue
		}
		require.NotNil(t, got, "mode %d key %q", tc.mode, tc.key)
		require.Equal(t, tc.want, got.entry.Value, "mode %d key %q", tc.mode, tc.key)
	}
}

func TestNode_PreorderCollect(t *testing.T) {
	n := &Node[byte, int]{}
	for i, k := range []string{"foo", "foo1", "foo0", "", "bar"} {
		n.insert([]byte(k), i, nil)
	}
	var got []string
	for _, c := range n.preorderCollect(nil) {
		got = append(got, string(c.entry.Key))
	}
	require.Equal(t, []string{"", "bar", "foo", "foo0", "foo1"}, got)
}

func TestNode_Clear(t *testing.T) {
	n := &Node[byte, int]{}
	n.insert([]byte("ab"), 1, nil)
	child := n.lookup([]byte("ab"), modeExact, 0, nil)

	old, ok := child.clear()
	require.True(t, ok)
	require.Equal(t, 1, old)
	require.False(t, child.hasEntry)
	require.Nil(t, child.entry.Key)

	_, ok = child.clear()
	require.False(t, ok)
	require.NotNil(t, n.findChild('a').findChild('b'))
}

func TestEndNodeSingleton(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Node[uint16, string], 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = endNode[uint16, string]()
		}(i)
	}
	wg.Wait()
	for _, n := range got {
		require.Same(t, got[0], n)
	}

	// Different instantiations get different end nodes.
	a := any(endNode[byte, int]())
	b := any(endNode[byte, string]())
	require.NotEqual(t, a, b)
}

func TestHandleForPanicsOnEmptyNode(t *testing.T) {
	require.PanicsWithValue(t, "compact: matched node carries no entry", func() {
		handleFor(&Node[byte, int]{})
	})
}
