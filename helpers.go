// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package compact

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// Symbol is the element type of a key. Bytes and runes are the usual
// choices.
type Symbol interface {
	constraints.Integer
}

// TransformFn remaps a symbol before it is used as a slot index, e.g. for
// case folding.
type TransformFn[S Symbol] func(S) S

func (fn TransformFn[S]) apply(s S) S {
	if fn == nil {
		return s
	}
	return fn(s)
}

// FoldASCII lowercases ASCII letters.
func FoldASCII[S Symbol](s S) S {
	if s >= 'A' && s <= 'Z' {
		return s + ('a' - 'A')
	}
	return s
}

// copyKey detaches the stored key from the caller's slice.
func copyKey[S Symbol](key []S) []S {
	k := make([]S, len(key))
	copy(k, key)
	return k
}

// compareKeys orders keys the way the trie lays them out: by transformed
// symbol value, with a proper prefix first.
func compareKeys[S Symbol](a, b []S, tf TransformFn[S]) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		x, y := tf.apply(a[i]), tf.apply(b[i])
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// cacheKey encodes a lookup request as a map key. Symbols are written as
// zig-zag varints so signed and unsigned symbol types encode unambiguously.
func cacheKey[S Symbol](mode lookupMode, terminator S, key []S) string {
	buf := make([]byte, 0, 2+binary.MaxVarintLen64+len(key))
	buf = append(buf, byte(mode))
	buf = binary.AppendVarint(buf, int64(terminator))
	for _, s := range key {
		buf = binary.AppendVarint(buf, int64(s))
	}
	return string(buf)
}
