// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package compact implements a prefix trie for large sets of short keys
// that share long prefixes, such as reversed domain names or URL path
// segments.
//
// Every node keeps its children in a sparse array covering only the symbol
// range it has seen so far. The array grows to the left or right as new
// symbols arrive and is never shrunk, so a node with children 'a' and 'c'
// pays for three slots, not 256.
//
// Besides exact lookups a [Trie] answers three prefix queries:
//
//   - [Trie.FindPrefix]: the shortest stored key that prefixes the query.
//   - [Trie.LongestPrefix]: the longest stored key that prefixes the query.
//   - [Trie.FindPrefixTerminated]: the deepest stored key p+terminator
//     whose p prefixes the query, e.g. the registered scope "com.example."
//     for the host "com.example.www.".
//
// Failed lookups return [End], a handle shared by every trie with the same
// type parameters, so a miss compares equal no matter which trie produced
// it.
//
// Keys are never physically removed. [Trie.Erase] only drops the value and
// leaves the path in place.
//
// A Trie is not safe for concurrent use.
package compact
