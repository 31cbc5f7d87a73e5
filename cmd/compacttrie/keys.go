// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type keyValue struct {
	key   string
	value string
}

// reverseDomain turns "www.example.com" into "com.example.www." so that
// domains sharing a parent share a trie path. The trailing delimiter marks
// the label boundary for terminated lookups.
func reverseDomain(host string, delim byte) string {
	host = strings.TrimSuffix(host, ".")
	if host == "" {
		return ""
	}
	labels := strings.Split(host, ".")
	var sb strings.Builder
	sb.Grow(len(host) + 1)
	for i := len(labels) - 1; i >= 0; i-- {
		sb.WriteString(labels[i])
		sb.WriteByte(delim)
	}
	return sb.String()
}

// readKeys parses one key per line, optionally followed by a tab and a
// value. Blank lines and lines starting with '#' are skipped. A key without
// a value maps to its own line number.
func readKeys(r io.Reader, reverse bool, delim byte) ([]keyValue, error) {
	var out []keyValue
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "\t")
		if !ok {
			value = fmt.Sprint(lineNumber)
		}
		key = strings.TrimSpace(key)
		if reverse {
			key = reverseDomain(key, delim)
		}
		out = append(out, keyValue{key: key, value: strings.TrimSpace(value)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keys at line %d: %w", lineNumber, err)
	}
	return out, nil
}
