// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package compact

import "github.com/go-logr/logr"

type options struct {
	logger          logr.Logger
	lookupCacheSize int
}

// Option configures a Trie.
type Option func(*options)

// WithLogger sets the logger used for cache maintenance messages.
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithLookupCache memoizes up to size lookup results. The memo is dropped on
// every mutation, so it only pays off for read-mostly tries. A size of zero
// or less disables it.
func WithLookupCache(size int) Option {
	return func(o *options) {
		o.lookupCacheSize = size
	}
}

func defaultOptions() options {
	return options{
		logger: logr.Discard(),
	}
}
