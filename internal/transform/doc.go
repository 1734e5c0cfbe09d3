// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package transform converts single "dimensions:payload" lines, memoizing the
// formatted result of every line it has seen in a bounded LRU cache.
package transform
