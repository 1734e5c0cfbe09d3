// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package driver picks the conversion direction from a file name and streams
// lines from an input file through a memoizing transformer into the output
// file, preserving line order.
package driver
