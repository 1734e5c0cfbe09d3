// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package codec regroups digit strings between base 2 and base 16. Every four
// binary digits map to exactly one hexadecimal digit, so the conversion is
// lossless in both directions. Functions are pure and safe for concurrent use.
package codec
