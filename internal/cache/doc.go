// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache provides a fixed-capacity, least-recently-used string memo
// that lives for a single conversion run.
package cache
