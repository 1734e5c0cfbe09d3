// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders the summary of a conversion run as a text table,
// JSON or YAML.
package output
