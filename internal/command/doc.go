// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the matx CLI. It wires flags, config file sources,
// validators and the conversion action.
package command
