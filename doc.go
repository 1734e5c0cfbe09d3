// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// matx is the main package for the matx command line tool. It recodes
// "dimensions:payload" matrix files between binary and hexadecimal payloads,
// memoizing repeated rows, and delegates the work to internal packages.
package main
