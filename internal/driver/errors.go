// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"fmt"
	"strings"
)

// LineError ties a conversion failure to its 1-based input line.
type LineError struct {
	Line  int    `json:"line" yaml:"line"`
	Input string `json:"input" yaml:"input"`
	Err   error  `json:"-" yaml:"-"`
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// BatchError is returned in keep-going mode when at least one line failed.
type BatchError struct {
	Lines    int
	Failures []*LineError
}

func (e *BatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d lines failed", len(e.Failures), e.Lines)
	for _, f := range e.Failures {
		b.WriteString("\n  ")
		b.WriteString(f.Error())
	}
	return b.String()
}

// Unwrap exposes each line failure to errors.Is and errors.As.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}
