// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDigit is matched by every DigitError.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrMisalignedLength is matched by every LengthError.
	ErrMisalignedLength = errors.New("binary length is not a multiple of 4")
)

// DigitError reports a character that is not a digit of the expected radix.
// Pos is the byte offset within the payload.
type DigitError struct {
	Pos   int
	Char  byte
	Radix int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("invalid base-%d digit %q at offset %d", e.Radix, e.Char, e.Pos)
}

// Is lets errors.Is(err, ErrInvalidDigit) match.
func (e *DigitError) Is(target error) bool {
	return target == ErrInvalidDigit
}

// LengthError reports a binary payload that cannot be split into whole
// nibbles.
type LengthError struct {
	Len int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("binary length %d is not a multiple of 4", e.Len)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrMisalignedLength
}
