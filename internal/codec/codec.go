// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// nibbles holds the zero-padded 4-bit expansion of every hex value.
var nibbles [16]string

func init() {
	for i := range nibbles {
		nibbles[i] = fmt.Sprintf("%04b", i)
	}
}

// BinaryToHex converts a string of '0'/'1' characters into uppercase
// hexadecimal, one hex digit per 4 bits, left to right. The final group is
// never padded, so the length must be a multiple of 4.
func BinaryToHex(bits string) (string, error) {
	if len(bits)%4 != 0 {
		return "", &LengthError{Len: len(bits)}
	}

	var b strings.Builder
	b.Grow(len(bits) / 4)

	for i := 0; i < len(bits); i += 4 {
		var v byte
		for j := i; j < i+4; j++ {
			switch bits[j] {
			case '0':
				v <<= 1
			case '1':
				v = v<<1 | 1
			default:
				return "", &DigitError{Pos: j, Char: bits[j], Radix: 2}
			}
		}
		b.WriteByte(hexDigits[v])
	}

	return b.String(), nil
}

// HexToBinary expands each hexadecimal digit (either case) into its 4-bit
// binary form.
func HexToBinary(hex string) (string, error) {
	var b strings.Builder
	b.Grow(len(hex) * 4)

	for i := 0; i < len(hex); i++ {
		v, ok := hexValue(hex[i])
		if !ok {
			return "", &DigitError{Pos: i, Char: hex[i], Radix: 16}
		}
		b.WriteString(nibbles[v])
	}

	return b.String(), nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
