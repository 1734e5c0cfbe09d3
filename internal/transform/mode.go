// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package transform

import (
	"fmt"

	"github.com/staranto/matx/internal/codec"
)

// Mode is the conversion direction.
type Mode int

const (
	// Compress converts binary payloads to hexadecimal.
	Compress Mode = iota
	// Decompress converts hexadecimal payloads to binary.
	Decompress
)

func (m Mode) String() string {
	switch m {
	case Compress:
		return "compress"
	case Decompress:
		return "decompress"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Codec converts a payload digit string.
type Codec func(payload string) (string, error)

// Codec returns the payload conversion for m.
func (m Mode) Codec() Codec {
	if m == Decompress {
		return codec.HexToBinary
	}
	return codec.BinaryToHex
}

// MarshalText lets Mode appear by name in JSON and YAML reports.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
