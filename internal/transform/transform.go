// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/matx/internal/cache"
)

// Separator divides the dimensions token from the payload.
const Separator = ":"

// ErrMissingSeparator is returned for a line without a ':'.
var ErrMissingSeparator = errors.New("missing ':' separator between dimensions and payload")

// Stats combines the cache counters with the number of codec invocations.
type Stats struct {
	cache.Stats `yaml:",inline"`
	Conversions uint64 `json:"conversions" yaml:"conversions"`
}

// Option customizes a Transformer.
type Option func(*Transformer)

// WithCodec replaces the payload codec chosen by the mode.
func WithCodec(c Codec) Option {
	return func(t *Transformer) {
		t.codec = c
	}
}

// WithEvictHook registers fn to be called with each line evicted from the
// cache.
func WithEvictHook(fn func(line string)) Option {
	return func(t *Transformer) {
		t.cache.OnEvict = fn
	}
}

// Transformer converts lines in one direction. A Transformer must be used by a
// single goroutine; recency ordering follows call order.
type Transformer struct {
	mode        Mode
	codec       Codec
	cache       *cache.LRU
	conversions uint64
}

// New returns a Transformer for mode whose cache holds capacity lines.
func New(mode Mode, capacity int, opts ...Option) (*Transformer, error) {
	c, err := cache.New(capacity)
	if err != nil {
		return nil, err
	}

	t := &Transformer{
		mode:  mode,
		codec: mode.Codec(),
		cache: c,
	}
	for _, opt := range opts {
		opt(t)
	}

	log.Debugf("transformer: mode=%s capacity=%d", mode, capacity)
	return t, nil
}

// Mode returns the conversion direction.
func (t *Transformer) Mode() Mode {
	return t.mode
}

// Transform returns the converted form of line. Identical lines are served
// from the cache. A line that fails to convert leaves the cache untouched.
func (t *Transformer) Transform(line string) (string, error) {
	if out, ok := t.cache.Get(line); ok {
		return out, nil
	}

	dims, payload, ok := strings.Cut(line, Separator)
	if !ok {
		return "", ErrMissingSeparator
	}

	t.conversions++
	converted, err := t.codec(payload)
	if err != nil {
		return "", fmt.Errorf("%s payload: %w", t.mode, err)
	}

	out := dims + Separator + converted
	t.cache.Add(line, out)

	return out, nil
}

// Stats returns the cache and codec counters.
func (t *Transformer) Stats() Stats {
	return Stats{
		Stats:       t.cache.Stats(),
		Conversions: t.conversions,
	}
}
