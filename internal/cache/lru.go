// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"

	"github.com/apex/log"
	"github.com/golang/groupcache/lru"
)

// ErrInvalidCapacity is returned by New for a capacity below one.
var ErrInvalidCapacity = errors.New("cache size must be greater than zero")

// Stats are the counters accumulated by an LRU since it was created.
type Stats struct {
	Capacity  int    `json:"capacity" yaml:"capacity"`
	Entries   int    `json:"entries" yaml:"entries"`
	Hits      uint64 `json:"hits" yaml:"hits"`
	Misses    uint64 `json:"misses" yaml:"misses"`
	Evictions uint64 `json:"evictions" yaml:"evictions"`
}

// LRU maps strings to strings and evicts the least recently used entry once
// Capacity entries are held. It is not safe for concurrent use.
type LRU struct {
	// OnEvict, if set, is called with the key of every evicted entry.
	OnEvict func(key string)

	lru   *lru.Cache
	stats Stats
}

// New returns an empty LRU holding at most capacity entries.
func New(capacity int) (*LRU, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	c := &LRU{
		lru:   lru.New(capacity),
		stats: Stats{Capacity: capacity},
	}
	c.lru.OnEvicted = c.evicted

	return c, nil
}

// Get returns the value stored for key and marks it most recently used.
func (c *LRU) Get(key string) (string, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		c.stats.Misses++
		return "", false
	}
	c.stats.Hits++
	return v.(string), true
}

// Add stores value under key as the most recently used entry, evicting the
// least recently used entry if the cache is full.
func (c *LRU) Add(key, value string) {
	c.lru.Add(key, value)
}

// Len returns the number of entries currently held.
func (c *LRU) Len() int {
	return c.lru.Len()
}

// Stats returns a snapshot of the counters.
func (c *LRU) Stats() Stats {
	s := c.stats
	s.Entries = c.lru.Len()
	return s
}

func (c *LRU) evicted(key lru.Key, _ interface{}) {
	c.stats.Evictions++
	k, _ := key.(string)
	log.Debugf("evicted %q", k)
	if c.OnEvict != nil {
		c.OnEvict(k)
	}
}
