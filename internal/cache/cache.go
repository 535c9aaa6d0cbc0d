// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

// Package cache provides a thread-safe in-memory TTL cache.
//
// Seasonal rankings are expensive to compute (a full aggregate scan per
// cell) and change only when a classification run or an import lands, so
// the API caches computed cells for a few minutes. Expired entries are
// swept by a background goroutine every five minutes.
package cache

import (
	"fmt"
	"sync"
	"time"
)

// Entry is a cached item with its expiration time.
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Stats tracks cache performance counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// Cache is a thread-safe in-memory cache with per-entry TTL.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration

	statsMu sync.Mutex
	stats   Stats
}

// New creates a cache with the given default TTL and starts the background
// cleanup goroutine, which runs for the lifetime of the cache.
func New(ttl time.Duration) *Cache {
	c := &Cache{
		entries: make(map[string]Entry),
		ttl:     ttl,
		stats:   Stats{LastCleanup: time.Now()},
	}
	go c.cleanupLoop()
	return c
}

// Get retrieves a value by key. An expired entry counts as a miss and is
// removed on access.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.bump(func(s *Stats) { s.Misses++ })
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		c.bump(func(s *Stats) { s.Misses++; s.Evictions++ })
		return nil, false
	}

	c.bump(func(s *Stats) { s.Hits++ })
	return entry.Data, true
}

// Set stores a value with the default TTL, overwriting any existing entry.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = Entry{
		Data:      value,
		ExpiresAt: time.Now().Add(ttl),
	}
	total := int64(len(c.entries))
	c.mu.Unlock()

	c.bump(func(s *Stats) { s.TotalKeys = total })
}

// Delete removes one entry. Safe to call for keys that do not exist.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	c.bump(func(s *Stats) { s.Evictions++ })
}

// Clear removes every entry. Called after an import or classification run
// so clients see fresh rankings immediately.
func (c *Cache) Clear() {
	c.mu.Lock()
	evicted := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.mu.Unlock()

	c.bump(func(s *Stats) {
		s.Evictions += evicted
		s.TotalKeys = 0
	})
}

// GetStats returns a snapshot of the counters.
func (c *Cache) GetStats() Stats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.stats
}

// HitRate returns the hit rate as a percentage.
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0
	}
	return float64(stats.Hits) / float64(total) * 100
}

// Key builds a cache key from namespace parts, e.g.
// Key("rankings", "Summer", "beverage").
func Key(parts ...interface{}) string {
	key := ""
	for i, part := range parts {
		if i > 0 {
			key += ":"
		}
		key += fmt.Sprint(part)
	}
	return key
}

func (c *Cache) bump(update func(*Stats)) {
	c.statsMu.Lock()
	update(&c.stats)
	c.statsMu.Unlock()
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *Cache) cleanup() {
	now := time.Now()

	c.mu.Lock()
	evicted := int64(0)
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	total := int64(len(c.entries))
	c.mu.Unlock()

	c.bump(func(s *Stats) {
		s.Evictions += evicted
		s.TotalKeys = total
		s.LastCleanup = now
	})
}
