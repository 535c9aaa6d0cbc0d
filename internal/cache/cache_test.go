// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package cache

import (
	"testing"
	"time"
)

func TestGetSet(t *testing.T) {
	c := New(time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache returned ok")
	}

	c.Set("rankings:Summer:beverage", 42)
	got, ok := c.Get("rankings:Summer:beverage")
	if !ok {
		t.Fatal("Get after Set returned !ok")
	}
	if got != 42 {
		t.Errorf("Get = %v, want 42", got)
	}
}

func TestExpiration(t *testing.T) {
	c := New(time.Minute)
	c.SetWithTTL("short", "value", 10*time.Millisecond)

	if _, ok := c.Get("short"); !ok {
		t.Fatal("entry expired before its TTL")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("short"); ok {
		t.Error("entry still present after its TTL")
	}

	stats := c.GetStats()
	if stats.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", stats.Evictions)
	}
}

func TestDeleteAndClear(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("deleted entry still present")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("unrelated entry removed by Delete")
	}

	c.Clear()
	if _, ok := c.Get("b"); ok {
		t.Error("entry still present after Clear")
	}
	if stats := c.GetStats(); stats.TotalKeys != 0 {
		t.Errorf("TotalKeys = %d, want 0 after Clear", stats.TotalKeys)
	}
}

func TestStatsAndHitRate(t *testing.T) {
	c := New(time.Minute)
	c.Set("k", "v")

	c.Get("k")
	c.Get("k")
	c.Get("absent")

	stats := c.GetStats()
	if stats.Hits != 2 {
		t.Errorf("Hits = %d, want 2", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}

	want := float64(2) / 3 * 100
	if got := c.HitRate(); got < want-0.01 || got > want+0.01 {
		t.Errorf("HitRate() = %v, want %v", got, want)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		parts []interface{}
		want  string
	}{
		{"strings", []interface{}{"rankings", "Summer", "beverage"}, "rankings:Summer:beverage"},
		{"mixed types", []interface{}{"recipes", int64(101)}, "recipes:101"},
		{"single part", []interface{}{"stats"}, "stats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.parts...); got != tt.want {
				t.Errorf("Key(%v) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestCleanup(t *testing.T) {
	c := New(time.Minute)
	c.SetWithTTL("stale", 1, -time.Second)
	c.Set("fresh", 2)

	c.cleanup()

	c.mu.RLock()
	_, staleExists := c.entries["stale"]
	_, freshExists := c.entries["fresh"]
	c.mu.RUnlock()

	if staleExists {
		t.Error("cleanup left an expired entry")
	}
	if !freshExists {
		t.Error("cleanup removed a live entry")
	}
}
