// Package dedup suppresses repeated presentation of the same logical event when it
// arrives over more than one transport.
package dedup

import (
	"sync"
	"time"

	"github.com/facebookgo/clock"
)

const DefaultTTL = 5 * time.Minute

// Cache is a fixed-window set of recently seen keys. A key is a duplicate while its
// entry is alive; seeing it again does not extend the window.
type Cache struct {
	clock clock.Clock
	ttl   time.Duration

	mu      sync.Mutex
	entries map[string]time.Time
}

func New(clk clock.Clock, ttl time.Duration) *Cache {
	if clk == nil {
		clk = clock.New()
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache{
		clock:   clk,
		ttl:     ttl,
		entries: make(map[string]time.Time),
	}
}

// IsDuplicate reports whether key was already seen inside its window. The first call
// for a key records it and returns false. Empty keys are never recorded.
func (c *Cache) IsDuplicate(key string) bool {
	if key == "" {
		return false
	}

	now := c.clock.Now()

	c.mu.Lock()
	if expiresAt, ok := c.entries[key]; ok && now.Before(expiresAt) {
		c.mu.Unlock()
		return true
	}

	expiresAt := now.Add(c.ttl)
	c.entries[key] = expiresAt
	c.mu.Unlock()

	c.clock.AfterFunc(c.ttl, func() {
		c.evict(key, expiresAt)
	})

	return false
}

// evict only drops the entry the timer was armed for, a newer window for the same
// key keeps its own timer.
func (c *Cache) evict(key string, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if current, ok := c.entries[key]; ok && current.Equal(expiresAt) {
		delete(c.entries, key)
	}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// KeyFor prefers the semantic orderId:status key so the same status change is
// recognised whichever transport carried it, and falls back to the transport id.
func KeyFor(orderID, status, messageID string) string {
	if orderID != "" && status != "" {
		return orderID + ":" + status
	}

	return messageID
}
