package repository

import (
	"strings"
	"sync"
)

// PlayerCache is a thread-safe in-memory cache for player name -> ID lookups.
// Names are a stable practical key here (players are never deleted), so the
// cache never has to be invalidated, only filled.
type PlayerCache struct {
	mu    sync.RWMutex
	cache map[string]int
}

func NewPlayerCache() *PlayerCache {
	return &PlayerCache{
		cache: make(map[string]int),
	}
}

func (c *PlayerCache) Get(name string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, found := c.cache[name]
	return id, found
}

func (c *PlayerCache) Set(name string, id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[name] = id
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
