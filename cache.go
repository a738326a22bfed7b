package acdat

import "sync"

// Cache memoizes point vectors of words. It is owned by the caller and may be
// shared between Hyphenators using the same automaton.
//
// Concurrent lookups of a missing word may compute its points more than once;
// the last result is kept.
type Cache struct {
	mx     sync.RWMutex
	points map[string][]uint8
	limit  int
}

// NewCache creates a cache holding at most limit words. A limit <= 0 means no
// limit. A full cache stops accepting new words.
func NewCache(limit int) *Cache {
	return &Cache{points: make(map[string][]uint8), limit: limit}
}

// Get returns the cached points of word.
func (c *Cache) Get(word string) ([]uint8, bool) {
	c.mx.RLock()
	defer c.mx.RUnlock()
	p, ok := c.points[word]
	return p, ok
}

// Put stores the points of word. Callers must not modify points afterwards.
func (c *Cache) Put(word string, points []uint8) {
	c.mx.Lock()
	defer c.mx.Unlock()
	if _, ok := c.points[word]; !ok && c.limit > 0 && len(c.points) >= c.limit {
		return
	}
	c.points[word] = points
}

// Len returns the number of cached words.
func (c *Cache) Len() int {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return len(c.points)
}
