package dataset

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"github.com/beetlebugorg/carto/pkg/feature"
)

// Cache holds decoded feature tables with LRU eviction.
//
// Remote datasets are expensive to download and decode, so the fetch client
// keeps them here keyed by name and resolution. When the entry limit is
// exceeded the least-recently-used table is evicted.
//
// Example:
//
//	cache := dataset.NewCache(8)
//	table, err := cache.Get("countries/110m", func() (*feature.Table, error) {
//	    return dataset.ReadVector("countries.geojson")
//	})
type Cache struct {
	maxEntries int
	tables     map[string]*cacheEntry
	lru        *list.List // most recent at front
	mu         sync.RWMutex
}

// cacheEntry tracks a cached table and its access metadata
type cacheEntry struct {
	key          string
	table        *feature.Table
	element      *list.Element
	lastAccessed time.Time
	accessCount  int
}

// NewCache creates a cache holding at most maxEntries tables. Zero means
// unlimited.
func NewCache(maxEntries int) *Cache {
	return &Cache{
		maxEntries: maxEntries,
		tables:     make(map[string]*cacheEntry),
		lru:        list.New(),
	}
}

// Get retrieves a table from cache or loads it with the provided loader.
//
// On a hit the entry moves to the front of the LRU list. On a miss the
// loader runs and its result is cached for future access.
func (c *Cache) Get(key string, loader func() (*feature.Table, error)) (*feature.Table, error) {
	// Fast path: check cache with read lock
	c.mu.RLock()
	if entry, ok := c.tables[key]; ok {
		c.mu.RUnlock()

		c.mu.Lock()
		entry.lastAccessed = time.Now()
		entry.accessCount++
		c.lru.MoveToFront(entry.element)
		c.mu.Unlock()

		return entry.table, nil
	}
	c.mu.RUnlock()

	table, err := loader()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	c.Add(key, table)
	return table, nil
}

// Add inserts a table, evicting least-recently-used entries over the limit.
func (c *Cache) Add(key string, table *feature.Table) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.tables[key]; ok {
		entry.table = table
		entry.lastAccessed = time.Now()
		entry.accessCount++
		c.lru.MoveToFront(entry.element)
		return
	}

	entry := &cacheEntry{
		key:          key,
		table:        table,
		lastAccessed: time.Now(),
		accessCount:  1,
	}
	entry.element = c.lru.PushFront(entry)
	c.tables[key] = entry

	if c.maxEntries > 0 {
		for c.lru.Len() > c.maxEntries {
			c.evictLRU()
		}
	}
}

// evictLRU removes the least-recently-used entry. Caller must hold the lock.
func (c *Cache) evictLRU() {
	back := c.lru.Back()
	if back == nil {
		return
	}
	entry := back.Value.(*cacheEntry)
	c.lru.Remove(back)
	delete(c.tables, entry.key)
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lru.Len()
}

// Contains reports whether a key is cached, without touching LRU order.
func (c *Cache) Contains(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.tables[key]
	return ok
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables = make(map[string]*cacheEntry)
	c.lru.Init()
}
