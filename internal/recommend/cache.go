package recommend

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/blackwell-systems/librec/internal/catalog"
)

// DefaultCacheCapacity bounds the memo table when callers don't choose.
const DefaultCacheCapacity = 128

// cacheEntry is one node of the doubly-linked recency list.
type cacheEntry struct {
	key   string
	value []string
	prev  *cacheEntry
	next  *cacheEntry
}

// Cache memoizes ForUser behind a bounded least-recently-used table.
// Keys are content hashes of (userID, ratings, books), so two calls with
// value-equal snapshots hit the same entry no matter where the slices were
// built. A hit always equals the fresh computation: inputs are immutable,
// so entries can never go stale; the cache is purely a performance layer.
//
// Uses a doubly-linked list with sentinel head/tail for O(1) recency
// updates and a map for O(1) lookup. Safe for concurrent callers: lookup,
// insert, and eviction happen under one mutex so racing callers cannot
// duplicate an entry.
type Cache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*cacheEntry

	// head.next is most recently used, tail.prev least.
	head *cacheEntry
	tail *cacheEntry

	hits   int64
	misses int64
}

// NewCache creates a cache bounded to capacity entries. Non-positive
// capacities fall back to DefaultCacheCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	c := &Cache{
		capacity: capacity,
		items:    make(map[string]*cacheEntry, capacity),
		head:     &cacheEntry{},
		tail:     &cacheEntry{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// ForUser returns the memoized recommendation list for the given inputs,
// computing and inserting it on a miss. The returned slice is a copy, so
// callers can't corrupt the cached value.
func (c *Cache) ForUser(userID string, ratings []catalog.Rating, books []catalog.Book) []string {
	key := cacheKey(userID, ratings, books)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.moveToFront(e)
		c.hits++
		return append([]string(nil), e.value...)
	}
	c.misses++

	value := ForUser(userID, ratings, books)

	e := &cacheEntry{key: key, value: value}
	c.addToFront(e)
	c.items[key] = e
	for len(c.items) > c.capacity {
		c.evictOldest()
	}

	return append([]string(nil), value...)
}

// Len returns the current number of memoized entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns hit/miss counters and the current size.
func (c *Cache) Stats() (hits, misses int64, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, len(c.items)
}

// Clear empties the cache and resets the counters. Tests and benchmarks
// use this to get a cold start without building a new cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*cacheEntry, c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
	c.hits = 0
	c.misses = 0
}

// cacheKey hashes the call tuple by content. The per-call cost is linear
// in the snapshot size, which is cheap next to scoring, and it makes hits
// reproducible for rebuilt-but-equal snapshots.
func cacheKey(userID string, ratings []catalog.Rating, books []catalog.Book) string {
	h := sha256.New()
	h.Write([]byte(userID))
	h.Write([]byte{0})
	h.Write([]byte(catalog.RatingsFingerprint(ratings)))
	h.Write([]byte{0})
	h.Write([]byte(catalog.BooksFingerprint(books)))
	return hex.EncodeToString(h.Sum(nil))
}

// list plumbing below must be called with the mutex held.

func (c *Cache) addToFront(e *cacheEntry) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *Cache) moveToFront(e *cacheEntry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	c.addToFront(e)
}

func (c *Cache) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	oldest.prev.next = oldest.next
	oldest.next.prev = oldest.prev
	delete(c.items, oldest.key)
}
