package texconv

import (
	"bytes"
	"encoding/binary"
	"hash/fnv"
	"sync"
)

// DefaultCacheSize is the number of encoded images a Cache keeps.
const DefaultCacheSize = 32

// cacheKey identifies an RGBA image by size and content hash.
type cacheKey struct {
	width, height int
	sum           uint64
}

func keyOf(rgba []byte, width, height int) cacheKey {
	h := fnv.New64a()
	var dims [16]byte
	// #nosec G115 -- sizes are non-negative
	binary.LittleEndian.PutUint64(dims[:8], uint64(width))
	// #nosec G115 -- sizes are non-negative
	binary.LittleEndian.PutUint64(dims[8:], uint64(height))
	_, _ = h.Write(dims[:]) // fnv.Write never returns an error
	_, _ = h.Write(rgba[:width*height*4])
	return cacheKey{width: width, height: height, sum: h.Sum64()}
}

// Cache remembers recent RGB5A3 encodings so that uploading the same pixels
// again reuses the tiled image. A hit requires the stored source pixels to
// match byte for byte. Returned images are shared and must not be
// modified.
//
// Cache is safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	entries  map[cacheKey]*lruNode
	lru      lruList
	capacity int

	hits, misses uint64
}

// NewCache returns a cache holding up to capacity images. A capacity below
// one selects DefaultCacheSize.
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		capacity = DefaultCacheSize
	}
	return &Cache{
		entries:  make(map[cacheKey]*lruNode),
		capacity: capacity,
	}
}

// Encode returns the RGB5A3 encoding of rgba, from the cache when the same
// image was encoded recently.
func (c *Cache) Encode(rgba []byte, width, height int) ([]byte, error) {
	if len(rgba) < width*height*4 {
		return nil, ErrShortBuffer
	}
	key := keyOf(rgba, width, height)
	src := rgba[:width*height*4]

	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if ok && bytes.Equal(n.rgba, src) {
		c.lru.moveToFront(n)
		c.hits++
		return n.tiled, nil
	}
	c.misses++
	if ok {
		// Hash collision: the newer image takes the slot.
		c.lru.unlink(n)
		delete(c.entries, key)
	}

	tiled, err := EncodeRGB5A3(rgba, width, height)
	if err != nil {
		return nil, err
	}
	for c.lru.len >= c.capacity {
		delete(c.entries, c.lru.removeOldest().key)
	}
	c.entries[key] = c.lru.pushFront(key, bytes.Clone(src), tiled)
	return tiled, nil
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the number of cache hits and misses so far.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// lruNode is a node in a doubly-linked LRU list.
type lruNode struct {
	key        cacheKey
	rgba       []byte
	tiled      []byte
	prev, next *lruNode
}

// lruList keeps the most recently used node at the head. Callers
// synchronize.
type lruList struct {
	head, tail *lruNode
	len        int
}

func (l *lruList) pushFront(key cacheKey, rgba, tiled []byte) *lruNode {
	n := &lruNode{key: key, rgba: rgba, tiled: tiled, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.len++
	return n
}

func (l *lruList) moveToFront(n *lruNode) {
	if n == l.head {
		return
	}
	l.unlink(n)
	n.next = l.head
	l.head.prev = n
	l.head = n
	l.len++
}

// removeOldest unlinks the tail. The list must not be empty.
func (l *lruList) removeOldest() *lruNode {
	n := l.tail
	l.unlink(n)
	return n
}

func (l *lruList) unlink(n *lruNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}
