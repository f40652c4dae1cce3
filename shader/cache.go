package shader

import (
	"hash/fnv"
	"sync"
)

// ModuleCache caches compiled SPIR-V keyed by a hash of the WGSL source,
// so sources shared between pipelines compile once. Eviction is LRU with
// a soft limit: when the cache grows past the limit, the oldest quarter
// of entries is dropped.
//
// ModuleCache is safe for concurrent use.
// ModuleCache must not be copied after creation (has mutex).
type ModuleCache struct {
	mu        sync.Mutex
	entries   map[uint64]*moduleEntry
	softLimit int
	tick      int64 // Monotonic access counter

	hits   uint64
	misses uint64
}

// moduleEntry holds compiled SPIR-V with its access time.
type moduleEntry struct {
	spirv []uint32
	atime int64
}

// NewModuleCache creates a module cache with the given soft limit.
// A softLimit of 0 means unlimited.
func NewModuleCache(softLimit int) *ModuleCache {
	return &ModuleCache{
		entries:   make(map[uint64]*moduleEntry),
		softLimit: softLimit,
	}
}

// sourceKey hashes WGSL text with FNV-1a.
func sourceKey(wgslText string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(wgslText)) // fnv.Write never returns an error
	return h.Sum64()
}

// Compile ensures the source has compiled SPIR-V, serving the words from
// cache when an identical WGSL text was compiled before. Precompiled
// sources pass through untouched.
func (c *ModuleCache) Compile(src *Source) error {
	if src.spirv != nil {
		return nil
	}
	key := sourceKey(src.WGSL)

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok {
		c.tick++
		entry.atime = c.tick
		c.hits++
		src.spirv = entry.spirv
		c.mu.Unlock()
		return nil
	}
	c.misses++
	c.mu.Unlock()

	// Compile outside the lock. Concurrent callers with the same source
	// may compile twice; the result is identical either way.
	if err := src.Compile(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.tick++
	c.entries[key] = &moduleEntry{spirv: src.spirv, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return nil
}

// Put seeds the cache with compiled SPIR-V for a WGSL text, for binaries
// produced by an offline compiler.
func (c *ModuleCache) Put(wgslText string, spirv []uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.entries[sourceKey(wgslText)] = &moduleEntry{spirv: spirv, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// Clear removes all entries.
func (c *ModuleCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[uint64]*moduleEntry)
	c.tick = 0
}

// Len returns the number of cached modules.
func (c *ModuleCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Stats returns hit and miss counts.
func (c *ModuleCache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hits, c.misses
}

// evictOldest removes entries until 25% under the soft limit.
// Caller must hold c.mu.
func (c *ModuleCache) evictOldest() {
	targetSize := c.softLimit * 3 / 4
	if targetSize < 1 {
		targetSize = 1
	}
	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   uint64
		atime int64
	}
	entries := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		entries = append(entries, aged{key: key, atime: e.atime})
	}

	// Selection sort on the eviction prefix; batches are small.
	for i := 0; i < toEvict && i < len(entries); i++ {
		minIdx := i
		for j := i + 1; j < len(entries); j++ {
			if entries[j].atime < entries[minIdx].atime {
				minIdx = j
			}
		}
		if minIdx != i {
			entries[i], entries[minIdx] = entries[minIdx], entries[i]
		}
		delete(c.entries, entries[i].key)
	}
}
