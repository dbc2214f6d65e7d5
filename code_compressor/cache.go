package code_compressor

import (
	"context"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zeebo/xxh3"
)

const cacheFileName = "compression.gob"

// DefaultCacheDir returns the per-user cache directory, falling back to a
// temp location when the OS reports none.
func DefaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "repopack")
}

// Cache persists compression results across runs. Keys hash the extension
// together with the raw content, so edited files miss naturally and no
// mtime bookkeeping is needed. Safe for concurrent pipeline workers.
type Cache struct {
	mutex   sync.RWMutex
	entries map[uint64]string
	dir     string
	dirty   bool
}

// OpenCache loads the cache stored under dir, starting empty when the file
// is missing or unreadable.
func OpenCache(dir string) *Cache {
	c := &Cache{
		entries: make(map[uint64]string),
		dir:     dir,
	}

	file, err := os.Open(filepath.Join(dir, cacheFileName))
	if err != nil {
		return c
	}
	defer file.Close()

	var entries map[uint64]string
	if err := gob.NewDecoder(file).Decode(&entries); err == nil && entries != nil {
		c.entries = entries
	}
	return c
}

func cacheKey(ext, content string) uint64 {
	return xxh3.HashString(ext + "\x00" + content)
}

// Get returns the cached compression result for (ext, content).
func (c *Cache) Get(ext, content string) (string, bool) {
	if c == nil {
		return "", false
	}
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	value, ok := c.entries[cacheKey(ext, content)]
	return value, ok
}

// Put records a compression result.
func (c *Cache) Put(ext, content, compressed string) {
	if c == nil {
		return
	}
	c.mutex.Lock()
	c.entries[cacheKey(ext, content)] = compressed
	c.dirty = true
	c.mutex.Unlock()
}

// Save writes the cache back to disk when anything changed since load.
func (c *Cache) Save() error {
	if c == nil {
		return nil
	}
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if !c.dirty {
		return nil
	}
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	file, err := os.Create(filepath.Join(c.dir, cacheFileName))
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer file.Close()

	return gob.NewEncoder(file).Encode(c.entries)
}

// ClearDir removes the persisted cache directory entirely.
func ClearDir(dir string) error {
	return os.RemoveAll(dir)
}

// CompressWithCache runs Compress through the cache when one is provided.
// Only applied results are cached; unsupported and failed attempts are cheap
// to re-derive and must not mask grammar fixes.
func CompressWithCache(ctx context.Context, cache *Cache, content, ext string) Result {
	if cached, ok := cache.Get(ext, content); ok {
		return Result{Status: StatusApplied, Content: cached}
	}

	result := Compress(ctx, content, ext)
	if result.Status == StatusApplied {
		cache.Put(ext, content, result.Content)
	}
	return result
}
