package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache is a file-based cache of fetched document text with a max age.
// Entries are keyed by the SHA256 of the source URL.
type Cache struct {
	dir    string
	maxAge time.Duration
}

// NewCache creates a Cache rooted at dir, creating it if needed.
// A maxAge of zero or less makes every Get a miss, which forces a fresh
// fetch while still recording new entries.
func NewCache(dir string, maxAge time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		dir:    dir,
		maxAge: maxAge,
	}, nil
}

func (c *Cache) key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x.txt", hash)
}

// Get returns the cached text for url and true when a fresh entry
// exists. Stale, missing, or unreadable entries are misses.
func (c *Cache) Get(url string) (string, bool) {
	if c.maxAge <= 0 {
		return "", false
	}

	path := filepath.Join(c.dir, c.key(url))

	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	if time.Since(info.ModTime()) > c.maxAge {
		return "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set stores text for url, replacing any previous entry.
func (c *Cache) Set(url, text string) error {
	path := filepath.Join(c.dir, c.key(url))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
