// Package cache stores generated reports keyed by the content of the snapshot
// they were generated from.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/spboyer/scorecard/internal/models"
)

// keyVersion is mixed into every key. Bump it whenever grading rules change
// so that reports produced by older rules are never served.
const keyVersion = "scorecard-report-v1"

const entryExt = ".json.zst"

// Cache provides caching for generated reports
type Cache struct {
	dir string
	mu  sync.Mutex
}

// New creates a new cache instance with the specified directory
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// Key derives a cache key from the entire snapshot: students, subject list
// and settings. Any change to any of them yields a different key, so a cached
// report can never be paired with different inputs.
func Key(snap *models.Snapshot) (string, error) {
	h := sha256.New()

	// Write with a null byte delimiter to prevent collisions
	if _, err := h.Write([]byte(keyVersion + "\x00")); err != nil {
		return "", err
	}

	// encoding/json sorts map keys, which keeps this deterministic
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("marshaling snapshot: %w", err)
	}
	if _, err := h.Write(data); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Get retrieves a cached report if it exists
func (c *Cache) Get(key string) (*models.Report, bool) {
	if c.dir == "" {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	compressed, err := os.ReadFile(c.cachePath(key))
	if err != nil {
		// Cache miss
		return nil, false
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, false
	}
	defer dec.Close()

	data, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		// Corrupt entry, treat as miss
		return nil, false
	}

	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, false
	}

	return &report, true
}

// Put stores a report in the cache
func (c *Cache) Put(key string, report *models.Report) error {
	if c.dir == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("creating compressor: %w", err)
	}
	compressed := enc.EncodeAll(data, nil)
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing compressor: %w", err)
	}

	if err := os.WriteFile(c.cachePath(key), compressed, 0644); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}

	return nil
}

// Clear removes all cached reports
func (c *Cache) Clear() error {
	if c.dir == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := os.Stat(c.dir); os.IsNotExist(err) {
		return nil
	}

	// Safety check: only remove directories that hold nothing but cache entries
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("reading cache directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			return fmt.Errorf("cache directory contains subdirectories - refusing to delete for safety")
		}
		if !strings.HasSuffix(entry.Name(), entryExt) {
			return fmt.Errorf("cache directory contains non-cache files - refusing to delete for safety")
		}
	}

	return os.RemoveAll(c.dir)
}

// cachePath returns the file path for a cache key
func (c *Cache) cachePath(key string) string {
	return filepath.Join(c.dir, key+entryExt)
}
