package ioutils

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// Cache stores downloaded files (cover images) in a directory on disk.
//
// Entries are addressed by file name only; callers are responsible for
// producing safe names (see model.Album.CoverFileName).
//
// Example:
//
//	cache := NewCache("/home/user/.cache/albums-tui/covers")
//	if data, ok := cache.Read(ctx, "1-Trip.jpg"); ok {
//	    // use cached bytes
//	}
//	err := cache.Write(ctx, "1-Trip.jpg", jpegData)
type Cache struct {
	dir string
}

// NewCache creates a cache rooted at dir. An empty dir disables caching.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Enabled reports whether the cache has a backing directory.
func (c *Cache) Enabled() bool {
	return c != nil && c.dir != ""
}

// Path returns the full path of the named entry.
func (c *Cache) Path(name string) string {
	return filepath.Join(c.dir, filepath.Base(name))
}

// Read returns the cached bytes for name, if present and non-empty.
func (c *Cache) Read(ctx context.Context, name string) ([]byte, bool) {
	if !c.Enabled() || ctx.Err() != nil {
		return nil, false
	}
	data, err := os.ReadFile(c.Path(name))
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

// Write stores data under name, creating the cache directory if needed.
//
// The data is written to a temporary file first and renamed into place so
// that concurrent readers never observe a partial entry.
func (c *Cache) Write(ctx context.Context, name string, data []byte) error {
	if !c.Enabled() {
		return errors.New("cache disabled")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := EnsureDir(c.dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.dir, ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.Path(name))
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
