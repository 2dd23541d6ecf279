// Package gencache lets prisma-to-zod skip regeneration when nothing that
// feeds the output has changed.
//
// The cache records the content hashes of the client declaration file and the
// config file, plus the output path, as of the last successful run. It is
// intentionally conservative: if ANY check fails, generation runs from
// scratch. There is no partial invalidation because the whole output module
// is produced in one pass.
package gencache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SchemaVersion is bumped when the cache format or the generated output
// format changes. A mismatch forces a full regeneration, so binary upgrades
// never leave stale schemas behind.
const SchemaVersion = 1

// Cache represents the on-disk generation cache.
type Cache struct {
	// V is the schema version. Must match SchemaVersion or the cache is
	// invalid.
	V int `json:"v"`

	// ClientHash is the SHA-256 hex digest of the client declaration file.
	ClientHash string `json:"clientHash"`

	// ConfigHash is the SHA-256 hex digest of the config file content.
	// Empty string means no config file was used.
	ConfigHash string `json:"configHash"`

	// Output is the path the schema module was written to. It must still
	// exist on disk for the cache to be valid.
	Output string `json:"output"`
}

// CachePath returns the cache file path, a dotfile next to the output so
// deleting the output directory also removes the cache.
func CachePath(outputPath string) string {
	return filepath.Join(filepath.Dir(outputPath), ".prisma-to-zod-cache")
}

// Load reads and parses a cache file from disk.
// Returns nil if the file doesn't exist, is unreadable, or is invalid JSON.
// Callers should treat nil as "cache miss" and regenerate.
func Load(path string) *Cache {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var c Cache
	if err := json.Unmarshal(data, &c); err != nil {
		return nil
	}

	return &c
}

// Save writes the cache to disk atomically (write to temp, rename).
// Callers may log and continue on error: a failed cache save just means the
// next run won't benefit from caching.
func Save(path string, cache *Cache) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling cache: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory %s: %w", dir, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing cache temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming cache file: %w", err)
	}

	return nil
}

// Delete removes the cache file from disk. Errors are ignored (the file may
// not exist).
func Delete(path string) {
	os.Remove(path)
}

// IsValid reports whether the cache can be trusted to skip generation.
// ALL of the following must hold simultaneously:
//
//  1. Schema version matches (catches binary upgrades)
//  2. Client declaration hash matches current content
//  3. Config hash matches current config file content
//  4. The recorded output file still exists on disk
func (c *Cache) IsValid(clientHash, configHash string) bool {
	if c == nil {
		return false
	}

	if c.V != SchemaVersion {
		return false
	}

	if c.ClientHash == "" || c.ClientHash != clientHash {
		return false
	}

	if c.ConfigHash != configHash {
		return false
	}

	if _, err := os.Stat(c.Output); err != nil {
		return false
	}

	return true
}

// HashFile computes the SHA-256 hex digest of a file's contents.
// Returns empty string if the file doesn't exist or can't be read.
func HashFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// New creates a new Cache with the current schema version.
func New(clientHash, configHash, output string) *Cache {
	return &Cache{
		V:          SchemaVersion,
		ClientHash: clientHash,
		ConfigHash: configHash,
		Output:     output,
	}
}
