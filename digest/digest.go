// Package digest fingerprints source buffers so repeated tokenizations
// of identical input can be recognized and cached, and so dump output
// can be stamped with a stable identifier of what it was produced from.
package digest

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Source returns the hex-encoded blake2b-256 digest of src.
func Source(src []byte) string {
	sum := blake2b.Sum256(src)
	return hex.EncodeToString(sum[:])
}

// Cache memoizes a tokenization (or any other pure, digest-keyed result)
// by source digest, so a host re-running the same buffer through the
// CLI — e.g. the watch subcommand re-parsing after every save of an
// otherwise-unchanged file — doesn't redo the work.
//
// Cache is not safe for concurrent use on its own; see package cmd's use
// of a sync.Mutex around it (per the concurrency model, the core stays
// single-threaded and this memoization lives entirely in the CLI layer).
type Cache[T any] struct {
	entries map[string]T
}

// NewCache returns an empty Cache.
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[string]T)}
}

// Get returns the cached value for src's digest, if present.
func (c *Cache[T]) Get(src []byte) (T, bool) {
	v, ok := c.entries[Source(src)]
	return v, ok
}

// Put stores value under src's digest, returning the digest for
// convenience (e.g. to stamp into a dump header).
func (c *Cache[T]) Put(src []byte, value T) string {
	d := Source(src)
	c.entries[d] = value
	return d
}

// String renders a digest with a short, human-legible prefix, the way
// CLI output headers display it (e.g. "blake2b-256:3f2a9c...").
func String(src []byte) string {
	return fmt.Sprintf("blake2b-256:%s", Source(src))
}
