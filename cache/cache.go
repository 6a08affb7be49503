// Package cache memoizes parsed tables. Parsing is a pure function of the
// block, the forced format and the parser configuration, so results can be
// shared across goroutines and across repeated blocks of a document set,
// such as the same boilerplate ledger on every page of a statement.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/claryai/tabula/format"
	"github.com/claryai/tabula/model"
	"github.com/claryai/tabula/tables"
)

// DefaultSize is the number of tables kept when no size is given.
const DefaultSize = 1024

// Cache is a fixed-size LRU of parsed tables. It is safe for concurrent use.
// Tables are copied on the way in and on the way out, so callers may modify
// what they get back.
type Cache struct {
	tables *lru.Cache[string, *model.StructuredTable]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// New creates a cache holding up to size tables. A size of zero or less
// selects DefaultSize.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	l, err := lru.New[string, *model.StructuredTable](size)
	if err != nil {
		return nil, fmt.Errorf("creating table cache: %w", err)
	}
	return &Cache{tables: l}, nil
}

// Key derives the cache key for parsing block as f under cfg. Unknown means
// the format is chosen by classification.
func Key(block model.RawBlock, f format.Format, cfg tables.Config) string {
	h := sha256.New()
	if block.Markup {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	fmt.Fprintf(h, "%d\x00%s\x00", f, cfg.Fingerprint())
	h.Write([]byte(block.Text))
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns a copy of the table stored under key.
func (c *Cache) Get(key string) (*model.StructuredTable, bool) {
	t, ok := c.tables.Get(key)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return t.Clone(), true
}

// Add stores a copy of t under key.
func (c *Cache) Add(key string, t *model.StructuredTable) {
	if t == nil {
		return
	}
	c.tables.Add(key, t.Clone())
}

// GetOrParse returns the cached table for the block or runs parse and stores
// its result. Concurrent misses on one key may each run parse; the results
// are identical.
func (c *Cache) GetOrParse(block model.RawBlock, f format.Format, cfg tables.Config, parse func() *model.StructuredTable) *model.StructuredTable {
	key := Key(block, f, cfg)
	if t, ok := c.Get(key); ok {
		return t
	}
	t := parse()
	c.Add(key, t)
	return t
}

// Stats returns hit and miss counts since creation or the last Purge.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.tables.Len(),
	}
}

// Purge drops every entry and resets the counters.
func (c *Cache) Purge() {
	c.tables.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
}
