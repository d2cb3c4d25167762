package catalog

import (
	"log"
	"os"
	"sync"
	"time"

	"SilverAdvisor/internal/model"
)

// Catalog owns the canonical product table for the process lifetime.
// The table is built once at open time and replaced wholesale on refresh;
// readers always see a complete, immutable snapshot.
type Catalog struct {
	mu       sync.RWMutex
	products []model.CanonicalProduct
	path     string
	seed     int64
	modTime  time.Time
}

// Open loads and normalizes the catalog file. A missing file is fatal:
// the engine cannot run on an empty or partial catalog.
func Open(path string, seed int64) (*Catalog, error) {
	raw, err := LoadRawTable(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		products: Normalize(raw, seed),
		path:     path,
		seed:     seed,
		modTime:  info.ModTime(),
	}
	log.Printf("[INFO] catalog loaded: %d products from %s", len(c.products), path)
	return c, nil
}

// Products returns the current canonical table. The returned slice is a
// shared immutable snapshot; callers must not modify it.
func (c *Catalog) Products() []model.CanonicalProduct {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.products
}

// Refresh re-normalizes the catalog if the raw file changed on disk and
// swaps in the new table atomically. In-flight readers keep the snapshot
// they already hold. Returns whether a reload happened.
func (c *Catalog) Refresh() (bool, error) {
	info, err := os.Stat(c.path)
	if err != nil {
		return false, err
	}

	c.mu.RLock()
	unchanged := info.ModTime().Equal(c.modTime)
	c.mu.RUnlock()
	if unchanged {
		return false, nil
	}

	raw, err := LoadRawTable(c.path)
	if err != nil {
		return false, err
	}
	products := Normalize(raw, c.seed)

	c.mu.Lock()
	c.products = products
	c.modTime = info.ModTime()
	c.mu.Unlock()

	log.Printf("[INFO] catalog refreshed: %d products", len(products))
	return true, nil
}
