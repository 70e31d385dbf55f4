package cache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"arthsaathi/internal/fixtures"
	"arthsaathi/internal/log"
)

// LoadFunc decodes the catalogue at path; the empty path is the embedded one.
type LoadFunc func(path string) (*fixtures.Catalog, error)

// Catalog caches decoded persona catalogues keyed by fixture path.
// Concurrent misses for the same path share one decode.
type Catalog struct {
	cache  Cache[*fixtures.Catalog]
	load   LoadFunc
	group  singleflight.Group
	logger *log.Logger
}

func NewCatalog(size int, ttl time.Duration, load LoadFunc, logger *log.Logger) *Catalog {
	if load == nil {
		load = fixtures.Load
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Catalog{
		cache:  NewLRUCache[*fixtures.Catalog](size, ttl),
		load:   load,
		logger: logger.WithComponent(log.ComponentCache),
	}
}

// Get returns the catalogue for path, decoding it on a miss.
func (c *Catalog) Get(ctx context.Context, path string) (*fixtures.Catalog, error) {
	if cat, ok := c.cache.Get(path); ok {
		c.logger.DebugContext(ctx, "Catalog cache hit", log.FieldPath, displayPath(path))
		return cat, nil
	}

	v, err, shared := c.group.Do(path, func() (any, error) {
		start := time.Now()
		cat, err := c.load(path)
		if err != nil {
			return nil, err
		}
		c.cache.Add(path, cat)
		c.logger.InfoContext(ctx, "Catalog loaded",
			log.FieldPath, displayPath(path),
			log.FieldCount, cat.Len(),
			log.FieldDuration, time.Since(start))
		return cat, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", displayPath(path), err)
	}
	if shared {
		c.logger.DebugContext(ctx, "Catalog load shared", log.FieldPath, displayPath(path))
	}
	return v.(*fixtures.Catalog), nil
}

// Invalidate drops path so the next Get decodes it again.
func (c *Catalog) Invalidate(path string) { c.cache.Remove(path) }

func displayPath(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
