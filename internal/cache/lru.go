package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRUCache is a size-bounded cache whose entries expire after ttl.
// Expired entries are purged in the background by the underlying LRU.
type LRUCache[T any] struct {
	lru *expirable.LRU[string, T]
}

// NewLRUCache creates a cache holding at most maxSize entries.
// maxSize <= 0 means unbounded and ttl <= 0 disables expiry.
func NewLRUCache[T any](maxSize int, ttl time.Duration) *LRUCache[T] {
	return &LRUCache[T]{lru: expirable.NewLRU[string, T](maxSize, nil, ttl)}
}

func (c *LRUCache[T]) Get(key string) (T, bool) { return c.lru.Get(key) }

func (c *LRUCache[T]) Add(key string, value T) { c.lru.Add(key, value) }

func (c *LRUCache[T]) Remove(key string) { c.lru.Remove(key) }

func (c *LRUCache[T]) Len() int { return c.lru.Len() }

func (c *LRUCache[T]) Purge() { c.lru.Purge() }

var _ Cache[int] = (*LRUCache[int])(nil)
