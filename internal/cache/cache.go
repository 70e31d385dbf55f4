// Package cache keeps decoded persona catalogues in memory so repeated
// commands and replays do not re-read fixture files.
package cache

// Cache is a string-keyed store of T that may drop entries at any time.
// Callers must treat a miss as "load it again".
type Cache[T any] interface {
	Get(key string) (T, bool)
	Add(key string, value T)
	Remove(key string)
	Len() int
	// Purge drops every entry.
	Purge()
}
