package backend

import (
	"context"

	"arthsaathi/internal/kvstore"
)

// CleanupFunc closes the store.
type CleanupFunc func() error

// Result is an opened store plus the func that releases it.
type Result struct {
	Store   kvstore.Store
	Cleanup CleanupFunc
}

// Factory opens the key-value store that backs accounts and the timeline.
type Factory interface {
	CreateStore(ctx context.Context, config Config) (*Result, error)
}

// Config selects and parameterises the key-value store.
type Config struct {
	Type Type

	// SQLiteDBPath is required for the sqlite backend.
	SQLiteDBPath string

	// Seed pre-populates a memory store, e.g. with a signed-in user.
	Seed map[string]string
}

// Type represents the type of backend
type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
