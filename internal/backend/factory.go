package backend

import (
	"context"
	"fmt"

	"arthsaathi/internal/kvstore/memory"
	"arthsaathi/internal/log"
	"arthsaathi/internal/storage"
)

// DefaultFactory opens sqlite or memory stores.
type DefaultFactory struct {
	logger *log.Logger
}

func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.Default()
	}
	return &DefaultFactory{logger: logger.WithComponent(log.ComponentStorage)}
}

func (f *DefaultFactory) CreateStore(ctx context.Context, config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		f.logger.InfoContext(ctx, "Initialized SQLite backend",
			log.FieldBackend, config.Type,
			log.FieldPath, config.SQLiteDBPath)
		return &Result{Store: repo, Cleanup: repo.Close}, nil

	case MemoryBackend:
		store := memory.NewWith(config.Seed)
		f.logger.InfoContext(ctx, "Initialized memory backend",
			log.FieldBackend, config.Type,
			"seeded_keys", len(config.Seed))
		return &Result{Store: store, Cleanup: store.Close}, nil

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, config.Type)
	}
}
