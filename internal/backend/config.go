package backend

import (
	"errors"
	"fmt"
	"strings"

	"arthsaathi/internal/config"
)

var (
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrMissingDBPath  = errors.New("sqlite backend needs a database path")
)

// ParseType accepts a backend name case-insensitively.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w %q (want one of %v)", ErrUnknownBackend, s, Types())
	}
	return t, nil
}

// FromAppConfig picks the storage settings out of the application config.
func FromAppConfig(cfg *config.Config) (Config, error) {
	if cfg == nil {
		return Config{}, errors.New("backend: nil app config")
	}
	t, err := ParseType(cfg.DataBackend)
	if err != nil {
		return Config{}, err
	}
	return Config{Type: t, SQLiteDBPath: cfg.SQLiteDBPath}, nil
}

func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("%w %q", ErrUnknownBackend, c.Type)
	}
	if c.Type == SQLiteBackend && c.SQLiteDBPath == "" {
		return ErrMissingDBPath
	}
	if c.Type != MemoryBackend && len(c.Seed) > 0 {
		return fmt.Errorf("backend %s cannot be seeded", c.Type)
	}
	return nil
}

// Types lists the accepted backends, default first.
func Types() []Type {
	return []Type{SQLiteBackend, MemoryBackend}
}
