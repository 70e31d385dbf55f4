// Package fixtures decodes persona catalogues and validates them at the
// boundary, so malformed fixtures fail before any arithmetic runs.
package fixtures

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"arthsaathi/internal/core"
)

//go:embed data/personas.json
var embedded embed.FS

const defaultFixture = "data/personas.json"

// Format is the encoding of a fixture file.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var (
	ErrPersonaNotFound   = errors.New("persona not found")
	ErrDuplicatePersona  = errors.New("duplicate persona id")
	ErrEmptyCatalog      = errors.New("catalog has no personas")
	ErrUnsupportedFormat = errors.New("unsupported fixture format")
)

// Catalog is a validated, read-only set of personas in fixture order.
type Catalog struct {
	personas []core.Persona
	byID     map[string]int
}

func newCatalog(personas []core.Persona) (*Catalog, error) {
	if len(personas) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{personas: personas, byID: make(map[string]int, len(personas))}
	for i, p := range personas {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("persona %d (%s): %w", i, p.ID, err)
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("persona %q: %w", p.ID, ErrDuplicatePersona)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

// Personas returns the personas in fixture order.
func (c *Catalog) Personas() []core.Persona {
	return append([]core.Persona(nil), c.personas...)
}

// Persona looks up a persona by id.
func (c *Catalog) Persona(id string) (core.Persona, error) {
	i, ok := c.byID[id]
	if !ok {
		return core.Persona{}, fmt.Errorf("%w: %s", ErrPersonaNotFound, id)
	}
	return c.personas[i], nil
}

// Len is the number of personas.
func (c *Catalog) Len() int { return len(c.personas) }

// Load reads a fixture file, choosing the decoder from its extension.
// An empty path loads the embedded catalogue.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}

// Default decodes the catalogue shipped with the binary.
func Default() (*Catalog, error) {
	f, err := embedded.Open(defaultFixture)
	if err != nil {
		return nil, fmt.Errorf("open embedded fixture: %w", err)
	}
	defer f.Close()
	return Decode(f, JSON)
}

// FormatFor maps a file extension to a Format.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
