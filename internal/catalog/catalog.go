// Package catalog loads the static egg content catalog and serves read-only
// lookups by egg key.
package catalog

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/osse101/HabitInventory_Go/internal/domain"
	"github.com/osse101/HabitInventory_Go/internal/metrics"
)

// Catalog is an immutable set of egg definitions shared across requests.
type Catalog struct {
	version string
	byKey   map[string]*domain.EggDefinition
	ordered []*domain.EggDefinition
}

// New builds a catalog ordered by egg key.
func New(version string, eggs []*domain.EggDefinition) (*Catalog, error) {
	c := &Catalog{
		version: version,
		byKey:   make(map[string]*domain.EggDefinition, len(eggs)),
		ordered: make([]*domain.EggDefinition, 0, len(eggs)),
	}
	for _, egg := range eggs {
		if _, dup := c.byKey[egg.Key]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateEggKey, domain.ErrDuplicateEggKey, egg.Key)
		}
		c.byKey[egg.Key] = egg
		c.ordered = append(c.ordered, egg)
	}
	sort.Slice(c.ordered, func(i, j int) bool { return c.ordered[i].Key < c.ordered[j].Key })
	return c, nil
}

// LoadFile loads, validates and indexes a catalog file.
func LoadFile(loader Loader, path string) (*Catalog, error) {
	cfg, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}

	c, err := New(cfg.Version, cfg.Eggs)
	if err != nil {
		return nil, err
	}

	metrics.CatalogEggs.Set(float64(c.Len()))
	slog.Default().Info(LogMsgCatalogLoaded, "path", path, "version", c.Version(), "eggs", c.Len())
	return c, nil
}

// Egg returns the definition for key.
func (c *Catalog) Egg(key string) (*domain.EggDefinition, error) {
	egg, ok := c.byKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrEggNotFound, key)
	}
	return egg, nil
}

// Eggs returns every definition sorted by key. The slice is a copy; the
// definitions are shared.
func (c *Catalog) Eggs() []*domain.EggDefinition {
	out := make([]*domain.EggDefinition, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// Version returns the catalog file version.
func (c *Catalog) Version() string {
	return c.version
}
