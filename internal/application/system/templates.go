package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/keydoor/internal/domain/entity"
)

var (
	// ErrUnknownLevel is returned for a level id missing from the level pack
	ErrUnknownLevel = errors.New("unknown level")
	// ErrTemplateNotCached is returned when evicting a template that is not cached
	ErrTemplateNotCached = errors.New("template not cached")
)

// LevelSource provides level templates by id
type LevelSource interface {
	Level(id string) ([][]int, bool)
}

// TemplateCache keeps decoded level templates in memory. Evicted
// templates are decoded again from the source on the next Get.
type TemplateCache struct {
	source LevelSource
	cache  map[string]entity.Grid
}

// NewTemplateCache creates a cache over source
func NewTemplateCache(source LevelSource) *TemplateCache {
	return &TemplateCache{
		source: source,
		cache:  make(map[string]entity.Grid),
	}
}

// Get returns the template for id. Callers must Clone it before mutating.
func (c *TemplateCache) Get(id string) (entity.Grid, error) {
	if g, ok := c.cache[id]; ok {
		return g, nil
	}
	rows, ok := c.source.Level(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, id)
	}
	g := entity.NewGrid(rows)
	c.cache[id] = g
	return g, nil
}

// Has returns true if the source knows id
func (c *TemplateCache) Has(id string) bool {
	if _, ok := c.cache[id]; ok {
		return true
	}
	_, ok := c.source.Level(id)
	return ok
}

// Cached returns true if id is currently held in memory
func (c *TemplateCache) Cached(id string) bool {
	_, ok := c.cache[id]
	return ok
}

// Evict drops a template from memory
func (c *TemplateCache) Evict(id string) error {
	if _, ok := c.cache[id]; !ok {
		return fmt.Errorf("%w: %s", ErrTemplateNotCached, id)
	}
	delete(c.cache, id)
	return nil
}

// SetSource swaps the level source and drops every cached template
func (c *TemplateCache) SetSource(source LevelSource) {
	c.source = source
	c.cache = make(map[string]entity.Grid)
}
