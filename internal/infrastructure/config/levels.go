package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// LevelPack is the root of levels.yaml: named integer grids
type LevelPack struct {
	Levels map[string][][]int `yaml:"levels"`
}

// LevelID returns the pack key of a level ordinal
func LevelID(n int) string {
	return fmt.Sprintf("level%d", n)
}

// ParseLevels decodes and validates a level pack
func ParseLevels(data []byte) (*LevelPack, error) {
	var pack LevelPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse levels: %w", err)
	}
	if err := pack.Validate(); err != nil {
		return nil, err
	}
	return &pack, nil
}

// Validate checks that every level is a non-empty rectangle
func (p *LevelPack) Validate() error {
	if len(p.Levels) == 0 {
		return fmt.Errorf("level pack has no levels")
	}
	for _, id := range p.IDs() {
		rows := p.Levels[id]
		if len(rows) == 0 {
			return fmt.Errorf("level %s has no rows", id)
		}
		width := len(rows[0])
		if width == 0 {
			return fmt.Errorf("level %s has an empty first row", id)
		}
		for y, row := range rows {
			if len(row) != width {
				return fmt.Errorf("level %s row %d has %d cells, want %d", id, y, len(row), width)
			}
		}
	}
	return nil
}

// Level returns the raw grid for id
func (p *LevelPack) Level(id string) ([][]int, bool) {
	rows, ok := p.Levels[id]
	return rows, ok
}

// IDs returns the level ids in sorted order
func (p *LevelPack) IDs() []string {
	ids := make([]string, 0, len(p.Levels))
	for id := range p.Levels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
