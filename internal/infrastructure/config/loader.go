package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Bundle holds all loaded configurations
type Bundle struct {
	Game   *GameConfig
	Levels *LevelPack
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadGame loads game.json on top of the built-in defaults
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	// A levelSeconds table in the file replaces the default budgets instead of merging into them
	var overrides struct {
		Timer struct {
			LevelSeconds json.RawMessage `json:"levelSeconds"`
		} `json:"timer"`
	}
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	cfg := Default()
	if len(overrides.Timer.LevelSeconds) > 0 {
		cfg.Timer.LevelSeconds = nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game.json: %w", err)
	}

	return cfg, nil
}

// LoadLevels loads levels.yaml
func (l *Loader) LoadLevels() (*LevelPack, error) {
	data, err := fs.ReadFile(l.fsys, "levels.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read levels.yaml: %w", err)
	}

	pack, err := ParseLevels(data)
	if err != nil {
		return nil, fmt.Errorf("levels.yaml: %w", err)
	}

	return pack, nil
}

// LoadAll loads all configurations (game, levels)
func (l *Loader) LoadAll() (*Bundle, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	levels, err := l.LoadLevels()
	if err != nil {
		return nil, err
	}
	if err := game.CheckLevels(levels); err != nil {
		return nil, err
	}

	return &Bundle{
		Game:   game,
		Levels: levels,
	}, nil
}
