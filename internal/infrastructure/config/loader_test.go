package config

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Display.ScreenWidth)
	assert.Equal(t, 600, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 0.5, cfg.Player.Gravity)
	assert.Equal(t, -10.0, cfg.Player.JumpStrength)
	assert.Equal(t, 0.7, cfg.Player.Friction)
	assert.Equal(t, 10, cfg.Level.Final)
	assert.Equal(t, 100*time.Millisecond, cfg.Level.SettleDelay())
	assert.Equal(t, 30*time.Second, cfg.Timer.Initial())
	assert.Equal(t, 16*time.Millisecond, cfg.Timer.Tick())
	assert.Equal(t, 500*time.Millisecond, cfg.Feedback.ShakeDuration())
}

func TestLoader_LoadLevels(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	pack, err := loader.LoadLevels()
	require.NoError(t, err)

	for n := 1; n <= 10; n++ {
		rows, ok := pack.Level(LevelID(n))
		require.True(t, ok, LevelID(n))
		assert.Len(t, rows, 15)
		assert.Len(t, rows[0], 20)
	}
	_, ok := pack.Level("levelDebug")
	assert.True(t, ok)

	level1, _ := pack.Level("level1")
	assert.Equal(t, 3, level1[13][18], "level1 key")
	assert.Equal(t, 2, level1[13][19], "level1 door")
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	bundle, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, bundle.Game)
	assert.NotNil(t, bundle.Levels)
	assert.Equal(t, "../../../cmd/game/configs", loader.BasePath())
}

func TestFSLoader_PartialGameUsesDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json": {Data: []byte(`{"player": {"speed": 7}, "timer": {"levelSeconds": {"2": 99}}}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 7.0, cfg.Player.Speed)
	assert.Equal(t, 0.5, cfg.Player.Gravity, "unspecified values keep defaults")

	budget, ok := cfg.Timer.Budget(2)
	require.True(t, ok)
	assert.Equal(t, 99*time.Second, budget)

	_, ok = cfg.Timer.Budget(3)
	assert.False(t, ok, "a levelSeconds table replaces the default budgets")
}

func TestFSLoader_KeepsDefaultBudgetsWithoutTable(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json": {Data: []byte(`{"timer": {"initialSeconds": 25}}`)},
	}

	cfg, err := NewFSLoader(fsys, "mem").LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 25*time.Second, cfg.Timer.Initial())
	budget, ok := cfg.Timer.Budget(3)
	require.True(t, ok)
	assert.Equal(t, 12*time.Second, budget)
}

func TestFSLoader_InvalidGame(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"zero width", `{"display": {"screenWidth": 0}}`, "screen size 0x600 must be positive"},
		{"negative height", `{"display": {"screenHeight": -1}}`, "screen size 800x-1 must be positive"},
		{"zero framerate", `{"display": {"framerate": 0}}`, "framerate 0 must be positive"},
		{"zero player", `{"player": {"width": 0}}`, "player size 0x40 must be positive"},
		{"zero tick", `{"timer": {"tickMs": 0}}`, "timer tickMs 0 must be positive"},
		{"final before first", `{"level": {"first": 3, "final": 2}}`, "level range 3..2 is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"game.json": {Data: []byte(tt.data)}}
			_, err := NewFSLoader(fsys, "mem").LoadGame()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid game.json")
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestFSLoader_LevelLargerThanCanvas(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json":   {Data: []byte(`{"display": {"screenWidth": 80, "screenHeight": 80}}`)},
		"levels.yaml": {Data: []byte("levels:\n  level1:\n    - [0, 0, 6]\n    - [1, 1, 1]\n")},
	}

	_, err := NewFSLoader(fsys, "mem").LoadAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level level1 is 120x80 pixels, canvas is 80x80")
}

func TestGameConfig_CheckLevels(t *testing.T) {
	cfg := Default()
	fits := &LevelPack{Levels: map[string][][]int{"level1": make([][]int, 15)}}
	for r := range fits.Levels["level1"] {
		fits.Levels["level1"][r] = make([]int, 20)
	}
	assert.NoError(t, cfg.CheckLevels(fits), "20x15 tiles fill 800x600 exactly")

	tall := &LevelPack{Levels: map[string][][]int{"level1": append(fits.Levels["level1"], make([]int, 20))}}
	assert.Error(t, cfg.CheckLevels(tall))
}

func TestLevelConfig_StartLevel(t *testing.T) {
	cfg := Default().Level

	tests := []struct {
		name     string
		expected string
	}{
		{"", "level1"},
		{"debug", "levelDebug"},
		{"level4", "level4"},
		{"levelDebug", "levelDebug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.StartLevel(tt.name))
		})
	}
}

func TestFSLoader_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		load func(l *Loader) error
		msg  string
	}{
		{
			name: "missing game.json",
			fsys: fstest.MapFS{},
			load: func(l *Loader) error { _, err := l.LoadGame(); return err },
			msg:  "failed to read game.json",
		},
		{
			name: "malformed game.json",
			fsys: fstest.MapFS{"game.json": {Data: []byte(`{`)}},
			load: func(l *Loader) error { _, err := l.LoadGame(); return err },
			msg:  "failed to parse game.json",
		},
		{
			name: "missing levels.yaml",
			fsys: fstest.MapFS{},
			load: func(l *Loader) error { _, err := l.LoadLevels(); return err },
			msg:  "failed to read levels.yaml",
		},
		{
			name: "ragged level",
			fsys: fstest.MapFS{"levels.yaml": {Data: []byte("levels:\n  level1:\n    - [1, 1]\n    - [1]\n")}},
			load: func(l *Loader) error { _, err := l.LoadLevels(); return err },
			msg:  "row 1 has 1 cells, want 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.load(NewFSLoader(tt.fsys, "mem"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestTimerConfig_BudgetMissing(t *testing.T) {
	cfg := Default()
	_, ok := cfg.Timer.Budget(1)
	assert.False(t, ok, "level 1 has no override")
}
