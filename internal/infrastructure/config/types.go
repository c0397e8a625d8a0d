package config

import (
	"fmt"
	"time"

	"github.com/younwookim/keydoor/internal/domain/entity"
)

// GameConfig is the root config for game.json
type GameConfig struct {
	Display  DisplayConfig  `json:"display"`
	Player   PlayerConfig   `json:"player"`
	Level    LevelConfig    `json:"level"`
	Timer    TimerConfig    `json:"timer"`
	Feedback FeedbackConfig `json:"feedback"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PlayerConfig struct {
	SpawnX       float64 `json:"spawnX"`
	SpawnY       float64 `json:"spawnY"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Speed        float64 `json:"speed"`
	Friction     float64 `json:"friction"`
	Gravity      float64 `json:"gravity"`
	JumpStrength float64 `json:"jumpStrength"`
	Color        string  `json:"color"`
}

type LevelConfig struct {
	First         int    `json:"first"`
	Final         int    `json:"final"`
	DebugID       string `json:"debugId"`
	SettleDelayMS int    `json:"settleDelayMs"`
	// EvictDistance is how many ordinals behind the loaded level a template
	// is dropped from the cache. Zero disables eviction.
	EvictDistance int `json:"evictDistance"`
}

// SettleDelay returns the post-load input gate duration
func (c LevelConfig) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMS) * time.Millisecond
}

type TimerConfig struct {
	InitialSeconds float64 `json:"initialSeconds"`
	TickMS         int     `json:"tickMs"`
	// LevelSeconds overrides the countdown per level ordinal
	LevelSeconds map[int]float64 `json:"levelSeconds"`
}

// Initial returns the starting countdown
func (c TimerConfig) Initial() time.Duration {
	return seconds(c.InitialSeconds)
}

// Tick returns the countdown decrement per tick
func (c TimerConfig) Tick() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Budget returns the time budget for a level ordinal, if one is configured
func (c TimerConfig) Budget(level int) (time.Duration, bool) {
	s, ok := c.LevelSeconds[level]
	if !ok {
		return 0, false
	}
	return seconds(s), true
}

type FeedbackConfig struct {
	ShakeMS        int     `json:"shakeMs"`
	ShakeIntensity float64 `json:"shakeIntensity"`
}

// ShakeDuration returns how long a shake lasts
func (c FeedbackConfig) ShakeDuration() time.Duration {
	return time.Duration(c.ShakeMS) * time.Millisecond
}

// Validate rejects values the physics and the countdown cannot run with
func (c *GameConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("screen size %dx%d must be positive", d.ScreenWidth, d.ScreenHeight)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("framerate %d must be positive", d.Framerate)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player size %gx%g must be positive", c.Player.Width, c.Player.Height)
	}
	if c.Timer.TickMS <= 0 {
		return fmt.Errorf("timer tickMs %d must be positive", c.Timer.TickMS)
	}
	if c.Level.First < 1 || c.Level.Final < c.Level.First {
		return fmt.Errorf("level range %d..%d is invalid", c.Level.First, c.Level.Final)
	}
	return nil
}

// CheckLevels rejects levels whose grid does not fit on the canvas
func (c *GameConfig) CheckLevels(p *LevelPack) error {
	for _, id := range p.IDs() {
		rows := p.Levels[id]
		w, h := len(rows[0])*entity.TileSize, len(rows)*entity.TileSize
		if w > c.Display.ScreenWidth || h > c.Display.ScreenHeight {
			return fmt.Errorf("level %s is %dx%d pixels, canvas is %dx%d",
				id, w, h, c.Display.ScreenWidth, c.Display.ScreenHeight)
		}
	}
	return nil
}

// StartLevel resolves a start level name. Empty means the first level and
// "debug" the debug level.
func (c LevelConfig) StartLevel(name string) string {
	switch name {
	case "":
		return LevelID(c.First)
	case "debug":
		return c.DebugID
	default:
		return name
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Default returns the built-in tuning of the game
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
		},
		Player: PlayerConfig{
			SpawnX:       50,
			SpawnY:       520,
			Width:        22,
			Height:       40,
			Speed:        5,
			Friction:     0.7,
			Gravity:      0.5,
			JumpStrength: -10,
			Color:        "black",
		},
		Level: LevelConfig{
			First:         1,
			Final:         10,
			DebugID:       "levelDebug",
			SettleDelayMS: 100,
			EvictDistance: 2,
		},
		Timer: TimerConfig{
			InitialSeconds: 30,
			TickMS:         16,
			LevelSeconds: map[int]float64{
				2: 15, 3: 12, 4: 20, 5: 30, 6: 40, 7: 20, 8: 30, 9: 10, 10: 20,
			},
		},
		Feedback: FeedbackConfig{
			ShakeMS:        500,
			ShakeIntensity: 6,
		},
	}
}
