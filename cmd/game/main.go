package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/keydoor/internal/application/game"
	"github.com/younwookim/keydoor/internal/application/gameplay"
	"github.com/younwookim/keydoor/internal/application/scene/playing"
	"github.com/younwookim/keydoor/internal/application/system"
	"github.com/younwookim/keydoor/internal/infrastructure/config"
	"github.com/younwookim/keydoor/internal/infrastructure/sound"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	settingsFlag := flag.String("settings", "", "Settings file (default: ./keydoor.yaml if present)")
	colorFlag := flag.String("color", "", "Player color, a name or #rrggbb")
	levelFlag := flag.String("level", "", "Start level (e.g., level3, or debug for the debug level)")
	configFlag := flag.String("config", "", "Load game.json and levels.yaml from this directory instead of the embedded copy")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or -record auto)")
	replayFlag := flag.String("replay", "", "Re-simulate a recording without a window and log the outcome")
	watchFlag := flag.Bool("watch", false, "Reload levels.yaml when it changes on disk (needs -config)")
	muteFlag := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsFlag)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	// Flags given on the command line win over the settings file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "color":
			settings.Color = *colorFlag
		case "level":
			settings.StartLevel = *levelFlag
		case "config":
			settings.ConfigDir = *configFlag
		case "record":
			settings.Record = *recordFlag
		case "watch":
			settings.Watch = *watchFlag
		case "mute":
			settings.Mute = *muteFlag
		}
	})

	loader, err := newLoader(settings)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	bundle, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		if _, err := runReplay(*replayFlag, bundle); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	loop, err := newLoop(bundle, settings.Color)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	startLevel := bundle.Game.Level.StartLevel(settings.StartLevel)
	started := time.Now()
	if err := loop.Start(startLevel, started); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	sounds := sound.NewManager(settings.Mute)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Sound disabled: %v", err)
	}

	opts := playing.Options{
		RecordPath: settings.Record,
		Sounds:     sounds,
		Started:    started,
	}
	if settings.Watch {
		if settings.ConfigDir == "" {
			log.Printf("Warning: -watch needs -config, embedded levels cannot change")
		} else {
			watcher, err := config.NewWatcher(settings.ConfigDir)
			if err != nil {
				log.Fatalf("Failed to watch %s: %v", settings.ConfigDir, err)
			}
			opts.Watcher = watcher
			opts.Reload = func() (system.LevelSource, error) {
				pack, err := loader.LoadLevels()
				if err != nil {
					return nil, err
				}
				if err := bundle.Game.CheckLevels(pack); err != nil {
					return nil, err
				}
				return pack, nil
			}
			log.Printf("Watching %s for level changes", settings.ConfigDir)
		}
	}

	display := bundle.Game.Display
	g := game.New(playing.New(loop, opts), display.ScreenWidth, display.ScreenHeight, display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Key & Door")
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}

// newLoader reads configs from ConfigDir when set, else from the embedded copy
func newLoader(s *config.Settings) (*config.Loader, error) {
	if s.ConfigDir != "" {
		return config.NewLoader(s.ConfigDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// newLoop builds an unstarted loop over the bundle's levels. An empty
// colorName keeps the color from game.json.
func newLoop(bundle *config.Bundle, colorName string) (*gameplay.Loop, error) {
	if colorName == "" {
		colorName = bundle.Game.Player.Color
	}
	c, err := config.ParseColor(colorName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse player color: %w", err)
	}

	player := gameplay.NewPlayer(bundle.Game.Player, c)
	return gameplay.NewLoop(bundle.Game, system.NewTemplateCache(bundle.Levels), player), nil
}
