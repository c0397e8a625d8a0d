// Package game adapts the current Scene to ebiten.Game.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/keydoor/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	done    bool
}

// New creates a new Game with the given initial scene ticking at tps.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// A quit request exits the current scene and ends the ebiten loop.
func (g *Game) Update() error {
	if g.done {
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if errors.Is(err, scene.ErrQuit) {
		g.Close()
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close exits the current scene once. Call it after RunGame returns
// for any reason other than a quit request.
func (g *Game) Close() {
	if g.done {
		return
	}
	g.done = true
	g.current.OnExit()
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// DT returns the fixed tick length in seconds
func (g *Game) DT() float64 {
	return g.dt
}
