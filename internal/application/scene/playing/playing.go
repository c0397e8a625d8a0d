// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/keydoor/internal/application/gameplay"
	"github.com/younwookim/keydoor/internal/application/replay"
	"github.com/younwookim/keydoor/internal/application/scene"
	"github.com/younwookim/keydoor/internal/application/state"
	"github.com/younwookim/keydoor/internal/application/system"
	"github.com/younwookim/keydoor/internal/domain/entity"
	"github.com/younwookim/keydoor/internal/infrastructure/sound"
)

// Colors for rendering
var (
	colorCanvas    = color.RGBA{0x80, 0x80, 0x80, 0xff}
	colorNormal    = color.RGBA{0xdc, 0xdc, 0xdc, 0xff}
	colorDoor      = color.RGBA{0x30, 0x30, 0x30, 0xff}
	colorKey       = color.RGBA{0xe2, 0xe2, 0x00, 0xff}
	colorFakeKey   = color.RGBA{0xe2, 0xe2, 0x01, 0xff}
	colorTeleportA = color.RGBA{0xb2, 0x00, 0xff, 0xff}
	colorTeleportB = color.RGBA{0x00, 0x94, 0xff, 0xff}
	colorInvert    = color.RGBA{0x57, 0x00, 0x7f, 0xff}
	colorKill      = color.RGBA{0xff, 0x00, 0x00, 0xff}
	colorPause     = color.RGBA{0, 0, 0, 128}
	colorGameOver  = color.RGBA{0, 0, 0, 180}
)

// noticeTicks is how long a notice stays on screen
const noticeTicks = 120

// SoundPlayer plays feedback sounds
type SoundPlayer interface {
	Play(s sound.Sound)
	Cleanup()
}

// ChangeSource reports changed config files without blocking
type ChangeSource interface {
	Poll() (string, bool)
	Close() error
}

// Options configures optional scene features
type Options struct {
	// RecordPath enables input recording. "auto" picks a generated name.
	RecordPath string
	Sounds     SoundPlayer
	Watcher    ChangeSource
	// Reload returns a fresh level source after Watcher reports a change
	Reload func() (system.LevelSource, error)
	// Started is the time the loop was started at. Zero means now.
	Started time.Time
	Clock   func() time.Time
}

// Playing is the main gameplay scene
type Playing struct {
	loop   *gameplay.Loop
	input  *system.InputSystem
	sounds SoundPlayer
	shake  *Shake

	recorder   *replay.Recorder
	recordPath string

	watcher ChangeSource
	reload  func() (system.LevelSource, error)

	clock   func() time.Time
	started time.Time

	screenW int
	screenH int

	notice      string
	noticeTicks int
	quit        bool
}

// New creates a playing scene around a started loop
func New(loop *gameplay.Loop, opts Options) *Playing {
	cfg := loop.Config()

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	started := opts.Started
	if started.IsZero() {
		started = clock()
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = sound.NewManager(true)
	}

	p := &Playing{
		loop:    loop,
		input:   system.NewInputSystem(),
		sounds:  sounds,
		shake:   NewShake(cfg.Feedback.ShakeDuration(), cfg.Feedback.ShakeIntensity),
		watcher: opts.Watcher,
		reload:  opts.Reload,
		clock:   clock,
		started: started,
		screenW: cfg.Display.ScreenWidth,
		screenH: cfg.Display.ScreenHeight,
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(loop.State().Session.ID())
		p.recordPath = opts.RecordPath
		if p.recordPath == "auto" {
			p.recordPath = replay.GenerateFilename(p.recorder.RunID())
		}
		log.Printf("Recording enabled: %s (run: %s)", p.recordPath, p.recorder.RunID())
	}

	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	return p.step(p.input.GetInput(), p.clock(), dt)
}

func (p *Playing) step(in system.InputState, now time.Time, dt float64) (scene.Scene, error) {
	if p.recorder != nil {
		p.recorder.RecordFrame(in, now.Sub(p.started))
	}

	p.handleEvents(p.loop.Tick(in, now))
	p.shake.Update(dt)
	p.pollWatcher()

	if p.noticeTicks > 0 {
		p.noticeTicks--
	}

	if p.quit {
		return nil, scene.ErrQuit
	}
	return nil, nil
}

func (p *Playing) handleEvents(events []system.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case system.JumpEvent:
			if !e.Inverted {
				p.sounds.Play(sound.SoundJump)
			}
		case system.KeyPickupEvent:
			p.sounds.Play(sound.SoundKey)
		case system.ShakeEvent:
			if p.shake.Start() && e.Sound {
				p.sounds.Play(sound.SoundShake)
			}
		case system.DoorOpenEvent:
			p.sounds.Play(sound.SoundDoor)
		case system.LevelLoadedEvent:
			p.show(fmt.Sprintf("Level %d", e.Index))
		case system.LevelLoadFailedEvent:
			p.show(fmt.Sprintf("Could not load %s", e.ID))
		case system.GameCompleteEvent:
			p.show("All levels cleared")
		case system.QuitEvent:
			p.quit = true
		}
	}
}

func (p *Playing) show(msg string) {
	p.notice = msg
	p.noticeTicks = noticeTicks
}

// pollWatcher swaps in reloaded levels after a config file changed
func (p *Playing) pollWatcher() {
	if p.watcher == nil || p.reload == nil {
		return
	}
	name, ok := p.watcher.Poll()
	if !ok {
		return
	}

	src, err := p.reload()
	if err != nil {
		log.Printf("Failed to reload %s: %v", name, err)
		p.show("Reload failed")
		return
	}
	p.loop.SetLevels(src)
	log.Printf("Reloaded levels after change to %s", name)
	p.show("Levels reloaded")
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()

	if err := p.recorder.Save(p.recordPath); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", p.recordPath, p.recorder.FrameCount())
	}
}

// Draw renders the level, the player and the overlays
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorCanvas)

	ox, oy := p.shake.Offset()
	player := p.loop.Player()

	for _, pl := range p.loop.Platforms() {
		ebitenutil.DrawRect(screen, pl.X+ox, pl.Y+oy, pl.W, pl.H, platformColor(pl.Kind, player.TimePassed))
	}
	ebitenutil.DrawRect(screen, player.X+ox, player.Y+oy, player.W, player.H, player.Color)

	p.drawHUD(screen)

	switch p.loop.State().State {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

// platformColor returns the fill of a platform. An uncollected key blends
// into the canvas once the run is over.
func platformColor(kind entity.PlatformKind, timePassed bool) color.Color {
	switch kind {
	case entity.KindDoor:
		return colorDoor
	case entity.KindKey:
		if timePassed {
			return colorCanvas
		}
		return colorKey
	case entity.KindFakeKey:
		return colorFakeKey
	case entity.KindTeleportA:
		return colorTeleportA
	case entity.KindTeleportB:
		return colorTeleportB
	case entity.KindInvert:
		return colorInvert
	case entity.KindKill:
		return colorKill
	default:
		return colorNormal
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	gs := p.loop.State()
	key := "no"
	if gs.Player.HasKey {
		key = "yes"
	}
	hud := fmt.Sprintf("Time: %s  Level: %s  Key: %s", p.loop.Display(), gs.Session.ID(), key)
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)
	ebitenutil.DebugPrintAt(screen, "A/D: Move | W: Jump | P: Pause | Q: Quit", 10, p.screenH-20)

	if p.noticeTicks > 0 {
		ebitenutil.DebugPrintAt(screen, p.notice, p.screenW/2-len(p.notice)*3, 40)
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorPause)
	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress P to resume", p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorGameOver)
	text := fmt.Sprintf("%s\n\nPress R to restart", p.loop.State().Outcome.Message())
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit flushes the recording and releases audio and the watcher
func (p *Playing) OnExit() {
	p.saveRecording()
	p.sounds.Cleanup()
	if p.watcher != nil {
		if err := p.watcher.Close(); err != nil {
			log.Printf("Failed to close watcher: %v", err)
		}
	}
}
