// Package gameplay drives one run of the game: it owns the game state and
// sequences kinematics, tile interaction and the countdown each tick.
package gameplay

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/younwookim/keydoor/internal/application/state"
	"github.com/younwookim/keydoor/internal/application/system"
	"github.com/younwookim/keydoor/internal/domain/entity"
	"github.com/younwookim/keydoor/internal/infrastructure/config"
)

// GameState is everything that changes while the game runs
type GameState struct {
	Player  *entity.Player
	Session *system.LevelSession
	Timer   *system.Countdown
	Held    system.HeldKeys

	State   state.GameState
	Outcome state.Outcome

	resume state.GameState
}

// Loop advances the game state one fixed tick at a time
type Loop struct {
	cfg      *config.GameConfig
	gs       *GameState
	physics  *system.PhysicsSystem
	resolver *system.InteractionResolver
}

// NewPlayer builds the player from its config section
func NewPlayer(cfg config.PlayerConfig, c color.Color) *entity.Player {
	return entity.NewPlayer(entity.PlayerParams{
		SpawnX:       cfg.SpawnX,
		SpawnY:       cfg.SpawnY,
		Width:        cfg.Width,
		Height:       cfg.Height,
		Speed:        cfg.Speed,
		Friction:     cfg.Friction,
		Gravity:      cfg.Gravity,
		JumpStrength: cfg.JumpStrength,
		Color:        c,
	})
}

// NewLoop creates a loop over the given templates. Call Start to load the first level.
func NewLoop(cfg *config.GameConfig, templates *system.TemplateCache, player *entity.Player) *Loop {
	return &Loop{
		cfg: cfg,
		gs: &GameState{
			Player:  player,
			Session: system.NewLevelSession(templates, cfg),
			Timer:   system.NewCountdown(cfg.Timer.Initial(), cfg.Timer.Tick()),
			State:   state.StateRunning,
			Outcome: state.OutcomeActive,
		},
		physics:  system.NewPhysicsSystem(&cfg.Display),
		resolver: system.NewInteractionResolver(&cfg.Level),
	}
}

// LevelIndex returns the ordinal of a "levelN" id, or first for any other id
func LevelIndex(id string, first int) int {
	var n int
	if _, err := fmt.Sscanf(id, "level%d", &n); err == nil && n > 0 {
		return n
	}
	return first
}

// Start loads the level the run begins on
func (l *Loop) Start(id string, now time.Time) error {
	return l.load(id, LevelIndex(id, l.cfg.Level.First), now)
}

// Reset starts a new run from the first level
func (l *Loop) Reset(now time.Time) error {
	gs := l.gs
	gs.Session.Cancel()
	gs.Player.Reset()
	gs.Timer.Reset()
	gs.Outcome = state.OutcomeActive
	gs.State = state.StateRunning
	return l.load(config.LevelID(l.cfg.Level.First), l.cfg.Level.First, now)
}

func (l *Loop) load(id string, index int, now time.Time) error {
	gs := l.gs
	if err := gs.Session.Load(id, index, gs.Player, gs.Timer, now); err != nil {
		return err
	}
	gs.Held.Clear()
	gs.State = state.StateLoadingLevel
	return nil
}

// Tick advances the game by one fixed step and returns what happened
func (l *Loop) Tick(in system.InputState, now time.Time) []system.Event {
	gs := l.gs
	var events []system.Event

	if in.QuitPressed {
		events = append(events, system.QuitEvent{})
	}
	if in.PausePressed {
		if ev, ok := l.TogglePause(); ok {
			events = append(events, ev)
		}
	}
	if gs.State == state.StatePaused {
		return events
	}

	if in.RestartPressed && gs.State == state.StateGameOver {
		return append(events, l.restart(now)...)
	}

	if gs.Session.Settle(gs.Player, now) && gs.State == state.StateLoadingLevel {
		gs.State = state.StateRunning
	}

	if gs.State == state.StateGameOver {
		l.holdGameOver()
		return events
	}

	events = l.applyInput(in, events)
	l.physics.Update(gs.Player, gs.Held, gs.Session.Platforms())

	res := l.resolver.Resolve(gs.Player, gs.Session, gs.Timer)
	events = append(events, res.Events...)

	switch res.Transition {
	case system.TransitionKill:
		l.gameOver(state.OutcomeKilled)
	case system.TransitionComplete:
		l.gameOver(state.OutcomeWon)
	case system.TransitionAdvance:
		events = append(events, l.advance(now)...)
	}

	if gs.State == state.StateGameOver {
		l.holdGameOver()
		return events
	}

	if gs.Timer.Update(gs.Player.Alerted) {
		events = append(events, system.TimeExpiredEvent{})
		l.gameOver(state.OutcomeTimedOut)
		l.holdGameOver()
	}
	return events
}

func (l *Loop) applyInput(in system.InputState, events []system.Event) []system.Event {
	gs := l.gs
	if !gs.State.AcceptsInput() || gs.Session.Loading() || !gs.Player.CanMove {
		if in.Movement() {
			log.Printf("Warning: input ignored while %s is loading", gs.Session.ID())
		}
		return events
	}

	gs.Held.Apply(in)
	if in.JumpPressed && l.physics.Jump(gs.Player) {
		events = append(events, system.JumpEvent{Inverted: gs.Player.Inverted()})
	}
	return events
}

func (l *Loop) advance(now time.Time) []system.Event {
	next := l.gs.Session.Index() + 1
	id := config.LevelID(next)

	err := l.load(id, next, now)
	switch {
	case err == nil:
		return []system.Event{system.LevelLoadedEvent{ID: id, Index: next}}
	case errors.Is(err, system.ErrLoadInProgress):
		log.Printf("Warning: door to %s reached while %s is still loading", id, l.gs.Session.ID())
		return nil
	default:
		log.Printf("Error: %v", err)
		return []system.Event{system.LevelLoadFailedEvent{ID: id, Err: err}}
	}
}

func (l *Loop) restart(now time.Time) []system.Event {
	id := config.LevelID(l.cfg.Level.First)
	if err := l.Reset(now); err != nil {
		log.Printf("Error: %v", err)
		return []system.Event{system.LevelLoadFailedEvent{ID: id, Err: err}}
	}
	return []system.Event{system.LevelLoadedEvent{ID: id, Index: l.cfg.Level.First}}
}

func (l *Loop) gameOver(outcome state.Outcome) {
	gs := l.gs
	if outcome == state.OutcomeKilled {
		gs.Timer.Freeze()
	}
	gs.Player.Alerted = true
	gs.Outcome = outcome
	gs.State = state.StateGameOver
	log.Printf("Game over: %s at %s (%ss left)", outcome, gs.Session.ID(), gs.Timer.Display())
}

// holdGameOver keeps the finished run frozen
func (l *Loop) holdGameOver() {
	gs := l.gs
	gs.Player.HasKey = false
	gs.Player.TimePassed = true
	gs.Timer.Update(true)
}

// TogglePause pauses or resumes the game. It has no effect once the run is over.
func (l *Loop) TogglePause() (system.Event, bool) {
	gs := l.gs
	switch gs.State {
	case state.StateGameOver:
		return nil, false
	case state.StatePaused:
		gs.State = gs.resume
		return system.PauseEvent{Paused: false}, true
	default:
		gs.resume = gs.State
		gs.State = state.StatePaused
		return system.PauseEvent{Paused: true}, true
	}
}

// State returns the game state
func (l *Loop) State() *GameState {
	return l.gs
}

// Player returns the player
func (l *Loop) Player() *entity.Player {
	return l.gs.Player
}

// Platforms returns the platforms of the live level
func (l *Loop) Platforms() []entity.Platform {
	return l.gs.Session.Platforms()
}

// Display returns the countdown text
func (l *Loop) Display() string {
	return l.gs.Timer.Display()
}

// SetLevels swaps the level source. Takes effect on the next load.
func (l *Loop) SetLevels(src system.LevelSource) {
	l.gs.Session.Templates().SetSource(src)
}

// Config returns the game config
func (l *Loop) Config() *config.GameConfig {
	return l.cfg
}
