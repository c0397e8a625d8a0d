package system

import "github.com/younwookim/keydoor/internal/domain/entity"

// Event is something that happened during a tick, reported to the
// collaborators that map gameplay to sound and screen feedback
type Event interface {
	isEvent()
}

// JumpEvent is emitted when a jump took effect
type JumpEvent struct {
	Inverted bool
}

func (JumpEvent) isEvent() {}

// KeyPickupEvent is emitted when the player touches a key or a fake key
type KeyPickupEvent struct {
	Fake bool
}

func (KeyPickupEvent) isEvent() {}

// DoorOpenEvent is emitted when the player reaches the door holding the key
type DoorOpenEvent struct {
	Level int
}

func (DoorOpenEvent) isEvent() {}

// DoorRejectedEvent is emitted when the player reaches the door without the key
type DoorRejectedEvent struct{}

func (DoorRejectedEvent) isEvent() {}

// TeleportEvent is emitted when the player is moved to the teleport exit
type TeleportEvent struct {
	X, Y float64
}

func (TeleportEvent) isEvent() {}

// GravityInvertEvent is emitted each tick gravity flips
type GravityInvertEvent struct {
	Orientation entity.Gravity
}

func (GravityInvertEvent) isEvent() {}

// KillEvent is emitted when the player touches a kill tile
type KillEvent struct{}

func (KillEvent) isEvent() {}

// TimeExpiredEvent is emitted on the tick the countdown reaches zero
type TimeExpiredEvent struct{}

func (TimeExpiredEvent) isEvent() {}

// GameCompleteEvent is emitted when the final door is opened
type GameCompleteEvent struct{}

func (GameCompleteEvent) isEvent() {}

// LevelLoadedEvent is emitted after a level is loaded into the session
type LevelLoadedEvent struct {
	ID    string
	Index int
}

func (LevelLoadedEvent) isEvent() {}

// LevelLoadFailedEvent is the user notice for a level that could not be loaded
type LevelLoadFailedEvent struct {
	ID  string
	Err error
}

func (LevelLoadFailedEvent) isEvent() {}

// PauseEvent is emitted when pause is toggled
type PauseEvent struct {
	Paused bool
}

func (PauseEvent) isEvent() {}

// QuitEvent is emitted when the player asks to leave the game
type QuitEvent struct{}

func (QuitEvent) isEvent() {}

// ShakeEvent asks the screen to shake. Sound is false for feedback
// that carries its own sound, like a key pickup.
type ShakeEvent struct {
	Sound bool
}

func (ShakeEvent) isEvent() {}
