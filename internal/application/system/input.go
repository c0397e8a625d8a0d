package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem reads keyboard edges from ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the key edges of one tick
type InputState struct {
	LeftPressed    bool
	LeftReleased   bool
	RightPressed   bool
	RightReleased  bool
	JumpPressed    bool
	PausePressed   bool
	QuitPressed    bool
	RestartPressed bool
}

// Movement returns true if any movement or jump edge is set
func (in InputState) Movement() bool {
	return in.LeftPressed || in.LeftReleased || in.RightPressed || in.RightReleased || in.JumpPressed
}

// GetInput reads the current input edges
func (s *InputSystem) GetInput() InputState {
	return InputState{
		LeftPressed:    justPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		LeftReleased:   justReleased(ebiten.KeyArrowLeft, ebiten.KeyA),
		RightPressed:   justPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		RightReleased:  justReleased(ebiten.KeyArrowRight, ebiten.KeyD),
		JumpPressed:    justPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		PausePressed:   inpututil.IsKeyJustPressed(ebiten.KeyP),
		QuitPressed:    inpututil.IsKeyJustPressed(ebiten.KeyQ),
		RestartPressed: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func justReleased(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

// HeldKeys latches movement keys from press and release edges
type HeldKeys struct {
	Left  bool
	Right bool
}

// Apply updates the latch from one tick of edges
func (h *HeldKeys) Apply(in InputState) {
	if in.LeftPressed {
		h.Left = true
	}
	if in.LeftReleased {
		h.Left = false
	}
	if in.RightPressed {
		h.Right = true
	}
	if in.RightReleased {
		h.Right = false
	}
}

// Clear releases every key
func (h *HeldKeys) Clear() {
	*h = HeldKeys{}
}
