package system

import (
	"math"

	"github.com/younwookim/keydoor/internal/domain/entity"
	"github.com/younwookim/keydoor/internal/infrastructure/config"
)

// frictionCutoff is the speed below which horizontal drift stops
const frictionCutoff = 0.1

// PhysicsSystem moves the player through the level one axis at a time
type PhysicsSystem struct {
	width  float64
	height float64
}

// NewPhysicsSystem creates a physics system bounded by the canvas
func NewPhysicsSystem(cfg *config.DisplayConfig) *PhysicsSystem {
	return &PhysicsSystem{
		width:  float64(cfg.ScreenWidth),
		height: float64(cfg.ScreenHeight),
	}
}

// Bounds returns the canvas size
func (s *PhysicsSystem) Bounds() (w, h float64) {
	return s.width, s.height
}

// Update advances the player by one tick
func (s *PhysicsSystem) Update(player *entity.Player, held HeldKeys, platforms []entity.Platform) {
	if player.CanMove {
		s.applyInput(player, held)
	}

	player.VY += player.Gravity

	player.X += player.VX
	s.resolveX(player, platforms)

	player.Y += player.VY
	s.resolveY(player, platforms)
}

// Jump starts a jump if the player stands on something.
// Returns true if the jump took effect.
func (s *PhysicsSystem) Jump(player *entity.Player) bool {
	if player.Jumping || !player.Grounded {
		return false
	}
	player.VY = player.JumpStrength
	player.Jumping = true
	return true
}

func (s *PhysicsSystem) applyInput(player *entity.Player, held HeldKeys) {
	switch {
	case held.Right:
		player.VX = player.Speed
	case held.Left:
		player.VX = -player.Speed
	default:
		player.VX *= player.Friction
		if math.Abs(player.VX) < frictionCutoff {
			player.VX = 0
		}
	}
}

// resolveX pushes the player out of solid platforms along the direction of travel
func (s *PhysicsSystem) resolveX(player *entity.Player, platforms []entity.Platform) {
	for _, p := range platforms {
		if !p.Solid() || !player.Rect().Overlaps(p.Rect) {
			continue
		}
		if player.VX > 0 {
			player.X = p.X - player.W
		} else if player.VX < 0 {
			player.X = p.X + p.W
		}
		player.VX = 0
	}

	if player.X <= 0 {
		player.X = 0
		player.VX = 0
	}
	if player.X+player.W >= s.width {
		player.X = s.width - player.W
		player.VX = 0
	}
}

// resolveY lands or bumps the player depending on the gravity sign
func (s *PhysicsSystem) resolveY(player *entity.Player, platforms []entity.Platform) {
	player.Grounded = false
	normal := player.Gravity > 0

	for _, p := range platforms {
		if p.Kind != entity.KindNormal || !player.Rect().Overlaps(p.Rect) {
			continue
		}
		switch {
		case player.VY > 0:
			player.Y = p.Y - player.H
			player.VY = 0
			if normal {
				s.land(player)
			}
		case player.VY < 0:
			player.Y = p.Y + p.H
			player.VY = 0
			if !normal {
				s.land(player)
			}
		}
	}

	if normal {
		if player.Y+player.H >= s.height {
			player.Y = s.height - player.H
			player.VY = 0
			s.land(player)
		}
		if player.Y < 0 {
			player.Y = 0
			player.VY = math.Max(player.VY, 0)
		}
		return
	}

	if player.Y <= 0 {
		player.Y = 0
		player.VY = 0
		s.land(player)
	}
	if player.Y+player.H > s.height {
		player.Y = s.height - player.H
		player.VY = math.Min(player.VY, 0)
	}
}

func (s *PhysicsSystem) land(player *entity.Player) {
	player.Grounded = true
	player.Jumping = false
}
