package entity

import "image/color"

// PlayerParams holds the construction-time tuning of the player
type PlayerParams struct {
	SpawnX, SpawnY float64
	Width, Height  float64
	Speed          float64
	Friction       float64
	Gravity        float64 // magnitude; sign comes from orientation
	JumpStrength   float64 // negative impulse
	Color          color.Color
}

// Player represents the single player-controlled rectangle
type Player struct {
	Body

	Speed        float64
	Friction     float64
	Gravity      float64
	JumpStrength float64
	Color        color.Color

	Orientation Gravity

	HasKey     bool
	Alerted    bool // run outcome decided, timer frozen
	CanMove    bool
	TimePassed bool // set once the run is over; hides the key

	spawnX, spawnY float64
	baseGravity    float64
}

// NewPlayer creates a player at its spawn point
func NewPlayer(p PlayerParams) *Player {
	c := p.Color
	if c == nil {
		c = color.Black
	}
	player := &Player{
		Body: Body{
			W: p.Width,
			H: p.Height,
		},
		Speed:        p.Speed,
		Friction:     p.Friction,
		JumpStrength: p.JumpStrength,
		Color:        c,
		CanMove:      true,
		spawnX:       p.SpawnX,
		spawnY:       p.SpawnY,
		baseGravity:  p.Gravity,
	}
	player.Reset()
	return player
}

// Reset restores position, velocity, gravity and flags to spawn defaults.
// CanMove is owned by the level session and left untouched.
func (p *Player) Reset() {
	p.X = p.spawnX
	p.Y = p.spawnY
	p.VX = 0
	p.VY = 0
	p.Grounded = false
	p.Jumping = false
	p.Gravity = p.baseGravity
	p.Orientation = GravityNormal
	p.HasKey = false
	p.Alerted = false
	p.TimePassed = false
}

// Spawn returns the spawn point
func (p *Player) Spawn() (x, y float64) {
	return p.spawnX, p.spawnY
}

// InvertGravity negates gravity and flips the orientation
func (p *Player) InvertGravity() {
	p.Gravity = -p.Gravity
	p.Orientation = p.Orientation.Flip()
}

// Inverted returns true if gravity currently points up
func (p *Player) Inverted() bool {
	return p.Gravity < 0
}
