package entity

// Body is the kinematic state of a rectangle moving through the level.
// Position and size are in pixels, velocity in pixels per tick.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	Grounded bool
	Jumping  bool
}

// Rect returns the body's bounding box
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Center returns the center point of the bounding box
func (b *Body) Center() (cx, cy float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// SetPos moves the body without touching its velocity
func (b *Body) SetPos(x, y float64) {
	b.X = x
	b.Y = y
}

// Gravity is the orientation of the player's gravity
type Gravity int

const (
	GravityNormal Gravity = iota
	GravityInverted
)

// String returns the string representation of the orientation
func (g Gravity) String() string {
	switch g {
	case GravityNormal:
		return "Normal"
	case GravityInverted:
		return "Inverted"
	default:
		return "Unknown"
	}
}

// Flip returns the opposite orientation
func (g Gravity) Flip() Gravity {
	if g == GravityInverted {
		return GravityNormal
	}
	return GravityInverted
}
