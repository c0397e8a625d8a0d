package playing

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Shake is a decaying screen shake. Its amplitude is tweened from the
// configured intensity down to zero over the shake duration.
type Shake struct {
	duration  time.Duration
	intensity float64

	tween     *gween.Tween
	amplitude float64
	elapsed   float64
}

// NewShake creates an idle shake
func NewShake(duration time.Duration, intensity float64) *Shake {
	return &Shake{
		duration:  duration,
		intensity: intensity,
	}
}

// Start restarts the shake at full intensity.
// Returns true if no shake was running.
func (s *Shake) Start() bool {
	idle := !s.Active()
	s.tween = gween.New(float32(s.intensity), 0, float32(s.duration.Seconds()), ease.OutQuad)
	s.amplitude = s.intensity
	s.elapsed = 0
	return idle
}

// Update advances the shake by dt seconds
func (s *Shake) Update(dt float64) {
	if s.tween == nil {
		return
	}
	v, done := s.tween.Update(float32(dt))
	s.elapsed += dt
	s.amplitude = float64(v)
	if done {
		s.tween = nil
		s.amplitude = 0
	}
}

// Active returns true while the shake is running
func (s *Shake) Active() bool {
	return s.tween != nil
}

// Offset returns the screen displacement for the current frame
func (s *Shake) Offset() (x, y float64) {
	if !s.Active() {
		return 0, 0
	}
	return s.amplitude * math.Sin(s.elapsed*2*math.Pi*25),
		s.amplitude * math.Cos(s.elapsed*2*math.Pi*19)
}
