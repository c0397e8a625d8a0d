// Package sound synthesizes and plays the game's event sounds.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound names one of the game's effects
type Sound int

const (
	SoundJump Sound = iota
	SoundKey
	SoundDoor
	SoundShake
)

// String returns the string representation of the sound
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundKey:
		return "key"
	case SoundDoor:
		return "door"
	case SoundShake:
		return "shake"
	default:
		return "unknown"
	}
}

// Manager plays sounds through the speaker
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	counts      map[Sound]int
}

// NewManager creates a manager. A muted manager never opens the speaker.
func NewManager(muted bool) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		muted:  muted,
		counts: make(map[Sound]int),
	}
}

// Initialize opens the speaker
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || m.muted {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play queues a sound. Muted or uninitialized managers only count it.
func (m *Manager) Play(s Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counts[s]++
	if !m.initialized || m.muted {
		return
	}

	speaker.Lock()
	m.mixer.Add(Create(s, sampleRate))
	speaker.Unlock()
}

// Count returns how many times s was requested
func (m *Manager) Count(s Sound) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[s]
}

// Cleanup stops all sounds
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}
