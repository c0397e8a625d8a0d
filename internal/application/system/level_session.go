package system

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/younwookim/keydoor/internal/domain/entity"
	"github.com/younwookim/keydoor/internal/infrastructure/config"
)

// ErrLoadInProgress is returned when a load starts before the previous one settled
var ErrLoadInProgress = errors.New("level load in progress")

// LevelSession owns the live level: its grid, the platforms derived from
// it and the load/settle life-cycle
type LevelSession struct {
	templates     *TemplateCache
	timer         config.TimerConfig
	settleDelay   time.Duration
	evictDistance int

	id        string
	index     int
	grid      entity.Grid
	platforms []entity.Platform

	loading        bool
	settleDeadline time.Time
	generation     uint64
}

// NewLevelSession creates an empty session reading templates from the cache
func NewLevelSession(templates *TemplateCache, cfg *config.GameConfig) *LevelSession {
	return &LevelSession{
		templates:     templates,
		timer:         cfg.Timer,
		settleDelay:   cfg.Level.SettleDelay(),
		evictDistance: cfg.Level.EvictDistance,
	}
}

// Load replaces the live level with a copy of template id. index is the
// level ordinal used for the time budget and eviction. The player is
// reset and held still until Settle passes the settle deadline.
func (s *LevelSession) Load(id string, index int, player *entity.Player, timer *Countdown, now time.Time) error {
	if s.loading {
		return fmt.Errorf("%w: %s", ErrLoadInProgress, id)
	}

	tmpl, err := s.templates.Get(id)
	if err != nil {
		return fmt.Errorf("failed to load level: %w", err)
	}

	s.loading = true
	s.generation++
	s.settleDeadline = now.Add(s.settleDelay)

	s.id = id
	s.index = index
	s.grid = tmpl.Clone()
	s.Regenerate()

	player.Reset()
	player.CanMove = false

	if budget, ok := s.timer.Budget(index); ok && timer.Positive() {
		timer.Set(budget)
	}

	s.evict(index)

	log.Printf("Loaded %s (level %d, %dx%d, %d platforms)", id, index, s.grid.Cols(), s.grid.Rows(), len(s.platforms))
	return nil
}

// Settle ends the loading phase once now reaches the settle deadline.
// Returns true on the call that released the player.
func (s *LevelSession) Settle(player *entity.Player, now time.Time) bool {
	if !s.loading || now.Before(s.settleDeadline) {
		return false
	}
	s.loading = false
	player.CanMove = true
	return true
}

// Cancel abandons a pending settle so a new load can start immediately
func (s *LevelSession) Cancel() {
	if !s.loading {
		return
	}
	s.loading = false
	s.generation++
}

// Regenerate rebuilds the platform list from the live grid
func (s *LevelSession) Regenerate() {
	s.platforms = entity.PlatformsFromGrid(s.grid)
}

// ClearCell empties a grid cell and regenerates platforms
func (s *LevelSession) ClearCell(col, row int) {
	s.grid.Set(col, row, entity.TileEmpty)
	s.Regenerate()
}

func (s *LevelSession) evict(index int) {
	if s.evictDistance <= 0 || index-s.evictDistance < 1 {
		return
	}
	old := config.LevelID(index - s.evictDistance)
	if old == s.id {
		return
	}
	if err := s.templates.Evict(old); err != nil {
		log.Printf("Warning: failed to evict %s: %v", old, err)
	}
}

// Loading returns true until the current load settles
func (s *LevelSession) Loading() bool {
	return s.loading
}

// Generation increments on every load and cancelled load
func (s *LevelSession) Generation() uint64 {
	return s.generation
}

// ID returns the id of the loaded level
func (s *LevelSession) ID() string {
	return s.id
}

// Index returns the ordinal of the loaded level
func (s *LevelSession) Index() int {
	return s.index
}

// Grid returns the live grid
func (s *LevelSession) Grid() entity.Grid {
	return s.grid
}

// Platforms returns the platforms of the live grid in row-major order
func (s *LevelSession) Platforms() []entity.Platform {
	return s.platforms
}

// Templates returns the template cache backing the session
func (s *LevelSession) Templates() *TemplateCache {
	return s.templates
}
