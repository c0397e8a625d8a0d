package system

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/keydoor/internal/domain/entity"
	"github.com/younwookim/keydoor/internal/infrastructure/config"
)

func createTestConfig() *config.GameConfig {
	return config.Default()
}

func createTestLevels() map[string][][]int {
	return map[string][][]int{
		"level1": {
			{0, 0, 0},
			{0, 3, 2},
			{1, 1, 1},
		},
		"level2": {{1, 1}},
		"level3": {{8}},
		"level4": {{0, 1}},
	}
}

func createTestSession() (*LevelSession, *mapSource) {
	src := newMapSource(createTestLevels())
	return NewLevelSession(NewTemplateCache(src), createTestConfig()), src
}

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// loadSettled loads a level and settles it immediately after the deadline
func loadSettled(t *testing.T, s *LevelSession, id string, index int, player *entity.Player, timer *Countdown, now time.Time) time.Time {
	t.Helper()
	require.NoError(t, s.Load(id, index, player, timer, now))
	now = now.Add(100 * time.Millisecond)
	require.True(t, s.Settle(player, now))
	return now
}

func TestLevelSession_Load(t *testing.T) {
	s, _ := createTestSession()
	player := createTestPlayer()
	timer := createTestCountdown()
	player.SetPos(300, 300)
	player.HasKey = true

	err := s.Load("level1", 1, player, timer, testEpoch)
	require.NoError(t, err)

	assert.Equal(t, "level1", s.ID())
	assert.Equal(t, 1, s.Index())
	assert.True(t, s.Loading())
	assert.Equal(t, uint64(1), s.Generation())
	assert.Len(t, s.Platforms(), 5)

	assert.Equal(t, 50.0, player.X, "player is reset")
	assert.False(t, player.HasKey)
	assert.False(t, player.CanMove)
	assert.Equal(t, 30*time.Second, timer.Remaining(), "level 1 keeps the current time")
}

func TestLevelSession_LoadCopiesTemplate(t *testing.T) {
	s, _ := createTestSession()
	loadSettled(t, s, "level1", 1, createTestPlayer(), createTestCountdown(), testEpoch)

	s.ClearCell(1, 1)

	tmpl, err := s.Templates().Get("level1")
	require.NoError(t, err)
	assert.Equal(t, entity.TileKey, tmpl[1][1], "template is untouched")
	assert.Equal(t, entity.TileEmpty, s.Grid()[1][1])
	assert.Len(t, s.Platforms(), 4, "platforms regenerated")
}

func TestLevelSession_LoadUnknown(t *testing.T) {
	s, _ := createTestSession()
	player := createTestPlayer()
	timer := createTestCountdown()
	loadSettled(t, s, "level1", 1, player, timer, testEpoch)
	player.SetPos(200, 200)

	err := s.Load("level99", 99, player, timer, testEpoch)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownLevel))
	assert.Equal(t, "level1", s.ID())
	assert.False(t, s.Loading())
	assert.Equal(t, uint64(1), s.Generation())
	assert.Equal(t, 200.0, player.X, "player untouched")
	assert.True(t, player.CanMove)
}

func TestLevelSession_LoadInProgress(t *testing.T) {
	s, _ := createTestSession()
	player := createTestPlayer()
	timer := createTestCountdown()
	require.NoError(t, s.Load("level1", 1, player, timer, testEpoch))

	err := s.Load("level2", 2, player, timer, testEpoch.Add(50*time.Millisecond))

	assert.True(t, errors.Is(err, ErrLoadInProgress))
	assert.Equal(t, "level1", s.ID())
}

func TestLevelSession_Settle(t *testing.T) {
	s, _ := createTestSession()
	player := createTestPlayer()
	require.NoError(t, s.Load("level1", 1, player, createTestCountdown(), testEpoch))

	assert.False(t, s.Settle(player, testEpoch.Add(99*time.Millisecond)))
	assert.True(t, s.Loading())
	assert.False(t, player.CanMove)

	assert.True(t, s.Settle(player, testEpoch.Add(100*time.Millisecond)))
	assert.False(t, s.Loading())
	assert.True(t, player.CanMove)

	assert.False(t, s.Settle(player, testEpoch.Add(time.Second)), "settles once")
}

func TestLevelSession_Cancel(t *testing.T) {
	s, _ := createTestSession()
	player := createTestPlayer()
	timer := createTestCountdown()
	require.NoError(t, s.Load("level2", 2, player, timer, testEpoch))

	s.Cancel()

	assert.False(t, s.Loading())
	assert.Equal(t, uint64(2), s.Generation())
	require.NoError(t, s.Load("level1", 1, player, timer, testEpoch))
	assert.Equal(t, "level1", s.ID())

	s.Cancel()
	s.Cancel()
	assert.Equal(t, uint64(4), s.Generation(), "cancel without a pending load is a no-op")
}

func TestLevelSession_TimeBudget(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		start    time.Duration
		expected time.Duration
	}{
		{"level 2 budget", 2, 7 * time.Second, 15 * time.Second},
		{"level 3 budget", 3, 7 * time.Second, 12 * time.Second},
		{"no budget for level 1", 1, 7 * time.Second, 7 * time.Second},
		{"expired timer is not refilled", 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := createTestSession()
			timer := createTestCountdown()
			timer.Set(tt.start)

			require.NoError(t, s.Load(config.LevelID(tt.index), tt.index, createTestPlayer(), timer, testEpoch))

			assert.Equal(t, tt.expected, timer.Remaining())
		})
	}
}

func TestLevelSession_EvictsTwoBehind(t *testing.T) {
	s, src := createTestSession()
	player := createTestPlayer()
	timer := createTestCountdown()
	cache := s.Templates()

	now := loadSettled(t, s, "level1", 1, player, timer, testEpoch)
	now = loadSettled(t, s, "level2", 2, player, timer, now)
	assert.True(t, cache.Cached("level1"))

	now = loadSettled(t, s, "level3", 3, player, timer, now)
	assert.False(t, cache.Cached("level1"))
	assert.True(t, cache.Cached("level2"))
	assert.True(t, cache.Cached("level3"))

	// A full reset reloads level 1 from the pack
	loadSettled(t, s, "level1", 1, player, timer, now)
	assert.Equal(t, "level1", s.ID())
	assert.Equal(t, 2, src.reads["level1"])
}

func TestLevelSession_EvictMissingIsNotFatal(t *testing.T) {
	s, _ := createTestSession()

	// level2 was never loaded, so evicting it fails and is only logged
	err := s.Load("level4", 4, createTestPlayer(), createTestCountdown(), testEpoch)

	require.NoError(t, err)
	assert.Equal(t, "level4", s.ID())
}

func TestLevelSession_EvictionDisabled(t *testing.T) {
	cfg := createTestConfig()
	cfg.Level.EvictDistance = 0
	s := NewLevelSession(NewTemplateCache(newMapSource(createTestLevels())), cfg)
	player := createTestPlayer()
	timer := createTestCountdown()

	now := loadSettled(t, s, "level1", 1, player, timer, testEpoch)
	now = loadSettled(t, s, "level2", 2, player, timer, now)
	loadSettled(t, s, "level3", 3, player, timer, now)

	assert.True(t, s.Templates().Cached("level1"))
}
