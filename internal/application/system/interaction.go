package system

import (
	"github.com/younwookim/keydoor/internal/domain/entity"
	"github.com/younwookim/keydoor/internal/infrastructure/config"
)

// Transition is the level-wide consequence of an interaction
type Transition int

const (
	TransitionNone Transition = iota
	TransitionAdvance
	TransitionComplete
	TransitionKill
)

// Resolution is the result of resolving the tile under the player
type Resolution struct {
	Events     []Event
	Transition Transition
}

func (r *Resolution) emit(events ...Event) {
	r.Events = append(r.Events, events...)
}

// InteractionResolver applies the effect of the tile under the player's center
type InteractionResolver struct {
	finalLevel int
}

// NewInteractionResolver creates a resolver that completes the game on finalLevel
func NewInteractionResolver(cfg *config.LevelConfig) *InteractionResolver {
	return &InteractionResolver{finalLevel: cfg.Final}
}

// Resolve inspects the tile under the player's center and applies its effect.
// Teleport, invert and kill tiles trigger on every tick of contact.
func (r *InteractionResolver) Resolve(player *entity.Player, session *LevelSession, timer *Countdown) Resolution {
	var res Resolution

	col, row := entity.CellAt(player.Center())
	code, ok := session.Grid().At(col, row)
	if !ok {
		return res
	}
	kind, ok := entity.KindOf(code)
	if !ok {
		return res
	}

	switch kind {
	case entity.KindDoor:
		r.door(player, session, timer, &res)
	case entity.KindKey:
		if !player.HasKey && timer.Positive() {
			player.HasKey = true
			session.ClearCell(col, row)
			res.emit(KeyPickupEvent{}, ShakeEvent{Sound: false})
		}
	case entity.KindFakeKey:
		session.ClearCell(col, row)
		res.emit(KeyPickupEvent{Fake: true}, ShakeEvent{Sound: false})
	case entity.KindTeleportA:
		if tx, ty, found := session.Grid().Find(entity.TileTeleportB); found {
			player.SetPos(float64(tx*entity.TileSize), float64(ty*entity.TileSize))
			res.emit(TeleportEvent{X: player.X, Y: player.Y})
		}
	case entity.KindInvert:
		player.InvertGravity()
		res.emit(GravityInvertEvent{Orientation: player.Orientation})
	case entity.KindKill:
		res.emit(KillEvent{})
		res.Transition = TransitionKill
	}

	return res
}

func (r *InteractionResolver) door(player *entity.Player, session *LevelSession, timer *Countdown, res *Resolution) {
	switch {
	case player.HasKey && !player.Alerted:
		player.Alerted = true
		timer.Freeze()
		res.emit(DoorOpenEvent{Level: session.Index()})
		if session.Index() >= r.finalLevel {
			res.emit(GameCompleteEvent{})
			res.Transition = TransitionComplete
			return
		}
		res.Transition = TransitionAdvance
	case !player.HasKey:
		res.emit(DoorRejectedEvent{}, ShakeEvent{Sound: true})
	}
}
