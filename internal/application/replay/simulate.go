package replay

import (
	"fmt"
	"time"

	"github.com/younwookim/keydoor/internal/application/gameplay"
	"github.com/younwookim/keydoor/internal/application/state"
	"github.com/younwookim/keydoor/internal/application/system"
)

// Result summarizes a replayed run
type Result struct {
	Frames  int
	Level   string
	State   state.GameState
	Outcome state.Outcome
	Display string
	Jumps   int
	Levels  int // levels loaded after the first
	Quit    bool
}

// Simulate re-runs a recording against a freshly created loop without a
// window. start anchors the recorded elapsed times.
func Simulate(loop *gameplay.Loop, r *Replayer, start time.Time) (Result, error) {
	if err := loop.Start(r.Level(), start); err != nil {
		return Result{}, fmt.Errorf("failed to start replay: %w", err)
	}

	var res Result
	for {
		in, elapsed, ok := r.Next()
		if !ok {
			break
		}
		res.Frames++

		for _, ev := range loop.Tick(in, start.Add(elapsed)) {
			switch ev.(type) {
			case system.JumpEvent:
				res.Jumps++
			case system.LevelLoadedEvent:
				res.Levels++
			case system.QuitEvent:
				res.Quit = true
			}
		}
		if res.Quit {
			break
		}
	}

	gs := loop.State()
	res.Level = gs.Session.ID()
	res.State = gs.State
	res.Outcome = gs.Outcome
	res.Display = loop.Display()
	return res, nil
}
