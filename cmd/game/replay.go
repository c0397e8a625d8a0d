package main

import (
	"fmt"
	"log"
	"time"

	"github.com/younwookim/keydoor/internal/application/replay"
	"github.com/younwookim/keydoor/internal/infrastructure/config"
)

// runReplay re-simulates a recording against the loaded configs
func runReplay(path string, bundle *config.Bundle) (replay.Result, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return replay.Result{}, err
	}

	loop, err := newLoop(bundle, "")
	if err != nil {
		return replay.Result{}, err
	}

	r := replay.NewReplayer(*data)
	log.Printf("Replaying %s (run: %s, %d frames, level: %s)", path, r.RunID(), r.TotalFrames(), r.Level())

	res, err := replay.Simulate(loop, r, time.Unix(0, 0))
	if err != nil {
		return replay.Result{}, fmt.Errorf("failed to replay %s: %w", path, err)
	}

	log.Printf("Replay finished: %d frames, state %s, outcome %s, level %s, time %s, %d jumps, %d levels advanced",
		res.Frames, res.State, res.Outcome, res.Level, res.Display, res.Jumps, res.Levels)
	return res, nil
}
