package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/keydoor/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// Next returns the input and elapsed time of the current frame and advances
func (r *Replayer) Next() (system.InputState, time.Duration, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, 0, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), fi.Elapsed(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// RunID returns the id of the recorded run
func (r *Replayer) RunID() string {
	return r.data.RunID
}

// Level returns the level the recorded run started on
func (r *Replayer) Level() string {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player, one
// frame every 16ms)
func CreateTestReplayData(frames int, level string) ReplayData {
	data := ReplayData{
		Version:   Version,
		RunID:     "test",
		Level:     level,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F: i,
			T: int64(i+1) * 16,
		}
	}

	return data
}
