package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/keydoor/internal/application/system"
)

// ErrNoFrames is returned when saving an empty recording
var ErrNoFrames = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder for a run starting on level
func NewRecorder(level string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			RunID:     uuid.NewString(),
			Level:     level,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single tick's input
func (r *Recorder) RecordFrame(in system.InputState, elapsed time.Duration) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, NewFrameInput(r.frame, elapsed, in))
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// RunID returns the id tagging this recording
func (r *Recorder) RunID() string {
	return r.data.RunID
}

// Data returns the replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename from the current time and a run id
func GenerateFilename(runID string) string {
	if len(runID) > 8 {
		runID = runID[:8]
	}
	return fmt.Sprintf("replay_%s_%s.json", time.Now().Format("20060102_150405"), runID)
}
