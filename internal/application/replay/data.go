package replay

import (
	"time"

	"github.com/younwookim/keydoor/internal/application/system"
)

// Version is the recording format version
const Version = "1.0"

// FrameInput records the input edges of a single tick
type FrameInput struct {
	F  int   `json:"f"`            // Frame number
	T  int64 `json:"t"`            // Milliseconds since the run started
	LP bool  `json:"lp,omitempty"` // LeftPressed
	LR bool  `json:"lr,omitempty"` // LeftReleased
	RP bool  `json:"rp,omitempty"` // RightPressed
	RR bool  `json:"rr,omitempty"` // RightReleased
	J  bool  `json:"j,omitempty"`  // JumpPressed
	P  bool  `json:"p,omitempty"`  // PausePressed
	Q  bool  `json:"q,omitempty"`  // QuitPressed
	X  bool  `json:"x,omitempty"`  // RestartPressed
}

// ReplayData contains all data needed to replay a run
type ReplayData struct {
	Version   string       `json:"version"`
	RunID     string       `json:"runId"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrameInput captures one tick of input
func NewFrameInput(frame int, elapsed time.Duration, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		T:  elapsed.Milliseconds(),
		LP: in.LeftPressed,
		LR: in.LeftReleased,
		RP: in.RightPressed,
		RR: in.RightReleased,
		J:  in.JumpPressed,
		P:  in.PausePressed,
		Q:  in.QuitPressed,
		X:  in.RestartPressed,
	}
}

// Input converts the frame back into input edges
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		LeftPressed:    fi.LP,
		LeftReleased:   fi.LR,
		RightPressed:   fi.RP,
		RightReleased:  fi.RR,
		JumpPressed:    fi.J,
		PausePressed:   fi.P,
		QuitPressed:    fi.Q,
		RestartPressed: fi.X,
	}
}

// Elapsed returns the time since the run started
func (fi FrameInput) Elapsed() time.Duration {
	return time.Duration(fi.T) * time.Millisecond
}
