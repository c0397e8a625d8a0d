package state

// GameState represents the current state of the game loop
type GameState int

const (
	StateRunning GameState = iota
	StatePaused
	StateLoadingLevel
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateLoadingLevel:
		return "LoadingLevel"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// AcceptsInput returns true if movement and jump edges are processed
func (s GameState) AcceptsInput() bool {
	return s == StateRunning
}

// Outcome is how the current run ended, if it has
type Outcome int

const (
	OutcomeActive Outcome = iota
	OutcomeWon
	OutcomeTimedOut
	OutcomeKilled
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeActive:
		return "Active"
	case OutcomeWon:
		return "Won"
	case OutcomeTimedOut:
		return "TimedOut"
	case OutcomeKilled:
		return "Killed"
	default:
		return "Unknown"
	}
}

// Message returns the notice shown once the run is over
func (o Outcome) Message() string {
	switch o {
	case OutcomeWon:
		return "You win!"
	case OutcomeTimedOut:
		return "Time's up!"
	case OutcomeKilled:
		return "You died!"
	default:
		return ""
	}
}
