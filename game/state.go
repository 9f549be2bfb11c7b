package game

import "fmt"

// State of the level state machine.
type State int

const (
	NotStarted State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	for _, candidate := range []State{NotStarted, Running, Finished} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown state %q", text)
}

// Outcome is the result of one move attempt.
type Outcome int

const (
	Ignored           Outcome = iota // Not running, or the direction was not recognized.
	Moved                            // The player took one step.
	Blocked                          // Wall or border hit; the run was reset.
	LevelAdvanced                    // Goal reached, next level generated.
	AllLevelsComplete                // Goal of the last level reached.
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case LevelAdvanced:
		return "level_advanced"
	case AllLevelsComplete:
		return "all_levels_complete"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	for _, candidate := range []Outcome{Ignored, Moved, Blocked, LevelAdvanced, AllLevelsComplete} {
		if candidate.String() == string(text) {
			*o = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	State    State    `json:"state"`
	Level    int      `json:"level"`
	MaxLevel int      `json:"max_level"`
	Label    string   `json:"label"`
	Size     int      `json:"size"`
	Player   Position `json:"player"`
	Goal     Position `json:"goal"`
	Walls    [][]bool `json:"walls,omitempty"`
}

// MoveRequest is a directional intent coming from a shell.
type MoveRequest struct {
	Direction string `json:"direction"`
}

// MoveResult reports one processed move and the events it fired.
type MoveResult struct {
	Outcome  Outcome  `json:"outcome"`
	Events   []Event  `json:"events,omitempty"`
	Snapshot Snapshot `json:"snapshot"`
}
