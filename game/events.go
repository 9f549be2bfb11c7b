package game

import "sync"

// ResetReason says why a run was sent back to level 1.
type ResetReason string

const (
	ResetCollision ResetReason = "collision" // The player stepped into a wall or off the grid.
)

// Hooks are called synchronously by the LevelController after the matching transition.
// Nil hooks are skipped.
type Hooks struct {
	OnReset             func(reason ResetReason)
	OnLevelAdvance      func(newLevel int)
	OnAllLevelsComplete func()
}

func (h Hooks) reset(reason ResetReason) {
	if h.OnReset != nil {
		h.OnReset(reason)
	}
}

func (h Hooks) levelAdvance(level int) {
	if h.OnLevelAdvance != nil {
		h.OnLevelAdvance(level)
	}
}

func (h Hooks) allLevelsComplete() {
	if h.OnAllLevelsComplete != nil {
		h.OnAllLevelsComplete()
	}
}

// EventKind identifies an observable event.
type EventKind string

const (
	EventReset             EventKind = "reset"
	EventLevelAdvance      EventKind = "level_advance"
	EventAllLevelsComplete EventKind = "all_levels_complete"
)

// Event is a recorded hook invocation.
type Event struct {
	Kind   EventKind   `json:"kind"`
	Level  int         `json:"level,omitempty"`
	Reason ResetReason `json:"reason,omitempty"`
}

// Recorder buffers events for shells that poll instead of reacting to hooks.
type Recorder struct {
	events []Event
	mu     sync.Mutex
}

// Hooks returns hooks that append to the recorder.
func (r *Recorder) Hooks() Hooks {
	return Hooks{
		OnReset: func(reason ResetReason) {
			r.record(Event{Kind: EventReset, Level: 1, Reason: reason})
		},
		OnLevelAdvance: func(level int) {
			r.record(Event{Kind: EventLevelAdvance, Level: level})
		},
		OnAllLevelsComplete: func() {
			r.record(Event{Kind: EventAllLevelsComplete})
		},
	}
}

// Drain returns the buffered events and empties the buffer.
func (r *Recorder) Drain() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := r.events
	r.events = nil
	return events
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Chain returns hooks that call every hook set in order.
func Chain(hooks ...Hooks) Hooks {
	return Hooks{
		OnReset: func(reason ResetReason) {
			for _, h := range hooks {
				h.reset(reason)
			}
		},
		OnLevelAdvance: func(level int) {
			for _, h := range hooks {
				h.levelAdvance(level)
			}
		},
		OnAllLevelsComplete: func() {
			for _, h := range hooks {
				h.allLevelsComplete()
			}
		},
	}
}
