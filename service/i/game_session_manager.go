package i

import (
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/google/uuid"
)

// GameSessionManager manages single player game sessions kept in memory.
type GameSessionManager interface {
	// NewSession starts a run on a fresh maze and returns its ID and first snapshot.
	NewSession() (uuid.UUID, game.Snapshot, error)

	// Move applies one directional intent to the session and reports what happened.
	Move(id uuid.UUID, d game.Direction) (game.MoveResult, error)

	// Snapshot returns the renderable state of the session.
	Snapshot(id uuid.UUID) (game.Snapshot, error)

	// Restart begins a new run at level 1 in the same session.
	Restart(id uuid.UUID) (game.Snapshot, error)

	// End drops the session.
	End(id uuid.UUID) error
}
