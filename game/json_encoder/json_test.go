package jsonenc

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/game"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	enc := &JSON{}

	t.Run("Enums are written as names", func(t *testing.T) {
		b, err := enc.MarshalMoveResult(game.MoveResult{
			Outcome: game.Blocked,
			Events:  []game.Event{{Kind: game.EventReset, Level: 1, Reason: game.ResetCollision}},
			Snapshot: game.Snapshot{
				State:  game.Running,
				Level:  1,
				Player: game.Position{Col: 1, Row: 1},
			},
		})
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(b, &decoded))
		assert.Equal(t, "blocked", decoded["outcome"])

		snapshot := decoded["snapshot"].(map[string]any)
		assert.Equal(t, "running", snapshot["state"])
		assert.Equal(t, map[string]any{"col": float64(1), "row": float64(1)}, snapshot["player"])

		events := decoded["events"].([]any)
		require.Len(t, events, 1)
		assert.Equal(t, "reset", events[0].(map[string]any)["kind"])
		assert.Equal(t, "collision", events[0].(map[string]any)["reason"])
	})

	t.Run("Snapshot walls", func(t *testing.T) {
		b, err := enc.MarshalSnapshot(game.Snapshot{Size: 2, Walls: [][]bool{{true, false}, {false, true}}})
		require.NoError(t, err)
		assert.Contains(t, string(b), `"walls":[[true,false],[false,true]]`)
		assert.Contains(t, string(b), `"state":"not_started"`)
	})

	t.Run("Move request", func(t *testing.T) {
		req, err := enc.UnmarshalMoveRequest([]byte(`{"direction":"left"}`))
		require.NoError(t, err)
		assert.Equal(t, "left", req.Direction)

		_, err = enc.UnmarshalMoveRequest(nil)
		assert.ErrorIs(t, err, ErrEmptyPayload)

		_, err = enc.UnmarshalMoveRequest([]byte(`{"direction":`))
		assert.Error(t, err)
	})
}
