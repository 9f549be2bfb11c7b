// Package jsonenc encodes game snapshots and move messages as JSON.
package jsonenc

import (
	"errors"

	"github.com/beka-birhanu/vinom-maze/game"
	json "github.com/goccy/go-json"
)

var _ game.Encoder = &JSON{}

var (
	ErrEmptyPayload = errors.New("empty payload")
)

// JSON implements game.Encoder.
type JSON struct{}

// MarshalSnapshot implements game.Encoder.
func (j *JSON) MarshalSnapshot(s game.Snapshot) ([]byte, error) {
	return json.Marshal(s)
}

// MarshalMoveResult implements game.Encoder.
func (j *JSON) MarshalMoveResult(r game.MoveResult) ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalMoveRequest implements game.Encoder.
func (j *JSON) UnmarshalMoveRequest(b []byte) (game.MoveRequest, error) {
	var req game.MoveRequest
	if len(b) == 0 {
		return req, ErrEmptyPayload
	}
	err := json.Unmarshal(b, &req)
	return req, err
}
