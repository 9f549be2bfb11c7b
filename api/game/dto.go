// Package gameapi provides structures and utilities for the maze game HTTP surface.
package gameapi

import (
	"github.com/beka-birhanu/vinom-maze/game"
)

// NewGameResponse is returned when a session is created.
type NewGameResponse struct {
	ID       string        `json:"id"`
	Token    string        `json:"token"`
	Snapshot game.Snapshot `json:"snapshot"`
}

// MoveRequest represents one directional intent.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}
