package game

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/logger"
)

// Game-related errors.
var (
	ErrInvalidConfig = errors.New("invalid level controller config")
	ErrNoMazeFactory = errors.New("maze factory is required")
)

// Game constants for configuration.
const (
	DefaultSize     = 15 // Default maze size (cells per side).
	DefaultMaxLevel = 4  // Default number of levels in a run.

	minSize = 5 // Minimum maze size.
)

// Config holds the settings of a LevelController.
type Config struct {
	Size        int         // Maze size, odd and >= 5. Zero selects DefaultSize.
	MaxLevel    int         // Number of levels in a run. Zero selects DefaultMaxLevel.
	MazeFactory MazeFactory // Builds a fresh maze for every level and reset.
	Hooks       Hooks       // Observers of resets, level advances and completion.
	Logger      logger.Logger
}

// LevelController owns the maze, the player and the level counter of one run and
// drives them through start, move, reset and level transitions.
// It is not safe for concurrent use.
type LevelController struct {
	size     int
	maxLevel int
	factory  MazeFactory
	hooks    Hooks
	logger   logger.Logger

	maze   Maze
	player Player
	goal   Position
	level  int
	state  State
}

// NewLevelController validates c and returns a controller in the NotStarted state.
func NewLevelController(c Config) (*LevelController, error) {
	if c.Size == 0 {
		c.Size = DefaultSize
	}
	if c.MaxLevel == 0 {
		c.MaxLevel = DefaultMaxLevel
	}

	if c.Size < minSize || c.Size%2 == 0 {
		return nil, fmt.Errorf("%w: size %d must be odd and >= %d", ErrInvalidConfig, c.Size, minSize)
	}
	if c.MaxLevel < 1 {
		return nil, fmt.Errorf("%w: max level %d must be positive", ErrInvalidConfig, c.MaxLevel)
	}
	if c.MazeFactory == nil {
		return nil, ErrNoMazeFactory
	}
	if c.Logger == nil {
		c.Logger = logger.Nop{}
	}

	return &LevelController{
		size:     c.Size,
		maxLevel: c.MaxLevel,
		factory:  c.MazeFactory,
		hooks:    c.Hooks,
		logger:   c.Logger,
		goal:     Position{Col: c.Size - 2, Row: c.Size - 2},
		state:    NotStarted,
	}, nil
}

// Start begins a new run at level 1. It can be called again at any time,
// including after the last level, to restart from scratch.
func (lc *LevelController) Start() error {
	if err := lc.enterLevel(1); err != nil {
		return err
	}
	lc.state = Running
	lc.logger.Info(fmt.Sprintf("run started: %s", lc.LevelLabel()))
	return nil
}

// AttemptMove processes one directional intent.
// Moves outside the Running state and unknown directions are ignored.
func (lc *LevelController) AttemptMove(d Direction) (Outcome, error) {
	if lc.state != Running || !d.Valid() {
		return Ignored, nil
	}

	candidate := lc.player.Position().Add(d)

	if lc.maze.IsWall(candidate.Col, candidate.Row) {
		if err := lc.failReset(); err != nil {
			return Blocked, err
		}
		return Blocked, nil
	}

	if candidate == lc.goal {
		return lc.advanceLevel()
	}

	lc.player.SetPosition(candidate.Col, candidate.Row)
	return Moved, nil
}

// failReset sends the run back to level 1 on a fresh maze.
func (lc *LevelController) failReset() error {
	lc.logger.Info(fmt.Sprintf("collision at level %d, resetting", lc.level))
	if err := lc.enterLevel(1); err != nil {
		return err
	}
	lc.hooks.reset(ResetCollision)
	return nil
}

// advanceLevel moves to the next level, or finishes the run after the last one.
func (lc *LevelController) advanceLevel() (Outcome, error) {
	next := lc.level + 1
	if next > lc.maxLevel {
		lc.player.SetPosition(lc.goal.Col, lc.goal.Row)
		lc.state = Finished
		lc.logger.Info("all levels complete")
		lc.hooks.allLevelsComplete()
		return AllLevelsComplete, nil
	}

	if err := lc.enterLevel(next); err != nil {
		return LevelAdvanced, err
	}
	lc.logger.Info(fmt.Sprintf("advanced to %s", lc.LevelLabel()))
	lc.hooks.levelAdvance(next)
	return LevelAdvanced, nil
}

// enterLevel installs a freshly generated maze and puts the player on the start cell.
// The previous maze is dropped.
func (lc *LevelController) enterLevel(level int) error {
	m, err := lc.factory(lc.size)
	if err != nil {
		lc.logger.Error(fmt.Sprintf("generating maze for level %d: %s", level, err))
		return fmt.Errorf("generating maze for level %d: %w", level, err)
	}

	lc.maze = m
	lc.level = level
	lc.player.SetPosition(1, 1)
	return nil
}

// State returns the current machine state.
func (lc *LevelController) State() State {
	return lc.state
}

// Level returns the current level number. A finished run stays on its last level.
func (lc *LevelController) Level() int {
	return lc.level
}

// MaxLevel returns the number of levels in a run.
func (lc *LevelController) MaxLevel() int {
	return lc.maxLevel
}

// LevelLabel returns the display label of the current level.
func (lc *LevelController) LevelLabel() string {
	switch lc.state {
	case NotStarted:
		return "Not started"
	case Finished:
		return "All levels complete"
	}
	return fmt.Sprintf("Level %d/%d", lc.level, lc.maxLevel)
}

// Player returns the player grid position.
func (lc *LevelController) Player() Position {
	return lc.player.Position()
}

// Goal returns the goal grid position.
func (lc *LevelController) Goal() Position {
	return lc.goal
}

// Size returns the maze size.
func (lc *LevelController) Size() int {
	return lc.size
}

// Maze returns the current maze, nil before Start.
func (lc *LevelController) Maze() Maze {
	return lc.maze
}

// Snapshot copies the renderable state.
func (lc *LevelController) Snapshot() Snapshot {
	s := Snapshot{
		State:    lc.state,
		Level:    lc.level,
		MaxLevel: lc.maxLevel,
		Label:    lc.LevelLabel(),
		Size:     lc.size,
		Player:   lc.player.Position(),
		Goal:     lc.goal,
	}
	if lc.maze != nil {
		s.Walls = lc.maze.Walls()
	}
	return s
}
