package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridMaze is a Maze built from ASCII rows, '#' for walls.
type gridMaze struct {
	rows []string
	id   int
}

func (g *gridMaze) Size() int { return len(g.rows) }

func (g *gridMaze) IsWall(col, row int) bool {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return true
	}
	return g.rows[row][col] == '#'
}

func (g *gridMaze) Walls() [][]bool {
	walls := make([][]bool, len(g.rows))
	for r, line := range g.rows {
		walls[r] = make([]bool, len(line))
		for c := range line {
			walls[r][c] = line[c] == '#'
		}
	}
	return walls
}

// shortRun reaches the goal (3,3) with Right, Right, Down, Down.
var shortRun = []string{
	"#####",
	"#   #",
	"### #",
	"#   #",
	"#####",
}

var toGoal = []Direction{Right, Right, Down, Down}

type fakeFactory struct {
	calls   int
	failOn  int
	layouts [][]string
}

func (f *fakeFactory) build(size int) (Maze, error) {
	f.calls++
	if f.failOn != 0 && f.calls == f.failOn {
		return nil, errors.New("boom")
	}
	layout := f.layouts[(f.calls-1)%len(f.layouts)]
	return &gridMaze{rows: layout, id: f.calls}, nil
}

type hookLog struct {
	resets    []ResetReason
	advances  []int
	completes int
}

func (h *hookLog) hooks() Hooks {
	return Hooks{
		OnReset:             func(r ResetReason) { h.resets = append(h.resets, r) },
		OnLevelAdvance:      func(l int) { h.advances = append(h.advances, l) },
		OnAllLevelsComplete: func() { h.completes++ },
	}
}

func newTestController(t *testing.T, maxLevel int) (*LevelController, *fakeFactory, *hookLog) {
	t.Helper()
	f := &fakeFactory{layouts: [][]string{shortRun}}
	h := &hookLog{}
	lc, err := NewLevelController(Config{
		Size:        5,
		MaxLevel:    maxLevel,
		MazeFactory: f.build,
		Hooks:       h.hooks(),
	})
	require.NoError(t, err)
	return lc, f, h
}

func mazeID(lc *LevelController) int {
	return lc.Maze().(*gridMaze).id
}

func playLevel(t *testing.T, lc *LevelController) Outcome {
	t.Helper()
	var out Outcome
	for i, d := range toGoal {
		var err error
		out, err = lc.AttemptMove(d)
		require.NoError(t, err)
		if i < len(toGoal)-1 {
			require.Equal(t, Moved, out)
		}
	}
	return out
}

func TestNewLevelController(t *testing.T) {
	f := &fakeFactory{layouts: [][]string{shortRun}}

	t.Run("Applies defaults", func(t *testing.T) {
		lc, err := NewLevelController(Config{MazeFactory: f.build})
		require.NoError(t, err)
		assert.Equal(t, DefaultSize, lc.Size())
		assert.Equal(t, DefaultMaxLevel, lc.MaxLevel())
		assert.Equal(t, Position{Col: 13, Row: 13}, lc.Goal())
		assert.Equal(t, NotStarted, lc.State())
		assert.Equal(t, "Not started", lc.LevelLabel())
		assert.Nil(t, lc.Maze())
	})

	t.Run("Rejects bad sizes and levels", func(t *testing.T) {
		for _, c := range []Config{
			{Size: 3, MazeFactory: f.build},
			{Size: 6, MazeFactory: f.build},
			{Size: -7, MazeFactory: f.build},
			{Size: 5, MaxLevel: -1, MazeFactory: f.build},
		} {
			_, err := NewLevelController(c)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		}
	})

	t.Run("Requires a factory", func(t *testing.T) {
		_, err := NewLevelController(Config{Size: 5})
		assert.ErrorIs(t, err, ErrNoMazeFactory)
	})
}

func TestStart(t *testing.T) {
	lc, f, _ := newTestController(t, 4)

	require.NoError(t, lc.Start())
	assert.Equal(t, Running, lc.State())
	assert.Equal(t, 1, lc.Level())
	assert.Equal(t, Position{Col: 1, Row: 1}, lc.Player())
	assert.Equal(t, "Level 1/4", lc.LevelLabel())
	assert.Equal(t, 1, f.calls)
}

func TestAttemptMove(t *testing.T) {
	t.Run("Ignored before start", func(t *testing.T) {
		lc, f, _ := newTestController(t, 4)
		out, err := lc.AttemptMove(Right)
		require.NoError(t, err)
		assert.Equal(t, Ignored, out)
		assert.Equal(t, NotStarted, lc.State())
		assert.Equal(t, 0, f.calls)
	})

	t.Run("Invalid direction is a no-op", func(t *testing.T) {
		lc, f, h := newTestController(t, 4)
		require.NoError(t, lc.Start())

		for _, d := range []Direction{0, -1, 99} {
			out, err := lc.AttemptMove(d)
			require.NoError(t, err)
			assert.Equal(t, Ignored, out)
		}
		assert.Equal(t, Position{Col: 1, Row: 1}, lc.Player())
		assert.Equal(t, 1, f.calls)
		assert.Empty(t, h.resets)
	})

	t.Run("One cell per step along a corridor", func(t *testing.T) {
		lc, _, _ := newTestController(t, 4)
		require.NoError(t, lc.Start())

		out, err := lc.AttemptMove(Right)
		require.NoError(t, err)
		assert.Equal(t, Moved, out)
		assert.Equal(t, Position{Col: 2, Row: 1}, lc.Player())

		out, err = lc.AttemptMove(Right)
		require.NoError(t, err)
		assert.Equal(t, Moved, out)
		assert.Equal(t, Position{Col: 3, Row: 1}, lc.Player())

		out, err = lc.AttemptMove(Left)
		require.NoError(t, err)
		assert.Equal(t, Moved, out)
		assert.Equal(t, Position{Col: 2, Row: 1}, lc.Player())
	})

	t.Run("Wall resets to level 1 on a new maze", func(t *testing.T) {
		lc, f, h := newTestController(t, 4)
		require.NoError(t, lc.Start())
		before := mazeID(lc)

		for _, d := range []Direction{Up, Left, Down} {
			out, err := lc.AttemptMove(d)
			require.NoError(t, err)
			assert.Equal(t, Blocked, out)
			assert.Equal(t, 1, lc.Level())
			assert.Equal(t, Position{Col: 1, Row: 1}, lc.Player())
			assert.Equal(t, Running, lc.State())
		}

		assert.Equal(t, []ResetReason{ResetCollision, ResetCollision, ResetCollision}, h.resets)
		assert.Equal(t, 4, f.calls)
		assert.NotEqual(t, before, mazeID(lc))
	})

	t.Run("Reset from a later level returns to level 1", func(t *testing.T) {
		lc, _, h := newTestController(t, 4)
		require.NoError(t, lc.Start())
		require.Equal(t, LevelAdvanced, playLevel(t, lc))
		require.Equal(t, LevelAdvanced, playLevel(t, lc))
		require.Equal(t, 3, lc.Level())

		_, err := lc.AttemptMove(Right)
		require.NoError(t, err)
		out, err := lc.AttemptMove(Down)
		require.NoError(t, err)

		assert.Equal(t, Blocked, out)
		assert.Equal(t, 1, lc.Level())
		assert.Equal(t, Position{Col: 1, Row: 1}, lc.Player())
		assert.Len(t, h.resets, 1)
	})

	t.Run("Goal advances the level on a new maze", func(t *testing.T) {
		lc, f, h := newTestController(t, 4)
		require.NoError(t, lc.Start())
		before := mazeID(lc)

		assert.Equal(t, LevelAdvanced, playLevel(t, lc))
		assert.Equal(t, 2, lc.Level())
		assert.Equal(t, "Level 2/4", lc.LevelLabel())
		assert.Equal(t, Position{Col: 1, Row: 1}, lc.Player())
		assert.Equal(t, []int{2}, h.advances)
		assert.Equal(t, 2, f.calls)
		assert.NotEqual(t, before, mazeID(lc))
	})

	t.Run("Last goal finishes the run", func(t *testing.T) {
		lc, f, h := newTestController(t, 4)
		require.NoError(t, lc.Start())

		for level := 1; level < 4; level++ {
			require.Equal(t, LevelAdvanced, playLevel(t, lc))
		}
		require.Equal(t, 4, lc.Level())

		assert.Equal(t, AllLevelsComplete, playLevel(t, lc))
		assert.Equal(t, Finished, lc.State())
		assert.Equal(t, 1, h.completes)
		assert.Equal(t, []int{2, 3, 4}, h.advances)
		assert.Equal(t, 4, lc.Level())
		assert.Equal(t, lc.Goal(), lc.Player())
		assert.Equal(t, "All levels complete", lc.LevelLabel())

		calls := f.calls
		for _, d := range []Direction{Up, Down, Left, Right} {
			out, err := lc.AttemptMove(d)
			require.NoError(t, err)
			assert.Equal(t, Ignored, out)
		}
		assert.Equal(t, calls, f.calls)
		assert.Equal(t, 1, h.completes)
		assert.Empty(t, h.resets)
	})

	t.Run("Single level run", func(t *testing.T) {
		lc, _, h := newTestController(t, 1)
		require.NoError(t, lc.Start())
		assert.Equal(t, AllLevelsComplete, playLevel(t, lc))
		assert.Empty(t, h.advances)
		assert.Equal(t, 1, h.completes)
	})

	t.Run("Start after finishing begins a new run", func(t *testing.T) {
		lc, _, _ := newTestController(t, 1)
		require.NoError(t, lc.Start())
		require.Equal(t, AllLevelsComplete, playLevel(t, lc))

		require.NoError(t, lc.Start())
		assert.Equal(t, Running, lc.State())
		assert.Equal(t, 1, lc.Level())
		assert.Equal(t, Position{Col: 1, Row: 1}, lc.Player())
	})

	t.Run("Factory errors are returned", func(t *testing.T) {
		lc, f, h := newTestController(t, 4)
		f.failOn = 2
		require.NoError(t, lc.Start())

		out, err := lc.AttemptMove(Up)
		assert.Equal(t, Blocked, out)
		assert.Error(t, err)
		assert.Empty(t, h.resets)

		f.failOn = 1
		f.calls = 0
		assert.Error(t, lc.Start())
	})
}

func TestSnapshot(t *testing.T) {
	lc, _, _ := newTestController(t, 4)

	s := lc.Snapshot()
	assert.Equal(t, NotStarted, s.State)
	assert.Nil(t, s.Walls)

	require.NoError(t, lc.Start())
	_, err := lc.AttemptMove(Right)
	require.NoError(t, err)

	s = lc.Snapshot()
	assert.Equal(t, Running, s.State)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 4, s.MaxLevel)
	assert.Equal(t, 5, s.Size)
	assert.Equal(t, Position{Col: 2, Row: 1}, s.Player)
	assert.Equal(t, Position{Col: 3, Row: 3}, s.Goal)
	require.Len(t, s.Walls, 5)
	assert.True(t, s.Walls[0][0])
	assert.False(t, s.Walls[1][1])
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	h := &hookLog{}
	f := &fakeFactory{layouts: [][]string{shortRun}}
	lc, err := NewLevelController(Config{
		Size:        5,
		MaxLevel:    2,
		MazeFactory: f.build,
		Hooks:       Chain(rec.Hooks(), h.hooks()),
	})
	require.NoError(t, err)
	require.NoError(t, lc.Start())

	_, err = lc.AttemptMove(Up)
	require.NoError(t, err)
	playLevel(t, lc)
	playLevel(t, lc)

	assert.Equal(t, []Event{
		{Kind: EventReset, Level: 1, Reason: ResetCollision},
		{Kind: EventLevelAdvance, Level: 2},
		{Kind: EventAllLevelsComplete},
	}, rec.Drain())
	assert.Empty(t, rec.Drain())
	assert.Len(t, h.resets, 1)
	assert.Equal(t, 1, h.completes)
}
