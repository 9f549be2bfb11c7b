package game

// Maze defines the methods that a maze must implement.
type Maze interface {
	// Size returns the width (and height) of the square grid.
	Size() int

	// IsWall reports whether the cell blocks movement. Out of bound cells are walls.
	IsWall(col, row int) bool

	// Walls returns the grid as wall flags indexed [row][col].
	Walls() [][]bool
}

// MazeFactory builds a brand new maze of the given size.
type MazeFactory func(size int) (Maze, error)

// Encoder serializes what the shells exchange with the core.
type Encoder interface {
	MarshalSnapshot(Snapshot) ([]byte, error)
	MarshalMoveResult(MoveResult) ([]byte, error)
	UnmarshalMoveRequest([]byte) (MoveRequest, error)
}
