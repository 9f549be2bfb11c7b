package maze

import "github.com/beka-birhanu/vinom-maze/game"

var _ game.Maze = &Grid{}

// Factory returns a game.MazeFactory that carves every maze from rng.
// The source is shared by all mazes built by the factory, so one seed
// reproduces a whole run.
func Factory(rng RandomSource) game.MazeFactory {
	if rng == nil {
		rng = NewSource(0)
	}
	return func(size int) (game.Maze, error) {
		g, err := Generate(size, rng)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}
