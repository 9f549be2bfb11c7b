/*
Package maze provides tools for creating and querying square "thick-wall" mazes.

A maze is an odd sized grid of cells that are either walls or open. Mazes are
carved with randomized recursive backtracking starting at (1,1); the start cell
and the goal cell (size-2, size-2) are always opened afterwards.

The package also answers collision queries in grid coordinates, counts the
open region reachable from a cell and renders a maze as ASCII.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	minMazeSize = 5
)

var (
	ErrInvalidSize = errors.New("maze size must be an odd number >= 5")
)

// Grid is a square maze. It is never mutated after Generate returns it.
type Grid struct {
	size  int      // Width and height of the maze
	cells [][]Cell // cells[row][col]
}

// Generate carves a new maze of the given size using rng for every random choice.
// A nil rng is replaced by a clock seeded source.
func Generate(size int, rng RandomSource) (*Grid, error) {
	if size < minMazeSize || size%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if rng == nil {
		rng = NewSource(0)
	}

	cells := make([][]Cell, size)
	for row := range cells {
		cells[row] = make([]Cell, size)
	}

	g := &Grid{size: size, cells: cells}
	g.cells[1][1] = Open
	g.carve(CellPosition{Col: 1, Row: 1}, rng)

	g.cells[1][1] = Open
	g.cells[size-2][size-2] = Open
	return g, nil
}

// frame is one level of the carving walk: a cell plus the directions still to try.
type frame struct {
	pos  CellPosition
	dirs [4]step
	next int
}

// carve opens passages reachable from start. Directions of each cell are
// shuffled once, when the cell is entered, and tried in that order.
func (g *Grid) carve(start CellPosition, rng RandomSource) {
	stack := []frame{{pos: start, dirs: shuffledSteps(rng)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			pop(&stack)
			continue
		}

		d := top.dirs[top.next]
		top.next++

		nc, nr := top.pos.Col+2*d.dc, top.pos.Row+2*d.dr
		if !g.inBound(nc, nr) || g.cells[nr][nc] != Wall {
			continue
		}

		g.cells[top.pos.Row+d.dr][top.pos.Col+d.dc] = Open
		g.cells[nr][nc] = Open
		stack = append(stack, frame{pos: CellPosition{Col: nc, Row: nr}, dirs: shuffledSteps(rng)})
	}
}

// pop removes and returns the last element of a stack.
func pop[T any](s *[]T) T {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}

// Size returns the width (and height) of the maze.
func (g *Grid) Size() int {
	return g.size
}

// Start returns the fixed start cell.
func (g *Grid) Start() CellPosition {
	return CellPosition{Col: 1, Row: 1}
}

// Goal returns the fixed goal cell.
func (g *Grid) Goal() CellPosition {
	return CellPosition{Col: g.size - 2, Row: g.size - 2}
}

// At returns the cell at (col, row). Out of bound positions read as Wall.
func (g *Grid) At(col, row int) Cell {
	if !g.inBound(col, row) {
		return Wall
	}
	return g.cells[row][col]
}

// Walls returns a copy of the grid as wall flags indexed [row][col].
func (g *Grid) Walls() [][]bool {
	walls := make([][]bool, g.size)
	for row := range g.cells {
		walls[row] = make([]bool, g.size)
		for col, c := range g.cells[row] {
			walls[row][col] = c == Wall
		}
	}
	return walls
}

func (g *Grid) inBound(col, row int) bool {
	return col >= 0 && col < g.size && row >= 0 && row < g.size
}

// String provides a textual representation of the maze, one line per row.
func (g *Grid) String() string {
	var output strings.Builder
	output.Grow(g.size * (g.size + 1))

	for _, row := range g.cells {
		for _, c := range row {
			output.WriteString(c.String())
		}
		output.WriteByte('\n')
	}

	return output.String()
}
