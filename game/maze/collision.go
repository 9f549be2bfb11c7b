package maze

// IsWall reports whether (col, row) blocks movement in g.
// Anything outside the grid counts as a wall.
func IsWall(col, row int, g *Grid) bool {
	return g.IsWall(col, row)
}

// IsWall reports whether (col, row) blocks movement.
func (g *Grid) IsWall(col, row int) bool {
	return g.At(col, row) == Wall
}

// CellAt converts a pixel coordinate into the grid cell that contains it.
// Negative pixels floor toward the cell before the origin.
func CellAt(pixelX, pixelY, cellSize int) (col, row int) {
	return floorDiv(pixelX, cellSize), floorDiv(pixelY, cellSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
