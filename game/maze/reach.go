package maze

// Reachable counts the open cells 4-connected to (col, row), the cell itself included.
// It returns 0 when the cell is a wall or outside the grid.
func Reachable(g *Grid, col, row int) int {
	if g.IsWall(col, row) {
		return 0
	}

	visited := make([][]bool, g.size)
	for i := range visited {
		visited[i] = make([]bool, g.size)
	}

	stack := []CellPosition{{Col: col, Row: row}}
	visited[row][col] = true
	count := 0

	for len(stack) > 0 {
		cell := pop(&stack)
		count++

		// Explore neighbors and push unvisited open ones onto the stack
		for _, d := range carveSteps {
			nc, nr := cell.Col+d.dc, cell.Row+d.dr
			if g.IsWall(nc, nr) || visited[nr][nc] {
				continue
			}
			visited[nr][nc] = true
			stack = append(stack, CellPosition{Col: nc, Row: nr})
		}
	}

	return count
}

// Connected reports whether two cells lie in the same open region.
func Connected(g *Grid, from, to CellPosition) bool {
	if g.IsWall(from.Col, from.Row) || g.IsWall(to.Col, to.Row) {
		return false
	}
	if from == to {
		return true
	}

	visited := map[CellPosition]struct{}{from: {}}
	stack := []CellPosition{from}
	for len(stack) > 0 {
		cell := pop(&stack)
		for _, d := range carveSteps {
			next := CellPosition{Col: cell.Col + d.dc, Row: cell.Row + d.dr}
			if next == to {
				return true
			}
			if _, seen := visited[next]; seen || g.IsWall(next.Col, next.Row) {
				continue
			}
			visited[next] = struct{}{}
			stack = append(stack, next)
		}
	}

	return false
}
