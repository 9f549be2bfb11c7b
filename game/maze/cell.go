package maze

// Cell is the state of a single grid entry.
type Cell uint8

const (
	Wall Cell = iota // Wall blocks movement. It is the zero value, so a fresh grid is solid.
	Open             // Open has been carved and can be walked on.
)

// String returns a one character representation of the cell.
func (c Cell) String() string {
	if c == Open {
		return " "
	}
	return "#"
}

// CellPosition is a grid coordinate inside a maze.
type CellPosition struct {
	Col int // Column index of the cell
	Row int // Row index of the cell
}

// step is a unit offset along one axis.
type step struct {
	dc, dr int
}

// carveSteps are the four axis directions used while carving.
var carveSteps = [4]step{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
