package game

// Position is a grid coordinate.
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Add returns the position one step away in direction d.
func (p Position) Add(d Direction) Position {
	dc, dr := d.Delta()
	return Position{Col: p.Col + dc, Row: p.Row + dr}
}

// Player holds the grid coordinates of the player token.
type Player struct {
	pos Position
}

// Position returns the current player position.
func (p *Player) Position() Position {
	return p.pos
}

// SetPosition overwrites the player position without any validation.
func (p *Player) SetPosition(col, row int) {
	p.pos = Position{Col: col, Row: row}
}
