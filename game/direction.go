package game

import "strings"

// Direction is a unit step in grid space.
type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

var directionAliases = map[string]Direction{
	"up":    Up,
	"down":  Down,
	"left":  Left,
	"right": Right,
	"w":     Up,
	"s":     Down,
	"a":     Left,
	"d":     Right,
}

// ParseDirection maps a textual direction (up/down/left/right or w/s/a/d) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	d, ok := directionAliases[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}

// Valid reports whether d is one of the four recognized directions.
func (d Direction) Valid() bool {
	_, ok := directionNames[d]
	return ok
}

// Delta returns the column and row offsets of one step in direction d.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "invalid"
}
